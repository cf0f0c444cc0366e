package storage

// Fixed keys for everything the client persists locally. All values are
// JSON blobs; the backend remains the source of truth for domain data.
const (
	KeyCart      = "cart"
	KeyAuthToken = "auth_token"
	KeyQRSession = "qr_session"
	KeyDeviceID  = "device_id"
	KeyPushToken = "push_token"
)

// Store is a local persistent key-value store. Get reports whether the key
// existed; a missing key is not an error.
type Store interface {
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Delete(key string) error
	Close() error
}
