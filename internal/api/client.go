package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"restaurant-client/internal/common/config"
	"restaurant-client/internal/common/logger"
)

// Client is the single path to the backend: it attaches the bearer token,
// unwraps the {"data": T} envelope, and normalizes every failure to *Error.
// No retries and no backoff; failures surface to the caller immediately.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	creds     *Credentials
	limiter   *rate.Limiter
	log       *logger.Logger
}

func New(cfg config.APIConfig, creds *Credentials, log *logger.Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		creds:     creds,
		limiter:   limiter,
		log:       log,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Message: err.Error(), Code: CodeNetworkError}
		}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("failed to encode request body: %v", err), Code: CodeDecodeError}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: err.Error(), Code: CodeNetworkError}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.creds.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request_failed", err, map[string]any{"method": method, "path": path})
		return &Error{Message: err.Error(), Code: CodeNetworkError}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: err.Error(), Code: CodeNetworkError, Status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Stored credentials are stale; reauthentication is the caller's flow.
		if cerr := c.creds.Clear(); cerr != nil {
			c.log.Error("credentials_clear_failed", cerr, nil)
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return unwrap(raw, out)
}

// unwrap decodes either {"data": T} or T directly into out.
func unwrap(raw []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Message: fmt.Sprintf("failed to decode response: %v", err), Code: CodeDecodeError}
	}
	return nil
}

func normalizeError(status int, raw []byte) *Error {
	apiErr := &Error{Status: status, Code: codeForStatus(status)}

	var body struct {
		Message string         `json:"message"`
		Error   string         `json:"error"`
		Detail  string         `json:"detail"`
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Error != "":
			apiErr.Message = body.Error
		case body.Detail != "":
			apiErr.Message = body.Detail
		}
		if body.Code != "" {
			apiErr.Code = body.Code
		}
		apiErr.Details = body.Details
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func codeForStatus(status int) string {
	switch {
	case status == 401:
		return CodeUnauthorized
	case status == 404:
		return "not_found"
	case status >= 400 && status < 500:
		return "validation_error"
	default:
		return "server_error"
	}
}
