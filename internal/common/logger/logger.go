package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Logger emits one JSON object per line. Every entry carries the component
// name and an action tag so client logs can be grepped per subsystem
// (api, tracking, cart, ...).
type Logger struct {
	component string
	out       io.Writer
	debug     bool
}

func New(component string) *Logger {
	return &Logger{
		component: component,
		out:       os.Stdout,
		debug:     os.Getenv("RC_DEBUG") == "true",
	}
}

// WithOutput returns a copy writing to w. Used by tests.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return &Logger{component: l.component, out: w, debug: l.debug}
}

func (l *Logger) log(level, action string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level,
		"component": l.component,
		"action":    action,
		"hostname":  hostname(),
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "type": fmt.Sprintf("%T", err)}
	}
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(action string, fields map[string]any) { l.log("INFO", action, fields, nil) }

func (l *Logger) Debug(action string, fields map[string]any) {
	if !l.debug {
		return
	}
	l.log("DEBUG", action, fields, nil)
}

func (l *Logger) Warn(action string, fields map[string]any) { l.log("WARN", action, fields, nil) }

func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log("ERROR", action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
