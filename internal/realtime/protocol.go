package realtime

import (
	"strings"

	"github.com/goccy/go-json"
)

// Op is a request operation of the realtime wire protocol.
type Op string

const (
	OpSet                Op = "set"
	OpUpdate             Op = "update"
	OpGet                Op = "get"
	OpSubscribe          Op = "subscribe"
	OpUnsubscribe        Op = "unsubscribe"
	OpOnDisconnectSet    Op = "onDisconnectSet"
	OpCancelOnDisconnect Op = "cancelOnDisconnect"
)

// Request is a client to server message.
type Request struct {
	ID    uint64          `json:"id"`
	Op    Op              `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MessageType distinguishes replies from subscription events.
type MessageType string

const (
	MessageReply MessageType = "reply"
	MessageEvent MessageType = "event"
)

// Response is a server to client message. Replies echo the request ID;
// events carry the subscribed path and its current value (null when absent).
type Response struct {
	Type  MessageType     `json:"type"`
	ID    uint64          `json:"id,omitempty"`
	Path  string          `json:"path,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Server value placeholder: {".sv":"timestamp"} is replaced with the server
// time in unix milliseconds.
const (
	ServerValueKey       = ".sv"
	ServerValueTimestamp = "timestamp"
)

// ServerTimestamp returns the server timestamp placeholder.
func ServerTimestamp() map[string]string {
	return map[string]string{ServerValueKey: ServerValueTimestamp}
}

// CleanPath trims and collapses slashes: "/users//a/" becomes "users/a".
func CleanPath(path string) string {
	return strings.Join(SplitPath(path), "/")
}

// SplitPath returns the non-empty segments of path.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinPath joins segments into a clean path.
func JoinPath(segments ...string) string {
	return CleanPath(strings.Join(segments, "/"))
}

// UserPath returns users/<id>/<rest...>.
func UserPath(userID string, rest ...string) string {
	return JoinPath(append([]string{"users", userID}, rest...)...)
}
