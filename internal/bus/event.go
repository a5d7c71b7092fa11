package bus

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Topic names a lifecycle event stream.
type Topic string

const (
	// TopicLocalChange fires after a local write to a synced key or table.
	TopicLocalChange Topic = "local-change"
	// TopicTabHidden asks for an immediate push (the process went to background).
	TopicTabHidden Topic = "tab-hidden"
	// TopicBeforeExit fires once when the process is about to exit.
	TopicBeforeExit Topic = "before-exit"
	// TopicForeignChange fires when another process changed shared state.
	TopicForeignChange Topic = "foreign-change"
	// TopicRemoteChange carries a payload delivered by a backend subscription.
	TopicRemoteChange Topic = "remote-change"
	// TopicSyncStatus carries every sync status transition.
	TopicSyncStatus Topic = "sync-status"
)

// Topics lists every topic of the bus.
var Topics = []Topic{
	TopicLocalChange,
	TopicTabHidden,
	TopicBeforeExit,
	TopicForeignChange,
	TopicRemoteChange,
	TopicSyncStatus,
}

// Event is one message on the bus.
type Event struct {
	Topic Topic `json:"topic"`
	// Key is the settings key or table the event refers to, if any.
	Key string `json:"key,omitempty"`
	// Source names the publisher (a backend name, "watcher", "cli").
	Source string          `json:"source,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	At     time.Time       `json:"at"`
}

// NewEvent returns an event stamped with the current time.
func NewEvent(topic Topic, key string) Event {
	return Event{Topic: topic, Key: key, At: time.Now()}
}

// WithData returns a copy of e carrying v encoded as JSON.
func (e Event) WithData(v any) (Event, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return e, fmt.Errorf("failed to encode event data: %w", err)
	}
	e.Data = data
	return e, nil
}

// FromSource returns a copy of e with Source set.
func (e Event) FromSource(source string) Event {
	e.Source = source
	return e
}

// Decode unmarshals the event data into v.
func (e Event) Decode(v any) error {
	if len(e.Data) == 0 {
		return ErrNoData
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode event data: %w", err)
	}
	return nil
}
