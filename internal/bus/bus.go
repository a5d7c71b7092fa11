// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bus

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
)

// outputBuffer is the per-subscriber channel buffer of the gochannel pub/sub.
const outputBuffer = 64

// Publisher is the write side of the bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscriber is the read side of the bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic Topic) (<-chan Event, error)
}

// Bus is a topic-based in-process pub/sub.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *logger.Logger
	closed atomic.Bool
}

// New creates a bus. Messages published before any subscription exists are
// dropped.
func New(log *logger.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: outputBuffer,
		}, newZerologAdapter(log)),
		logger: log,
	}
}

// Publish sends event to every subscriber of event.Topic.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	if b.closed.Load() {
		return ErrClosed
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(ctx)

	if err = b.pubsub.Publish(string(event.Topic), msg); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Bus.Publish").
			Str("topic", string(event.Topic)).
			Msg("failed to publish event")
		return fmt.Errorf("failed to publish %s: %w", event.Topic, err)
	}
	return nil
}

// Subscribe returns a channel of events of one topic. The channel is closed
// when ctx is cancelled or the bus is closed. Every message is acked once it
// is converted, so a slow reader only delays its own stream.
func (b *Bus) Subscribe(ctx context.Context, topic Topic) (<-chan Event, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}

	messages, err := b.pubsub.Subscribe(ctx, string(topic))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	out := make(chan Event, outputBuffer)
	go func() {
		defer close(out)
		for msg := range messages {
			var event Event
			if decodeErr := json.Unmarshal(msg.Payload, &event); decodeErr != nil {
				b.logger.Err(decodeErr).
					Str("func", "Bus.Subscribe").
					Str("topic", string(topic)).
					Msg("dropping undecodable event")
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Close shuts the pub/sub down and closes every subscription channel.
func (b *Bus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	return b.pubsub.Close()
}
