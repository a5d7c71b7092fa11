// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/metrics"
	"github.com/goccy/go-json"
)

type clientMessage struct {
	client  *Client
	message []byte
}

// Hub owns every connection, subscription and on-disconnect write. All of
// that state is touched only by the Run goroutine.
type Hub struct {
	db *Database

	clients       map[*Client]struct{}
	subscriptions map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	incoming   chan clientMessage
	done       chan struct{}

	logger *logger.Logger
}

func NewHub(db *Database, log *logger.Logger) *Hub {
	return &Hub{
		db:            db,
		clients:       make(map[*Client]struct{}),
		subscriptions: make(map[string]map[*Client]struct{}),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		incoming:      make(chan clientMessage),
		done:          make(chan struct{}),
		logger:        log,
	}
}

// Run processes hub traffic until ctx is done. On exit every client is
// disconnected and its on-disconnect writes are applied.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			metrics.TrackRealtimeConnection(true)
			h.logger.Debug().Str("client", c.ID).Str("user", c.UserID).Msg("realtime client registered")

		case c := <-h.unregister:
			h.disconnect(ctx, c)

		case msg := <-h.incoming:
			if _, ok := h.clients[msg.client]; ok {
				h.handle(ctx, msg.client, msg.message)
			}

		case <-ctx.Done():
			for c := range h.clients {
				h.disconnect(context.WithoutCancel(ctx), c)
			}
			return
		}
	}
}

// Register hands a new client to the hub.
func (h *Hub) Register(c *Client) error {
	select {
	case h.register <- c:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) deliver(c *Client, message []byte) bool {
	select {
	case h.incoming <- clientMessage{client: c, message: message}:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) handle(ctx context.Context, c *Client, message []byte) {
	var req Request
	if err := json.Unmarshal(message, &req); err != nil {
		h.logger.Warn().Err(err).Str("func", "Hub.handle").Str("client", c.ID).Msg("undecodable realtime request")
		return
	}

	path := CleanPath(req.Path)
	resp := Response{Type: MessageReply, ID: req.ID}
	var (
		value json.RawMessage
		err   error
	)

	switch req.Op {
	case OpGet:
		if err = authorizeRead(c.UserID, path); err == nil {
			value, err = h.db.Get(path)
		}
	case OpSet:
		if err = authorizeWrite(c.UserID, path); err == nil {
			if err = h.db.Set(ctx, path, req.Value); err == nil {
				defer h.notify(path)
			}
		}
	case OpUpdate:
		if err = authorizeWrite(c.UserID, path); err == nil {
			if err = h.db.Update(ctx, path, req.Value); err == nil {
				defer h.notify(path)
			}
		}
	case OpSubscribe:
		if err = authorizeRead(c.UserID, path); err == nil {
			h.subscribe(c, path)
			defer h.sendEvent(c, path)
		}
	case OpUnsubscribe:
		h.unsubscribe(c, path)
	case OpOnDisconnectSet:
		if err = authorizeWrite(c.UserID, path); err == nil {
			if _, err = DecodeValue(req.Value, h.db.now()); err == nil {
				c.onDisconnect[path] = append([]byte(nil), req.Value...)
			}
		}
	case OpCancelOnDisconnect:
		if err = authorizeWrite(c.UserID, path); err == nil {
			for p := range c.onDisconnect {
				if Overlaps(path, p) && len(SplitPath(p)) >= len(SplitPath(path)) {
					delete(c.onDisconnect, p)
				}
			}
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Value = value
	}
	h.send(c, resp)
}

func (h *Hub) subscribe(c *Client, path string) {
	if h.subscriptions[path] == nil {
		h.subscriptions[path] = make(map[*Client]struct{})
	}
	h.subscriptions[path][c] = struct{}{}
	c.subscriptions[path] = struct{}{}
}

func (h *Hub) unsubscribe(c *Client, path string) {
	delete(c.subscriptions, path)
	delete(h.subscriptions[path], c)
	if len(h.subscriptions[path]) == 0 {
		delete(h.subscriptions, path)
	}
}

// notify sends the current value of every subscription overlapping the
// written path.
func (h *Hub) notify(written string) {
	type target struct {
		client *Client
		path   string
	}
	var targets []target
	for path, clients := range h.subscriptions {
		if !Overlaps(path, written) {
			continue
		}
		for c := range clients {
			targets = append(targets, target{client: c, path: path})
		}
	}
	for _, t := range targets {
		if _, ok := h.clients[t.client]; ok {
			h.sendEvent(t.client, t.path)
		}
	}
}

func (h *Hub) sendEvent(c *Client, path string) {
	value, err := h.db.Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "Hub.sendEvent").Str("path", path).Msg("read subscribed path")
		return
	}
	h.send(c, Response{Type: MessageEvent, Path: path, Value: value})
}

// send queues resp for c. A client that cannot keep up is disconnected.
func (h *Hub) send(c *Client, resp Response) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		h.logger.Err(err).Str("func", "Hub.send").Msg("encode realtime response")
		return
	}

	select {
	case c.send <- data:
	default:
		h.logger.Warn().Str("client", c.ID).Msg("realtime send buffer full, closing connection")
		h.disconnect(context.Background(), c)
	}
}

// disconnect drops c and applies its on-disconnect writes.
func (h *Hub) disconnect(ctx context.Context, c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	for path := range c.subscriptions {
		h.unsubscribe(c, path)
	}
	close(c.send)
	metrics.TrackRealtimeConnection(false)

	for path, value := range c.onDisconnect {
		if err := h.db.Set(ctx, path, value); err != nil {
			h.logger.Err(err).Str("func", "Hub.disconnect").Str("path", path).Msg("on-disconnect write failed")
			continue
		}
		h.notify(path)
	}
	c.onDisconnect = nil
	h.logger.Debug().Str("client", c.ID).Str("user", c.UserID).Msg("realtime client unregistered")
}

// authorizeRead allows reads anywhere under users.
func authorizeRead(_ string, path string) error {
	segs := SplitPath(path)
	if len(segs) == 0 || segs[0] != usersRoot {
		return fmt.Errorf("%w: read %s", ErrPermission, path)
	}
	return nil
}

// authorizeWrite allows writes only under users/<own id>.
func authorizeWrite(userID, path string) error {
	segs := SplitPath(path)
	if len(segs) < 2 || segs[0] != usersRoot || segs[1] != userID {
		return fmt.Errorf("%w: write %s", ErrPermission, path)
	}
	return nil
}
