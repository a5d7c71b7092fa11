package adapter

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/realtime"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const sessionWriteWait = 10 * time.Second

// realtimeSession is one authenticated websocket connection. Replies are
// matched to requests by ID; events go to the dispatch function.
type realtimeSession struct {
	conn     *websocket.Conn
	userID   string
	dispatch func(path string, value json.RawMessage)

	writeMu sync.Mutex
	nextID  atomic.Uint64

	mu      sync.Mutex
	pending map[uint64]chan realtime.Response
	done    chan struct{}
	once    sync.Once

	logger *logger.Logger
}

func newRealtimeSession(conn *websocket.Conn, userID string, dispatch func(string, json.RawMessage), log *logger.Logger) *realtimeSession {
	return &realtimeSession{
		conn:     conn,
		userID:   userID,
		dispatch: dispatch,
		pending:  make(map[uint64]chan realtime.Response),
		done:     make(chan struct{}),
		logger:   log,
	}
}

func (s *realtimeSession) call(ctx context.Context, req realtime.Request) (realtime.Response, error) {
	req.ID = s.nextID.Add(1)
	reply := make(chan realtime.Response, 1)

	s.mu.Lock()
	if s.closed() {
		s.mu.Unlock()
		return realtime.Response{}, errConnectionClosed
	}
	s.pending[req.ID] = reply
	s.mu.Unlock()

	if err := s.write(req); err != nil {
		s.forget(req.ID)
		s.close()
		return realtime.Response{}, fmt.Errorf("%w: %w", errConnectionClosed, err)
	}

	select {
	case resp := <-reply:
		return resp, nil
	case <-s.done:
		return realtime.Response{}, errConnectionClosed
	case <-ctx.Done():
		s.forget(req.ID)
		return realtime.Response{}, fmt.Errorf("%w: %w", ErrTransient, ctx.Err())
	}
}

func (s *realtimeSession) write(req realtime.Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err = s.conn.SetWriteDeadline(time.Now().Add(sessionWriteWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *realtimeSession) forget(id uint64) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// readLoop runs until the connection fails or is closed.
func (s *realtimeSession) readLoop() {
	defer s.close()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !s.closed() {
				s.logger.Debug().Err(err).Str("func", "realtimeSession.readLoop").Msg("realtime connection lost")
			}
			return
		}

		var resp realtime.Response
		if err = json.Unmarshal(data, &resp); err != nil {
			s.logger.Warn().Err(err).Str("func", "realtimeSession.readLoop").Msg("undecodable realtime message")
			continue
		}

		switch resp.Type {
		case realtime.MessageReply:
			s.mu.Lock()
			reply, ok := s.pending[resp.ID]
			delete(s.pending, resp.ID)
			s.mu.Unlock()
			if ok {
				reply <- resp
			}
		case realtime.MessageEvent:
			s.dispatch(resp.Path, resp.Value)
		}
	}
}

func (s *realtimeSession) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *realtimeSession) close() {
	s.once.Do(func() {
		close(s.done)

		s.writeMu.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.writeMu.Unlock()

		_ = s.conn.Close()
	})
}
