package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const sendBuffer = 32

// session is one authenticated websocket connection. All writes go through
// the send channel so only writePump touches the conn.
type session struct {
	userID uuid.UUID
	conn   *websocket.Conn

	mu     sync.Mutex
	send   chan Event
	closed bool
}

func newSession(userID uuid.UUID, conn *websocket.Conn) *session {
	return &session{
		userID: userID,
		conn:   conn,
		send:   make(chan Event, sendBuffer),
	}
}

// enqueue offers an event to the session without blocking. A full buffer or
// a closed session drops the event.
func (s *session) enqueue(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.send <- ev:
		return true
	default:
		return false
	}
}

// close stops the write side; safe to call more than once.
func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// writePump drains the send channel onto the connection. A write failure
// closes the conn, which in turn ends the read loop.
func (s *session) writePump() {
	for ev := range s.send {
		if err := s.conn.WriteJSON(ev); err != nil {
			_ = s.conn.Close()
			return
		}
	}
	_ = s.conn.Close()
}
