package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/chat"
	"github.com/careerpathai/backend/pkg/metrics"
	"github.com/careerpathai/backend/pkg/notification"
	"github.com/careerpathai/backend/pkg/security/jwt"
	"github.com/careerpathai/backend/pkg/user"
)

// FriendLister resolves who should see a user's presence changes.
type FriendLister interface {
	FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Hub tracks live sessions, one per user, and fans events out to them. It
// implements the notification and chat push interfaces so domain services
// can reach connected clients without knowing about websockets.
type Hub struct {
	users   user.UseCase
	friends FriendLister
	chats   chat.UseCase
	log     *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func NewHub(users user.UseCase, friends FriendLister, chats chat.UseCase, log *zap.Logger) *Hub {
	return &Hub{
		users:    users,
		friends:  friends,
		chats:    chats,
		log:      log,
		sessions: make(map[uuid.UUID]*session),
	}
}

// UpgradeMiddleware authenticates the handshake: the JWT comes as a query
// parameter because browsers cannot set headers on websocket connects.
func UpgradeMiddleware(secret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		claims, err := jwt.Parse(c.Query("token"), secret, issuer)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or missing token"})
		}
		c.Locals("userId", claims.Subject)
		return c.Next()
	}
}

// Handler returns the connection handler to register behind UpgradeMiddleware.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.serve(conn)
	})
}

func (h *Hub) serve(conn *websocket.Conn) {
	raw, _ := conn.Locals("userId").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		_ = conn.Close()
		return
	}
	ctx := context.Background()

	s := newSession(userID, conn)
	h.register(ctx, s)
	defer h.unregister(ctx, s)

	go s.writePump()
	h.sendHistory(ctx, s)

	for {
		var in inboundEvent
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		h.dispatch(ctx, s, in)
	}
}

func (h *Hub) register(ctx context.Context, s *session) {
	h.mu.Lock()
	old := h.sessions[s.userID]
	h.sessions[s.userID] = s
	h.mu.Unlock()
	if old != nil {
		old.close()
	}

	metrics.WebsocketSessions.Inc()
	if err := h.users.SetPresence(ctx, s.userID, true); err != nil {
		h.log.Warn("presence update failed", zap.String("user_id", s.userID.String()), zap.Error(err))
	}
	h.broadcastPresence(ctx, s.userID, true)
	h.log.Info("websocket connected", zap.String("user_id", s.userID.String()))
}

func (h *Hub) unregister(ctx context.Context, s *session) {
	h.mu.Lock()
	current := h.sessions[s.userID] == s
	if current {
		delete(h.sessions, s.userID)
	}
	h.mu.Unlock()
	s.close()

	metrics.WebsocketSessions.Dec()
	// A replaced session leaves the user online through its successor.
	if !current {
		return
	}
	if err := h.users.SetPresence(ctx, s.userID, false); err != nil {
		h.log.Warn("presence update failed", zap.String("user_id", s.userID.String()), zap.Error(err))
	}
	h.broadcastPresence(ctx, s.userID, false)
	h.log.Info("websocket disconnected", zap.String("user_id", s.userID.String()))
}

func (h *Hub) sendHistory(ctx context.Context, s *session) {
	msgs, err := h.chats.RecentHistory(ctx, s.userID)
	if err != nil {
		h.log.Warn("history replay failed", zap.String("user_id", s.userID.String()), zap.Error(err))
		return
	}
	s.enqueue(Event{Type: evMessageHistory, Data: fiber.Map{"messages": msgs}})
}

func (h *Hub) dispatch(ctx context.Context, s *session, in inboundEvent) {
	switch in.Type {
	case evPrivateMessage:
		h.handlePrivateMessage(ctx, s, in.Data)
	case evTyping:
		h.handleTyping(s, in.Data)
	case evMarkRead:
		h.handleMarkRead(ctx, s, in.Data)
	default:
		s.enqueue(errorEvent("unknown event type"))
	}
}

func (h *Hub) handlePrivateMessage(ctx context.Context, s *session, data json.RawMessage) {
	var p privateMessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		s.enqueue(errorEvent("invalid private_message payload"))
		return
	}
	recipientID, err := uuid.Parse(p.RecipientID)
	if err != nil {
		s.enqueue(errorEvent("invalid recipient_id"))
		return
	}
	// Send persists and pushes new_message to the recipient through the hub.
	m, err := h.chats.Send(ctx, s.userID, recipientID, p.Content)
	if err != nil {
		s.enqueue(errorEvent(err.Error()))
		return
	}
	metrics.ChatMessagesSent.WithLabelValues("websocket").Inc()
	s.enqueue(Event{Type: evMessageSent, Data: m})
}

func (h *Hub) handleTyping(s *session, data json.RawMessage) {
	var p typingPayload
	if err := json.Unmarshal(data, &p); err != nil {
		s.enqueue(errorEvent("invalid typing payload"))
		return
	}
	recipientID, err := uuid.Parse(p.RecipientID)
	if err != nil {
		s.enqueue(errorEvent("invalid recipient_id"))
		return
	}
	h.push(recipientID, Event{Type: evUserTyping, Data: fiber.Map{
		"user_id":   s.userID,
		"is_typing": p.IsTyping,
	}})
}

func (h *Hub) handleMarkRead(ctx context.Context, s *session, data json.RawMessage) {
	var p markReadPayload
	if err := json.Unmarshal(data, &p); err != nil {
		s.enqueue(errorEvent("invalid mark_read payload"))
		return
	}
	senderID, err := uuid.Parse(p.SenderID)
	if err != nil {
		s.enqueue(errorEvent("invalid sender_id"))
		return
	}
	count, err := h.chats.MarkRead(ctx, s.userID, senderID)
	if err != nil {
		s.enqueue(errorEvent(err.Error()))
		return
	}
	h.push(senderID, Event{Type: evMessagesRead, Data: fiber.Map{
		"reader_id": s.userID,
		"count":     count,
	}})
}

// PushNotification implements notification.Pusher.
func (h *Hub) PushNotification(userID uuid.UUID, n notification.Notification) {
	h.push(userID, Event{Type: evNewNotification, Data: n})
}

// PushMessage implements chat.Pusher.
func (h *Hub) PushMessage(recipientID uuid.UUID, m chat.Message) {
	h.push(recipientID, Event{Type: evNewMessage, Data: m})
}

func (h *Hub) push(userID uuid.UUID, ev Event) {
	h.mu.RLock()
	s := h.sessions[userID]
	h.mu.RUnlock()
	if s == nil {
		return
	}
	if !s.enqueue(ev) {
		h.log.Debug("event dropped", zap.String("user_id", userID.String()), zap.String("type", ev.Type))
	}
}

func (h *Hub) broadcastPresence(ctx context.Context, userID uuid.UUID, online bool) {
	ids, err := h.friends.FriendIDs(ctx, userID)
	if err != nil {
		h.log.Warn("presence broadcast failed", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	ev := Event{Type: evFriendStatusChange, Data: fiber.Map{
		"user_id":   userID,
		"is_online": online,
	}}
	for _, id := range ids {
		h.push(id, ev)
	}
}
