package ws

import "encoding/json"

// Event is the wire envelope for both directions: a type tag and a payload.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Outbound event types.
const (
	evMessageHistory     = "message_history"
	evNewMessage         = "new_message"
	evMessageSent        = "message_sent"
	evUserTyping         = "user_typing"
	evMessagesRead       = "messages_read"
	evFriendStatusChange = "friend_status_change"
	evNewNotification    = "new_notification"
	evError              = "error"
)

// Inbound event types.
const (
	evPrivateMessage = "private_message"
	evTyping         = "typing"
	evMarkRead       = "mark_read"
)

type inboundEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type privateMessagePayload struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

type typingPayload struct {
	RecipientID string `json:"recipient_id"`
	IsTyping    bool   `json:"is_typing"`
}

type markReadPayload struct {
	SenderID string `json:"sender_id"`
}

func errorEvent(msg string) Event {
	return Event{Type: evError, Data: map[string]string{"message": msg}}
}
