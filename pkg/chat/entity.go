package chat

import (
	"time"

	"github.com/google/uuid"
)

const MessageTypePrivate = "private"

type Message struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	MessageType string    `json:"message_type"`
	Read        bool      `json:"read"`
}

// Conversation is one row of the inbox: the partner, the latest message and
// how many of their messages are still unread.
type Conversation struct {
	PartnerID       uuid.UUID `json:"participant_id"`
	PartnerName     string    `json:"participant_name"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}
