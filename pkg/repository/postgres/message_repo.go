package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerpathai/backend/pkg/chat"
)

// MessageRepository stores private chat messages.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) (*MessageRepository, error) {
	r := &MessageRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MessageRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS messages (
	id UUID PRIMARY KEY,
	sender_id UUID NOT NULL,
	recipient_id UUID NOT NULL,
	content TEXT NOT NULL,
	sent_at TIMESTAMPTZ NOT NULL,
	message_type TEXT NOT NULL DEFAULT 'private',
	read BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender_id, recipient_id, sent_at);
CREATE INDEX IF NOT EXISTS idx_messages_unread ON messages(recipient_id, read);
`)
	return err
}

func (r *MessageRepository) Create(ctx context.Context, m chat.Message) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO messages (id, sender_id, recipient_id, content, sent_at, message_type, read)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, m.ID, m.SenderID, m.RecipientID, m.Content, m.Timestamp, m.MessageType, m.Read)
	return err
}

func (r *MessageRepository) Between(ctx context.Context, a, b uuid.UUID, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, sender_id, recipient_id, content, sent_at, message_type, read FROM (
	SELECT id, sender_id, recipient_id, content, sent_at, message_type, read
	FROM messages
	WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
	ORDER BY sent_at DESC
	LIMIT $3
) m ORDER BY sent_at ASC
`, a, b, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *MessageRepository) RecentForUser(ctx context.Context, userID uuid.UUID, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, sender_id, recipient_id, content, sent_at, message_type, read FROM (
	SELECT id, sender_id, recipient_id, content, sent_at, message_type, read
	FROM messages
	WHERE sender_id = $1 OR recipient_id = $1
	ORDER BY sent_at DESC
	LIMIT $2
) m ORDER BY sent_at ASC
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *MessageRepository) MarkReadFrom(ctx context.Context, recipientID, senderID uuid.UUID) (int, error) {
	cmd, err := r.pool.Exec(ctx, `
UPDATE messages SET read = TRUE
WHERE recipient_id = $1 AND sender_id = $2 AND read = FALSE
`, recipientID, senderID)
	if err != nil {
		return 0, err
	}
	return int(cmd.RowsAffected()), nil
}

// Conversations folds the message log into one row per partner: the latest
// message plus the count still unread, newest conversation first.
func (r *MessageRepository) Conversations(ctx context.Context, userID uuid.UUID) ([]chat.Conversation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.partner, u.full_name, p.content, p.sent_at, COALESCE(un.cnt, 0)
FROM (
	SELECT DISTINCT ON (CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END)
		CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END AS partner,
		m.content, m.sent_at
	FROM messages m
	WHERE m.sender_id = $1 OR m.recipient_id = $1
	ORDER BY CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END, m.sent_at DESC
) p
JOIN users u ON u.id = p.partner
LEFT JOIN (
	SELECT sender_id, COUNT(*) AS cnt
	FROM messages
	WHERE recipient_id = $1 AND read = FALSE
	GROUP BY sender_id
) un ON un.sender_id = p.partner
ORDER BY p.sent_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []chat.Conversation{}
	for rows.Next() {
		var c chat.Conversation
		var last time.Time
		if err := rows.Scan(&c.PartnerID, &c.PartnerName, &c.LastMessage, &last, &c.UnreadCount); err != nil {
			return nil, err
		}
		c.LastMessageTime = last.UTC()
		res = append(res, c)
	}
	return res, rows.Err()
}

func collectMessages(rows pgx.Rows) ([]chat.Message, error) {
	res := []chat.Message{}
	for rows.Next() {
		var m chat.Message
		var sent time.Time
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &sent, &m.MessageType, &m.Read); err != nil {
			return nil, err
		}
		m.Timestamp = sent.UTC()
		res = append(res, m)
	}
	return res, rows.Err()
}
