package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerpathai/backend/pkg/notification"
)

// NotificationRepository stores the per-user notification feed.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) (*NotificationRepository, error) {
	r := &NotificationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *NotificationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS notifications (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	type TEXT NOT NULL,
	read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	action_url TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at DESC);
`)
	return err
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO notifications (id, user_id, title, message, type, read, created_at, action_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, n.ID, n.UserID, n.Title, n.Message, n.Type, n.Read, n.CreatedAt, n.ActionURL)
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, title, message, type, read, created_at, action_url
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []notification.Notification{}
	for rows.Next() {
		var n notification.Notification
		var created time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &created, &n.ActionURL); err != nil {
			return nil, err
		}
		n.CreatedAt = created.UTC()
		res = append(res, n)
	}
	return res, rows.Err()
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	row := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE
`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2
`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	cmd, err := r.pool.Exec(ctx, `
UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE
`, userID)
	if err != nil {
		return 0, err
	}
	return int(cmd.RowsAffected()), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM notifications WHERE id = $1 AND user_id = $2
`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}
