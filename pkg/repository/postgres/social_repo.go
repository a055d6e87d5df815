package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerpathai/backend/pkg/social"
)

// SocialRepository stores friend requests and friendships. A friendship is a
// single row regardless of who sent the request.
type SocialRepository struct {
	pool *pgxpool.Pool
}

func NewSocialRepository(pool *pgxpool.Pool) (*SocialRepository, error) {
	r := &SocialRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SocialRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS friend_requests (
	id UUID PRIMARY KEY,
	sender_id UUID NOT NULL,
	recipient_id UUID NOT NULL,
	sender_name TEXT NOT NULL,
	recipient_name TEXT NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	responded_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_friend_requests_recipient ON friend_requests(recipient_id, status);
CREATE TABLE IF NOT EXISTS friendships (
	id UUID PRIMARY KEY,
	user1_id UUID NOT NULL,
	user2_id UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (user1_id, user2_id)
);
CREATE INDEX IF NOT EXISTS idx_friendships_user1 ON friendships(user1_id);
CREATE INDEX IF NOT EXISTS idx_friendships_user2 ON friendships(user2_id);
`)
	return err
}

func (r *SocialRepository) CreateRequest(ctx context.Context, fr social.FriendRequest) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO friend_requests (id, sender_id, recipient_id, sender_name, recipient_name,
	message, status, created_at, responded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, fr.ID, fr.SenderID, fr.RecipientID, fr.SenderName, fr.RecipientName,
		fr.Message, fr.Status, fr.CreatedAt, fr.RespondedAt)
	return err
}

func (r *SocialRepository) GetRequest(ctx context.Context, id uuid.UUID) (social.FriendRequest, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, sender_id, recipient_id, sender_name, recipient_name,
	message, status, created_at, responded_at
FROM friend_requests WHERE id = $1
`, id)
	fr, err := scanFriendRequest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return social.FriendRequest{}, social.ErrRequestNotFound
	}
	return fr, err
}

func (r *SocialRepository) UpdateRequest(ctx context.Context, fr social.FriendRequest) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE friend_requests SET status = $2, responded_at = $3 WHERE id = $1
`, fr.ID, fr.Status, fr.RespondedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return social.ErrRequestNotFound
	}
	return nil
}

func (r *SocialRepository) ListIncoming(ctx context.Context, recipientID uuid.UUID) ([]social.FriendRequest, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, sender_id, recipient_id, sender_name, recipient_name,
	message, status, created_at, responded_at
FROM friend_requests
WHERE recipient_id = $1 AND status = 'pending'
ORDER BY created_at DESC
`, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []social.FriendRequest{}
	for rows.Next() {
		fr, err := scanFriendRequest(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, fr)
	}
	return res, rows.Err()
}

func (r *SocialRepository) PendingBetween(ctx context.Context, a, b uuid.UUID) (bool, error) {
	row := r.pool.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM friend_requests
	WHERE status = 'pending'
		AND ((sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1))
)
`, a, b)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SocialRepository) CreateFriendship(ctx context.Context, f social.Friendship) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO friendships (id, user1_id, user2_id, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user1_id, user2_id) DO NOTHING
`, f.ID, f.User1ID, f.User2ID, f.CreatedAt)
	return err
}

func (r *SocialRepository) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	row := r.pool.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM friendships
	WHERE (user1_id = $1 AND user2_id = $2) OR (user1_id = $2 AND user2_id = $1)
)
`, a, b)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SocialRepository) FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
SELECT CASE WHEN user1_id = $1 THEN user2_id ELSE user1_id END
FROM friendships
WHERE user1_id = $1 OR user2_id = $1
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

func (r *SocialRepository) CountFriends(ctx context.Context, userID uuid.UUID) (int, error) {
	row := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM friendships WHERE user1_id = $1 OR user2_id = $1
`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanFriendRequest(row pgx.Row) (social.FriendRequest, error) {
	var fr social.FriendRequest
	var created time.Time
	err := row.Scan(&fr.ID, &fr.SenderID, &fr.RecipientID, &fr.SenderName, &fr.RecipientName,
		&fr.Message, &fr.Status, &created, &fr.RespondedAt)
	if err != nil {
		return social.FriendRequest{}, err
	}
	fr.CreatedAt = created.UTC()
	if fr.RespondedAt != nil {
		t := fr.RespondedAt.UTC()
		fr.RespondedAt = &t
	}
	return fr, nil
}
