package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerpathai/backend/pkg/user"
)

// UserRepository implements user.Repository backed by PostgreSQL (pgx).
// Gamification counters live in flat columns so increments stay atomic;
// badges, settings and profile are JSONB documents.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	last_login TIMESTAMPTZ,
	is_online BOOLEAN NOT NULL DEFAULT FALSE,
	last_seen TIMESTAMPTZ,
	total_points INT NOT NULL DEFAULT 0,
	level INT NOT NULL DEFAULT 1,
	milestones_completed INT NOT NULL DEFAULT 0,
	courses_completed INT NOT NULL DEFAULT 0,
	points_earned INT NOT NULL DEFAULT 0,
	friends_connected INT NOT NULL DEFAULT 0,
	badges JSONB NOT NULL DEFAULT '[]',
	settings JSONB NOT NULL DEFAULT '{}',
	profile JSONB NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_users_points ON users(total_points DESC);
`)
	return err
}

const userColumns = `id, email, password_hash, full_name, created_at, last_login,
	is_online, last_seen, total_points, level,
	milestones_completed, courses_completed, points_earned, friends_connected,
	badges, settings, profile`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var created time.Time
	var badges, settings, profile []byte
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &created, &u.LastLogin,
		&u.IsOnline, &u.LastSeen, &u.TotalPoints, &u.Level,
		&u.Achievements.MilestonesCompleted, &u.Achievements.CoursesCompleted,
		&u.Achievements.PointsEarned, &u.Achievements.FriendsConnected,
		&badges, &settings, &profile,
	)
	if err != nil {
		return user.User{}, err
	}
	u.CreatedAt = created.UTC()
	if u.LastLogin != nil {
		t := u.LastLogin.UTC()
		u.LastLogin = &t
	}
	if u.LastSeen != nil {
		t := u.LastSeen.UTC()
		u.LastSeen = &t
	}
	if err := json.Unmarshal(badges, &u.Badges); err != nil {
		return user.User{}, err
	}
	if err := json.Unmarshal(settings, &u.Settings); err != nil {
		return user.User{}, err
	}
	if err := json.Unmarshal(profile, &u.Profile); err != nil {
		return user.User{}, err
	}
	if u.Badges == nil {
		u.Badges = []user.Badge{}
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	if u.Badges == nil {
		u.Badges = []user.Badge{}
	}
	badges, err := json.Marshal(u.Badges)
	if err != nil {
		return err
	}
	settings, err := json.Marshal(u.Settings)
	if err != nil {
		return err
	}
	profile, err := json.Marshal(u.Profile)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO users (id, email, password_hash, full_name, created_at,
	total_points, level, badges, settings, profile)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, u.ID, strings.ToLower(u.Email), u.PasswordHash, u.FullName, u.CreatedAt,
		u.TotalPoints, u.Level, badges, settings, profile)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return user.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+userColumns+` FROM users WHERE email = $1
`, strings.ToLower(email))
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+userColumns+` FROM users WHERE id = $1
`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *UserRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, id.String())
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+userColumns+` FROM users WHERE id = ANY($1::uuid[])
`, strs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *UserRepository) UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error {
	return r.exec(ctx, `UPDATE users SET full_name = $2 WHERE id = $1`, id, fullName)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p user.Profile) error {
	profile, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.exec(ctx, `UPDATE users SET profile = $2 WHERE id = $1`, id, profile)
}

func (r *UserRepository) UpdateSettings(ctx context.Context, id uuid.UUID, s user.Settings) error {
	settings, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.exec(ctx, `UPDATE users SET settings = $2 WHERE id = $1`, id, settings)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
}

func (r *UserRepository) SetPresence(ctx context.Context, id uuid.UUID, online bool, lastSeen time.Time) error {
	return r.exec(ctx, `UPDATE users SET is_online = $2, last_seen = $3 WHERE id = $1`, id, online, lastSeen)
}

func (r *UserRepository) AddPoints(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE users SET total_points = total_points + $2, points_earned = points_earned + $2
WHERE id = $1
RETURNING total_points
`, id, delta)
	var total int
	if err := row.Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, user.ErrNotFound
		}
		return 0, err
	}
	return total, nil
}

func (r *UserRepository) AppendBadge(ctx context.Context, id uuid.UUID, b user.Badge) error {
	badge, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return r.exec(ctx, `UPDATE users SET badges = badges || $2::jsonb WHERE id = $1`, id, badge)
}

func (r *UserRepository) IncrementAchievements(ctx context.Context, id uuid.UUID, delta user.Achievements) error {
	return r.exec(ctx, `
UPDATE users SET
	milestones_completed = milestones_completed + $2,
	courses_completed = courses_completed + $3,
	points_earned = points_earned + $4,
	friends_connected = friends_connected + $5
WHERE id = $1
`, id, delta.MilestonesCompleted, delta.CoursesCompleted, delta.PointsEarned, delta.FriendsConnected)
}

func (r *UserRepository) TopByPoints(ctx context.Context, limit int) ([]user.User, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+userColumns+` FROM users
ORDER BY total_points DESC, created_at ASC
LIMIT $1
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *UserRepository) Discover(ctx context.Context, exclude []uuid.UUID, roleLike, industry string, limit int) ([]user.User, error) {
	if limit <= 0 {
		limit = 10
	}
	excluded := make([]string, 0, len(exclude))
	for _, id := range exclude {
		excluded = append(excluded, id.String())
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+userColumns+` FROM users
WHERE NOT (id = ANY($1::uuid[]))
	AND (profile->>'target_role' ILIKE '%' || $2 || '%' OR profile->>'industry' = $3)
ORDER BY created_at DESC
LIMIT $4
`, excluded, roleLike, industry, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

// exec runs an UPDATE that must touch exactly one user.
func (r *UserRepository) exec(ctx context.Context, sql string, args ...any) error {
	cmd, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func collectUsers(rows pgx.Rows) ([]user.User, error) {
	res := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}
