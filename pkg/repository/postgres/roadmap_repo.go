package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerpathai/backend/pkg/roadmap"
)

// RoadmapRepository stores roadmaps with milestones as a JSONB document, so
// the nested resource metadata survives round trips untouched.
type RoadmapRepository struct {
	pool *pgxpool.Pool
}

func NewRoadmapRepository(pool *pgxpool.Pool) (*RoadmapRepository, error) {
	r := &RoadmapRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RoadmapRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS roadmaps (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	market_context TEXT NOT NULL DEFAULT '',
	current_market_salary TEXT NOT NULL DEFAULT '',
	success_metrics TEXT NOT NULL DEFAULT '',
	milestones JSONB NOT NULL,
	total_estimated_hours INT NOT NULL,
	progress_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_roadmaps_owner ON roadmaps(owner_id);
`)
	return err
}

const roadmapColumns = `id, owner_id, title, description, market_context,
	current_market_salary, success_metrics, milestones,
	total_estimated_hours, progress_percentage, created_at`

func scanRoadmap(row pgx.Row) (roadmap.Roadmap, error) {
	var rm roadmap.Roadmap
	var milestones []byte
	var created time.Time
	err := row.Scan(
		&rm.ID, &rm.UserID, &rm.Title, &rm.Description, &rm.MarketContext,
		&rm.CurrentMarketSalary, &rm.SuccessMetrics, &milestones,
		&rm.TotalEstimatedHours, &rm.ProgressPercentage, &created,
	)
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	rm.CreatedAt = created.UTC()
	if err := json.Unmarshal(milestones, &rm.Milestones); err != nil {
		return roadmap.Roadmap{}, err
	}
	return rm, nil
}

func (r *RoadmapRepository) Create(ctx context.Context, rm roadmap.Roadmap) error {
	if rm.ID == "" {
		rm.ID = uuid.NewString()
	}
	if rm.CreatedAt.IsZero() {
		rm.CreatedAt = time.Now().UTC()
	}
	milestones, err := json.Marshal(rm.Milestones)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO roadmaps (id, owner_id, title, description, market_context,
	current_market_salary, success_metrics, milestones,
	total_estimated_hours, progress_percentage, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, rm.ID, rm.UserID, rm.Title, rm.Description, rm.MarketContext,
		rm.CurrentMarketSalary, rm.SuccessMetrics, milestones,
		rm.TotalEstimatedHours, rm.ProgressPercentage, rm.CreatedAt)
	return err
}

func (r *RoadmapRepository) GetByIDForOwner(ctx context.Context, ownerID uuid.UUID, id string) (roadmap.Roadmap, error) {
	if _, err := uuid.Parse(id); err != nil {
		return roadmap.Roadmap{}, roadmap.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
SELECT `+roadmapColumns+` FROM roadmaps WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	rm, err := scanRoadmap(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return roadmap.Roadmap{}, roadmap.ErrNotFound
	}
	return rm, err
}

func (r *RoadmapRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]roadmap.Roadmap, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+roadmapColumns+` FROM roadmaps WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []roadmap.Roadmap{}
	for rows.Next() {
		rm, err := scanRoadmap(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rm)
	}
	return res, rows.Err()
}

func (r *RoadmapRepository) UpdateMilestones(ctx context.Context, id string, milestones []roadmap.Milestone, progress float64) error {
	if _, err := uuid.Parse(id); err != nil {
		return roadmap.ErrNotFound
	}
	doc, err := json.Marshal(milestones)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE roadmaps SET milestones = $2, progress_percentage = $3 WHERE id = $1
`, id, doc, progress)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return roadmap.ErrNotFound
	}
	return nil
}

func (r *RoadmapRepository) ListInProgress(ctx context.Context) ([]roadmap.Roadmap, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+roadmapColumns+` FROM roadmaps r
WHERE EXISTS (
	SELECT 1 FROM jsonb_array_elements(r.milestones) m
	WHERE m->>'status' = 'in_progress'
)
ORDER BY created_at
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []roadmap.Roadmap{}
	for rows.Next() {
		rm, err := scanRoadmap(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rm)
	}
	return res, rows.Err()
}

// CountCompletedByOwner unnests the milestone documents server-side; the
// stored counter on users is the fast path, this is the audited one.
func (r *RoadmapRepository) CountCompletedByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	row := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM roadmaps r, jsonb_array_elements(r.milestones) m
WHERE r.owner_id = $1 AND m->>'status' = 'completed'
`, ownerID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
