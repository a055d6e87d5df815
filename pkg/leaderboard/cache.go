package leaderboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// scoreKey is the sorted set holding user ids scored by total points.
const scoreKey = "leaderboard:points"

// ScoreStore keeps the ranking in a redis sorted set so leaderboard reads
// avoid a full table scan. It satisfies user.ScoreCache.
type ScoreStore struct {
	rdb *redis.Client
}

func NewScoreStore(rdb *redis.Client) *ScoreStore {
	return &ScoreStore{rdb: rdb}
}

func (s *ScoreStore) SetScore(ctx context.Context, id uuid.UUID, total int) error {
	return s.rdb.ZAdd(ctx, scoreKey, redis.Z{
		Score:  float64(total),
		Member: id.String(),
	}).Err()
}

// TopIDs returns up to limit user ids ranked by points, best first. Members
// that are not valid UUIDs are skipped.
func (s *ScoreStore) TopIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	members, err := s.rdb.ZRevRange(ctx, scoreKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
