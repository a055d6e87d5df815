package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePointsRepo struct {
	Repository
	totals   map[uuid.UUID]int
	presence map[uuid.UUID]bool
}

func (f *fakePointsRepo) AddPoints(_ context.Context, id uuid.UUID, points int) (int, error) {
	f.totals[id] += points
	return f.totals[id], nil
}

func (f *fakePointsRepo) SetPresence(_ context.Context, id uuid.UUID, online bool, _ time.Time) error {
	f.presence[id] = online
	return nil
}

type fakeScoreCache struct {
	scores map[uuid.UUID]int
	err    error
}

func (f *fakeScoreCache) SetScore(_ context.Context, id uuid.UUID, total int) error {
	if f.err != nil {
		return f.err
	}
	f.scores[id] = total
	return nil
}

func TestAwardPoints_MirrorsToCache(t *testing.T) {
	repo := &fakePointsRepo{totals: map[uuid.UUID]int{}, presence: map[uuid.UUID]bool{}}
	cache := &fakeScoreCache{scores: map[uuid.UUID]int{}}
	svc := NewService(repo, cache, zap.NewNop())
	id := uuid.New()

	total, err := svc.AwardPoints(context.Background(), id, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	total, err = svc.AwardPoints(context.Background(), id, 25)
	require.NoError(t, err)
	assert.Equal(t, 35, total)
	assert.Equal(t, 35, cache.scores[id])
}

func TestAwardPoints_CacheFailureIsNonFatal(t *testing.T) {
	repo := &fakePointsRepo{totals: map[uuid.UUID]int{}, presence: map[uuid.UUID]bool{}}
	cache := &fakeScoreCache{err: errors.New("redis gone")}
	svc := NewService(repo, cache, zap.NewNop())

	total, err := svc.AwardPoints(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestAwardPoints_NoCacheConfigured(t *testing.T) {
	repo := &fakePointsRepo{totals: map[uuid.UUID]int{}, presence: map[uuid.UUID]bool{}}
	svc := NewService(repo, nil, zap.NewNop())

	total, err := svc.AwardPoints(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestSetPresence(t *testing.T) {
	repo := &fakePointsRepo{totals: map[uuid.UUID]int{}, presence: map[uuid.UUID]bool{}}
	svc := NewService(repo, nil, zap.NewNop())
	id := uuid.New()

	require.NoError(t, svc.SetPresence(context.Background(), id, true))
	assert.True(t, repo.presence[id])

	require.NoError(t, svc.SetPresence(context.Background(), id, false))
	assert.False(t, repo.presence[id])
}
