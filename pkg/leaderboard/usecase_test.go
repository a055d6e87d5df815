package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/user"
)

type fakeRankedUsers struct {
	user.Repository
	ranked []user.User
	limit  int
}

func (f *fakeRankedUsers) TopByPoints(_ context.Context, limit int) ([]user.User, error) {
	f.limit = limit
	if len(f.ranked) > limit {
		return f.ranked[:limit], nil
	}
	return f.ranked, nil
}

type fakeMilestones struct {
	counts map[uuid.UUID]int
	err    error
}

func (f *fakeMilestones) CountCompletedByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[ownerID], nil
}

func rankedFixture() (*fakeRankedUsers, *fakeMilestones) {
	users := &fakeRankedUsers{ranked: []user.User{
		{
			ID: uuid.New(), FullName: "Alex Rivera", TotalPoints: 320, Level: 4,
			Badges:       []user.Badge{{ID: "first_milestone"}, {ID: "milestone_master"}},
			Achievements: user.Achievements{MilestonesCompleted: 12, FriendsConnected: 3},
			Profile:      user.Profile{CurrentRole: "Financial Analyst", Industry: "Technology"},
		},
		{
			ID: uuid.New(), FullName: "Sam Okafor", TotalPoints: 180, Level: 2,
			Achievements: user.Achievements{MilestonesCompleted: 7, FriendsConnected: 1},
		},
		{
			ID: uuid.New(), FullName: "Priya Nair", TotalPoints: 90, Level: 1,
			Achievements: user.Achievements{MilestonesCompleted: 4},
		},
	}}
	// Alex reverted one milestone after the counter was bumped; the roadmap
	// table only holds 11 completed documents.
	milestones := &fakeMilestones{counts: map[uuid.UUID]int{
		users.ranked[0].ID: 11,
		users.ranked[1].ID: 7,
		users.ranked[2].ID: 4,
	}}
	return users, milestones
}

func TestTop_SQLOrdering(t *testing.T) {
	users, milestones := rankedFixture()
	svc := NewService(users, milestones, nil, zap.NewNop())

	entries, err := svc.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, topLimit, users.limit)

	assert.Equal(t, Entry{Rank: 1, UserName: "Alex Rivera", TotalPoints: 320, MilestonesCompleted: 11}, entries[0])
	assert.Equal(t, Entry{Rank: 2, UserName: "Sam Okafor", TotalPoints: 180, MilestonesCompleted: 7}, entries[1])
	assert.Equal(t, 3, entries[2].Rank)
}

func TestExtended_CarriesGamificationFields(t *testing.T) {
	users, milestones := rankedFixture()
	svc := NewService(users, milestones, nil, zap.NewNop())

	entries, err := svc.Extended(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, extendedLimit, users.limit)

	top := entries[0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, users.ranked[0].ID, top.UserID)
	assert.Equal(t, 4, top.Level)
	assert.Equal(t, 11, top.MilestonesCompleted)
	assert.Equal(t, 2, top.BadgesCount)
	assert.Equal(t, 3, top.FriendsCount)
	assert.Equal(t, users.ranked[0].Profile, top.Profile)
}

func TestMilestoneCount_FallsBackToStoredCounter(t *testing.T) {
	users, milestones := rankedFixture()
	milestones.err = errors.New("pool closed")
	svc := NewService(users, milestones, nil, zap.NewNop())

	entries, err := svc.Top(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, entries[0].MilestonesCompleted)

	noCounter, _ := rankedFixture()
	svc = NewService(noCounter, nil, nil, zap.NewNop())
	entries, err = svc.Top(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, entries[0].MilestonesCompleted)
}

func TestTop_EmptyBoard(t *testing.T) {
	svc := NewService(&fakeRankedUsers{}, &fakeMilestones{}, nil, zap.NewNop())

	entries, err := svc.Top(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries, "empty board serializes as [], not null")
}
