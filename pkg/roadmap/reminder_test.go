package roadmap

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/user"
)

type fakeDueNotifier struct {
	due []string
	err error
}

func (f *fakeDueNotifier) MilestoneDue(_ context.Context, userID uuid.UUID, title, roadmapID string) error {
	if f.err != nil {
		return f.err
	}
	f.due = append(f.due, fmt.Sprintf("%s/%s/%s", userID, roadmapID, title))
	return nil
}

type fakeReminderMailer struct {
	sent []string
}

func (f *fakeReminderMailer) SendMilestoneReminder(_ context.Context, email, _, title string) error {
	f.sent = append(f.sent, email+": "+title)
	return nil
}

func reminderFixture() (*fakeRoadmapRepo, *fakeUserDirectory, uuid.UUID) {
	owner := uuid.New()
	repo := newFakeRoadmapRepo()
	repo.byID["rm-1"] = Roadmap{
		ID:     "rm-1",
		UserID: owner.String(),
		Milestones: []Milestone{
			{ID: "m-1", Title: "Strengthen Python Foundations", Status: StatusInProgress},
			{ID: "m-2", Title: "Master Analytical SQL", Status: StatusNotStarted},
		},
	}
	// Fully completed roadmap: nothing to nudge.
	repo.byID["rm-2"] = Roadmap{
		ID:     "rm-2",
		UserID: owner.String(),
		Milestones: []Milestone{
			{ID: "m-3", Title: "Ship a Portfolio Project", Status: StatusCompleted},
		},
	}
	users := &fakeUserDirectory{users: map[uuid.UUID]user.User{
		owner: {
			ID: owner, Email: "alex@example.com", FullName: "Alex Rivera",
			Settings: user.DefaultSettings(),
		},
	}}
	return repo, users, owner
}

func TestReminderSweep_NudgesInProgressMilestones(t *testing.T) {
	repo, users, owner := reminderFixture()
	notify := &fakeDueNotifier{}
	mailer := &fakeReminderMailer{}
	w := NewReminderWorker(repo, users, notify, mailer, time.Hour, zap.NewNop())

	w.Sweep(context.Background())

	require.Len(t, notify.due, 1, "only the in-progress milestone gets a reminder")
	assert.Equal(t, fmt.Sprintf("%s/rm-1/Strengthen Python Foundations", owner), notify.due[0])
	assert.Equal(t, []string{"alex@example.com: Strengthen Python Foundations"}, mailer.sent)
}

func TestReminderSweep_HonorsOwnerSettings(t *testing.T) {
	quiet := func(mutate func(*user.Settings)) (*fakeDueNotifier, *fakeReminderMailer) {
		repo, users, owner := reminderFixture()
		u := users.users[owner]
		mutate(&u.Settings)
		users.users[owner] = u
		notify := &fakeDueNotifier{}
		mailer := &fakeReminderMailer{}
		NewReminderWorker(repo, users, notify, mailer, time.Hour, zap.NewNop()).Sweep(context.Background())
		return notify, mailer
	}

	notify, mailer := quiet(func(s *user.Settings) { s.EmailNotifications = false })
	assert.Empty(t, notify.due, "emails disabled silences reminders entirely")
	assert.Empty(t, mailer.sent)

	notify, mailer = quiet(func(s *user.Settings) { s.ReminderFrequency = "none" })
	assert.Empty(t, notify.due)
	assert.Empty(t, mailer.sent)
}

func TestReminderSweep_SkipsUnknownOwner(t *testing.T) {
	repo, users, owner := reminderFixture()
	delete(users.users, owner)
	notify := &fakeDueNotifier{}
	w := NewReminderWorker(repo, users, notify, nil, time.Hour, zap.NewNop())

	w.Sweep(context.Background())

	assert.Empty(t, notify.due)
}

func TestReminderSweep_NotificationFailureSkipsEmail(t *testing.T) {
	repo, users, _ := reminderFixture()
	notify := &fakeDueNotifier{err: errors.New("insert failed")}
	mailer := &fakeReminderMailer{}
	w := NewReminderWorker(repo, users, notify, mailer, time.Hour, zap.NewNop())

	w.Sweep(context.Background())

	assert.Empty(t, mailer.sent, "no email without the stored notification")
}

func TestReminderSweep_NoMailerConfigured(t *testing.T) {
	repo, users, _ := reminderFixture()
	notify := &fakeDueNotifier{}
	w := NewReminderWorker(repo, users, notify, nil, time.Hour, zap.NewNop())

	require.NotPanics(t, func() { w.Sweep(context.Background()) })
	assert.Len(t, notify.due, 1)
}
