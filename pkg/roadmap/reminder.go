package roadmap

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/metrics"
	"github.com/careerpathai/backend/pkg/user"
)

// ReminderNotifier produces the in-app milestone reminder.
type ReminderNotifier interface {
	MilestoneDue(ctx context.Context, userID uuid.UUID, milestoneTitle, roadmapID string) error
}

// ReminderMailer sends the reminder email. May be nil; reminders then stay
// in-app only.
type ReminderMailer interface {
	SendMilestoneReminder(ctx context.Context, email, name, milestoneTitle string) error
}

// ReminderWorker periodically nudges users about milestones sitting in
// progress. Owners who disabled email notifications or set their reminder
// frequency to none are skipped.
type ReminderWorker struct {
	repo   Repository
	users  user.Repository
	notify ReminderNotifier
	mail   ReminderMailer
	every  time.Duration
	log    *zap.Logger
}

func NewReminderWorker(repo Repository, users user.Repository, notify ReminderNotifier, mail ReminderMailer, every time.Duration, log *zap.Logger) *ReminderWorker {
	if every <= 0 {
		every = time.Hour
	}
	return &ReminderWorker{repo: repo, users: users, notify: notify, mail: mail, every: every, log: log}
}

// Run sweeps on every tick until ctx is cancelled.
func (w *ReminderWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep reminds each owner once per in-progress milestone.
func (w *ReminderWorker) Sweep(ctx context.Context) {
	rms, err := w.repo.ListInProgress(ctx)
	if err != nil {
		w.log.Warn("reminder sweep failed", zap.Error(err))
		return
	}
	for _, rm := range rms {
		ownerID, err := uuid.Parse(rm.UserID)
		if err != nil {
			continue
		}
		owner, err := w.users.GetByID(ctx, ownerID)
		if err != nil {
			continue
		}
		if !owner.Settings.EmailNotifications || owner.Settings.ReminderFrequency == "none" {
			continue
		}
		for _, m := range rm.Milestones {
			if m.Status != StatusInProgress {
				continue
			}
			if err := w.notify.MilestoneDue(ctx, owner.ID, m.Title, rm.ID); err != nil {
				w.log.Warn("reminder notification failed",
					zap.String("user_id", owner.ID.String()), zap.Error(err))
				continue
			}
			metrics.MilestoneReminders.Inc()
			if w.mail == nil {
				continue
			}
			if err := w.mail.SendMilestoneReminder(ctx, owner.Email, owner.FullName, m.Title); err != nil {
				w.log.Warn("reminder email failed",
					zap.String("user_id", owner.ID.String()), zap.Error(err))
			}
		}
	}
}
