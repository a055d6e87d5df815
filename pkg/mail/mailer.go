package mail

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer is a stand-in delivery channel: it records outbound mail in the
// log instead of talking to an SMTP provider.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendWelcome(ctx context.Context, email, name string) error {
	m.log.Info("mock email: welcome",
		zap.String("to", email),
		zap.String("name", name),
	)
	return nil
}

func (m *LogMailer) SendMilestoneReminder(ctx context.Context, email, name, milestoneTitle string) error {
	m.log.Info("mock email: milestone reminder",
		zap.String("to", email),
		zap.String("name", name),
		zap.String("milestone", milestoneTitle),
	)
	return nil
}
