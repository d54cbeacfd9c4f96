package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/log"
)

// LogPublisher writes notifications to the log instead of a topic.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, subject, message string) error {
	log.Info("Dry run, notification not sent",
		zap.String("subject", subject),
		zap.String("message", message),
	)
	return nil
}
