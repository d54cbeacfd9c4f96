package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/format"
	"github.com/sawdustofmind/nba-scores-relay/internal/log"
	"github.com/sawdustofmind/nba-scores-relay/internal/models"
	"github.com/sawdustofmind/nba-scores-relay/internal/notify"
)

const (
	BodySuccess      = "Data processed and sent to SNS"
	BodyFetchError   = "Error fetching data"
	BodyPublishError = "Error publishing to SNS"
)

// Response is the invocation result returned to the Lambda runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// GameSource returns the games of one calendar day.
type GameSource interface {
	GamesByDate(ctx context.Context, date string) ([]models.Game, error)
}

type Relay struct {
	source    GameSource
	publisher notify.Publisher
	now       func() time.Time
}

func New(source GameSource, publisher notify.Publisher) *Relay {
	return &Relay{
		source:    source,
		publisher: publisher,
		now:       time.Now,
	}
}

// HandleEvent is the Lambda entry point. The scheduler event is ignored.
func (r *Relay) HandleEvent(ctx context.Context, _ json.RawMessage) (Response, error) {
	return r.Run(ctx), nil
}

// Run performs one fetch, format and publish cycle.
func (r *Relay) Run(ctx context.Context) Response {
	logger := log.With(zap.String("invocation_id", invocationID(ctx)))

	if err := r.run(ctx, logger); err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			logger.Error("Error fetching data", zap.Error(fetchErr.Err))
			return Response{StatusCode: http.StatusInternalServerError, Body: BodyFetchError}
		}
		logger.Error("Error publishing to SNS", zap.Error(err))
		return Response{StatusCode: http.StatusInternalServerError, Body: BodyPublishError}
	}

	return Response{StatusCode: http.StatusOK, Body: BodySuccess}
}

func (r *Relay) run(ctx context.Context, logger *zap.Logger) error {
	date := TargetDate(r.now())
	logger.Info("Fetching games", zap.String("date", date))

	games, err := r.source.GamesByDate(ctx, date)
	if err != nil {
		return &FetchError{Err: err}
	}

	message := format.Message(games)
	logger.Info("Publishing game updates",
		zap.Int("game_count", len(games)),
		zap.Int("message_bytes", len(message)),
	)

	if err := r.publisher.Publish(ctx, notify.Subject, message); err != nil {
		return &PublishError{Err: err}
	}

	logger.Info("Game updates published", zap.String("date", date))
	return nil
}

func invocationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
