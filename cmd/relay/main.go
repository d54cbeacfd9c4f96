package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/config"
	"github.com/sawdustofmind/nba-scores-relay/internal/log"
	"github.com/sawdustofmind/nba-scores-relay/internal/notify"
	"github.com/sawdustofmind/nba-scores-relay/internal/relay"
	"github.com/sawdustofmind/nba-scores-relay/internal/sportsdata"
)

func main() {
	cfg := config.LoadFromEnv()

	// Initialize global logger
	if err := log.Init(cfg.Logging.Development, cfg.Logging.Level); err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		log.Warn("Incomplete configuration", zap.Error(err))
	}

	publisher, err := notify.NewForTopic(context.Background(), cfg.Notify.Topic)
	if err != nil {
		log.Fatal("Failed to initialize publisher", zap.Error(err))
	}

	r := relay.New(sportsdata.NewClient(cfg.API.BaseURL, cfg.API.Key), publisher)

	log.Info("Starting NBA scores relay", zap.String("api_base_url", cfg.API.BaseURL))
	lambda.Start(r.HandleEvent)
}
