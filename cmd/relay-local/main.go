package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/config"
	"github.com/sawdustofmind/nba-scores-relay/internal/log"
	"github.com/sawdustofmind/nba-scores-relay/internal/notify"
	"github.com/sawdustofmind/nba-scores-relay/internal/relay"
	"github.com/sawdustofmind/nba-scores-relay/internal/sportsdata"
	"github.com/sawdustofmind/nba-scores-relay/internal/trigger"
)

type options struct {
	envFile  string
	schedule string
	addr     string
	file     string
	dryRun   bool
}

func run(cfg *config.Config, opts options) int {
	if err := cfg.Validate(); err != nil {
		log.Warn("Incomplete configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var source relay.GameSource = sportsdata.NewClient(cfg.API.BaseURL, cfg.API.Key)
	if opts.file != "" {
		source = sportsdata.NewFileSource(opts.file)
	}

	var publisher notify.Publisher = notify.LogPublisher{}
	if !opts.dryRun {
		p, err := notify.NewForTopic(ctx, cfg.Notify.Topic)
		if err != nil {
			log.Error("Failed to initialize publisher", zap.Error(err))
			return 1
		}
		publisher = p
	}

	r := relay.New(source, publisher)

	if opts.schedule == "" && opts.addr == "" {
		resp := r.Run(ctx)
		log.Info("Invocation finished",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", resp.Body),
		)
		if resp.StatusCode != http.StatusOK {
			return 1
		}
		return 0
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)

	var scheduler *trigger.Scheduler
	if opts.schedule != "" {
		s, err := trigger.NewScheduler(opts.schedule, r)
		if err != nil {
			log.Error("Failed to create scheduler", zap.Error(err))
			return 1
		}
		s.Start()
		scheduler = s
		log.Info("Relay scheduled",
			zap.String("schedule", opts.schedule),
			zap.Time("next_run", s.Next()),
		)
	}

	var httpServer *http.Server
	if opts.addr != "" {
		httpServer = &http.Server{
			Addr:    opts.addr,
			Handler: trigger.NewServer(r).Router(),
		}
		go func() {
			log.Info("Trigger server listening", zap.String("addr", opts.addr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Server error", zap.Error(err))
				errChan <- err
			}
		}()
	}

	exitCode := 0
	select {
	case <-sigChan:
		log.Info("Shutdown signal received, stopping")
	case <-errChan:
		exitCode = 1
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Error closing server", zap.Error(err))
		}
	}
	if scheduler != nil {
		if err := scheduler.Stop(shutdownCtx); err != nil {
			log.Error("Error stopping scheduler", zap.Error(err))
		}
	}

	log.Info("Relay stopped")
	return exitCode
}

func main() {
	var opts options
	flag.StringVar(&opts.envFile, "env", "", "dotenv file to load before reading configuration")
	flag.StringVar(&opts.schedule, "schedule", "", "cron spec to run the relay on, evaluated in UTC-6")
	flag.StringVar(&opts.addr, "addr", "", "address for the HTTP trigger server, e.g. :8080")
	flag.StringVar(&opts.file, "file", "", "replay games from a JSON file instead of the API")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "log the notification instead of publishing it")
	flag.Parse()

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			panic(err)
		}
	}

	cfg := config.LoadFromEnv()

	// Initialize global logger
	if err := log.Init(true, cfg.Logging.Level); err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	os.Exit(run(cfg, opts))
}
