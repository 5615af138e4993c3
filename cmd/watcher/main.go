package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/ozonwatch/price-watcher/cmd/watcher/config"
	"github.com/ozonwatch/price-watcher/internal/platform/models"
	"github.com/ozonwatch/price-watcher/internal/platform/rabbitmq"
	"github.com/ozonwatch/price-watcher/internal/platform/storage"
	"github.com/ozonwatch/price-watcher/internal/session"
	"github.com/ozonwatch/price-watcher/internal/skulist"
	"github.com/ozonwatch/price-watcher/internal/watcher"
	"github.com/ozonwatch/price-watcher/pkg/v1/events"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// local development convenience, env variables win over the file
	_ = godotenv.Load()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	productCodes, err := skulist.Load(cfg.SKUFile)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("path", cfg.SKUFile).
			Msg("can't load product list")
	}
	if len(productCodes) == 0 {
		logger.Fatal().
			Str("path", cfg.SKUFile).
			Msg("product list is empty")
	}

	store, err := storage.Open(ctx, storage.Config{
		Backend:     storage.Backend(cfg.Storage.Backend),
		DatabaseURL: cfg.Storage.DSN(),
		SQLitePath:  cfg.Storage.SQLitePath,
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open snapshot store")
	}
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't ensure snapshot schema")
	}

	manager := session.NewManager(session.Config{
		Headless:     cfg.Browser.Headless,
		NoSandbox:    cfg.Browser.NoSandbox,
		UserAgent:    cfg.Browser.UserAgent,
		WindowWidth:  cfg.Browser.WindowWidth,
		WindowHeight: cfg.Browser.WindowHeight,
		BrowserBin:   cfg.Browser.Bin,
	}, &logger)

	ops := []watcher.Option{}
	var amqpConnection *amqp.Connection
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}

		conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}

		sender := events.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey)
		ops = append(ops, watcher.WithPublisher(snapshotPublisher{
			publisher: events.NewSnapshotPublisher(sender),
		}))
	}

	wat := watcher.NewWatcher(
		sessions{manager: manager},
		store,
		watcher.Config{
			ProductURLFormat: cfg.ProductURLFormat,
			CycleInterval:    cfg.CycleInterval,
			PageTimeout:      cfg.PageTimeout,
			FieldTimeout:     cfg.FieldTimeout,
		},
		&logger,
		ops...,
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return wat.Run(groupCtx, productCodes)
	})

	logger.Info().Msg("price watcher up and running")

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().
			Err(err).
			Msg("watcher stopped with error")
	}

	logger.Info().Msg("graceful shutdown start")

	if err := store.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close snapshot store")
	}
	if amqpConnection != nil {
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}

	logger.Info().Msg("graceful shutdown successful")
}

// sessions adapts session.Manager to the watcher contract.
type sessions struct {
	manager *session.Manager
}

func (s sessions) Acquire(ctx context.Context) (watcher.Session, error) {
	sess, err := s.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// snapshotPublisher adapts the public events contract to the watcher contract.
type snapshotPublisher struct {
	publisher events.SnapshotPublisher
}

func (p snapshotPublisher) PublishSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	return p.publisher.PublishSnapshotEvent(ctx, events.SnapshotEvent{
		ProductCode:     snapshot.ProductCode,
		CapturedAt:      snapshot.CapturedAt,
		CapturedAtEpoch: snapshot.CapturedAtEpoch,
		Price:           snapshot.Price,
		CardPrice:       snapshot.CardPrice,
		OriginalPrice:   snapshot.OriginalPrice,
		PriceChange:     string(snapshot.PriceChange),
		Rating:          snapshot.Rating,
		RatingChange:    snapshot.RatingChange,
		QuestionsCount:  snapshot.QuestionsCount,
		ReviewsCount:    snapshot.ReviewsCount,
		Available:       snapshot.Available,
	})
}
