// Package watcher runs the extraction-and-persistence loop: once per cycle it
// walks the product list with one browser session, stores a snapshot per
// product and sleeps a fixed interval before the next cycle. Faults below the
// configuration level are contained to the item that raised them.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ozonwatch/price-watcher/internal/derive"
	"github.com/ozonwatch/price-watcher/internal/extractor"
	"github.com/ozonwatch/price-watcher/internal/normalize"
	"github.com/ozonwatch/price-watcher/internal/platform"
	"github.com/ozonwatch/price-watcher/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Sessions --filename sessions.go
//go:generate mockery --name Session --filename session.go
//go:generate mockery --name Store --filename store.go
//go:generate mockery --name Publisher --filename publisher.go

// Sessions creates browser sessions.
type Sessions interface {
	// Acquire creates a fresh isolated browser session.
	Acquire(ctx context.Context) (Session, error)
}

// Session is one live browser session, owned by the watcher for one cycle.
type Session interface {
	// Visit navigates to url and waits, within timeout, for the page to become
	// minimally available.
	Visit(ctx context.Context, url string, timeout time.Duration) (extractor.Page, error)
	// Release tears the session down. Safe on every exit path.
	Release()
}

// Store persists snapshots, one row per product code.
type Store interface {
	Upsert(ctx context.Context, snapshot *models.Snapshot) error
}

// Publisher emits snapshot events after successful upserts.
type Publisher interface {
	PublishSnapshot(ctx context.Context, snapshot *models.Snapshot) error
}

// Clock provides times and cancellable sleeps.
type Clock interface {
	// Timestamp returns UTC unix timestamp in seconds.
	Timestamp() int64
	// Now returns current UTC time.
	Now() time.Time
	// Sleep waits d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// Config holds watcher loop configuration.
type Config struct {
	// ProductURLFormat builds a product page URL from a product code.
	ProductURLFormat string
	// CycleInterval is the fixed sleep between two passes over the product list.
	CycleInterval time.Duration
	// PageTimeout bounds the wait for a product page to become available.
	PageTimeout time.Duration
	// FieldTimeout bounds the wait for a single locator candidate.
	FieldTimeout time.Duration
}

// Option is custom configuration of Watcher.
type Option func(w *Watcher)

// Watcher extracts product snapshots and persists them, forever.
type Watcher struct {
	sessions  Sessions
	store     Store
	publisher Publisher
	cfg       Config
	clock     Clock
	logger    *zerolog.Logger
}

// NewWatcher returns new Watcher.
func NewWatcher(sessions Sessions, store Store, cfg Config, logger *zerolog.Logger, ops ...Option) *Watcher {
	wat := &Watcher{
		sessions: sessions,
		store:    store,
		cfg:      cfg,
		clock:    systemClock{},
		logger:   logger,
	}

	for _, op := range ops {
		op(wat)
	}

	return wat
}

// Run processes the product list once per cycle until ctx is done.
// It has no other way to terminate: every fault below a configuration fault
// is logged and contained, and a new cycle starts after every sleep.
func (w *Watcher) Run(ctx context.Context, productCodes []string) error {
	w.logger.Info().
		Int("products", len(productCodes)).
		Dur("cycleInterval", w.cfg.CycleInterval).
		Msg("watcher started")

	for {
		if err := w.runCycle(ctx, productCodes); err != nil {
			return err
		}

		w.logger.Info().Msg("cycle complete, waiting for next cycle")

		if err := w.clock.Sleep(ctx, w.cfg.CycleInterval); err != nil {
			return err
		}
	}
}

// runCycle walks the product list in order with one session. It returns an
// error only when ctx is done; everything else is contained per item.
func (w *Watcher) runCycle(ctx context.Context, productCodes []string) error {
	sess, err := w.sessions.Acquire(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.logger.Error().Err(err).Msg("can't acquire browser session, retrying next cycle")
		return nil
	}
	defer func() {
		if sess != nil {
			sess.Release()
		}
	}()

	for _, productCode := range productCodes {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := w.processProduct(ctx, sess, productCode)
		switch {
		case err == nil:
		case errors.Is(err, platform.ErrPageUnavailable):
			w.logger.Warn().
				Str("productCode", productCode).
				Err(err).
				Msg("product page unavailable, skipping")
		case errors.Is(err, platform.ErrSessionLost):
			w.logger.Error().
				Str("productCode", productCode).
				Err(err).
				Msg("browser session lost, recreating session")

			sess.Release()
			if sess, err = w.sessions.Acquire(ctx); err != nil {
				sess = nil
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w.logger.Error().Err(err).Msg("can't recreate browser session, aborting cycle")
				return nil
			}
		default:
			w.logger.Error().
				Str("productCode", productCode).
				Err(err).
				Msg("can't process product, skipping")
		}
	}

	return nil
}

func (w *Watcher) processProduct(ctx context.Context, sess Session, productCode string) error {
	logger := w.logger.With().Str("productCode", productCode).Logger()
	logger.Info().Msg("processing product")

	pageURL := fmt.Sprintf(w.cfg.ProductURLFormat, productCode)
	page, err := sess.Visit(ctx, pageURL, w.cfg.PageTimeout)
	if err != nil {
		return err
	}

	ext := extractor.New(page, w.cfg.FieldTimeout, &logger)

	price := normalize.Price(ext.Field(ctx, extractor.Price))
	cardPrice := normalize.Price(ext.Field(ctx, extractor.CardPrice))
	originalPrice := normalize.Price(ext.Field(ctx, extractor.OriginalPrice))
	rating := normalize.Rating(ext.Field(ctx, extractor.Rating))

	snapshot := models.Snapshot{
		CapturedAt:      w.clock.Now(),
		CapturedAtEpoch: w.clock.Timestamp(),
		ProductCode:     productCode,
		Price:           price,
		CardPrice:       cardPrice,
		OriginalPrice:   originalPrice,
		PriceChange:     derive.PriceChange(price, originalPrice),
		Rating:          rating,
		RatingChange:    derive.RatingChange(rating),
		QuestionsCount:  normalize.QuestionsCount(ext.Field(ctx, extractor.QuestionsCount)),
		ReviewsCount:    normalize.ReviewsCount(ext.Field(ctx, extractor.ReviewsCount)),
		Available:       derive.Available(price),
	}

	if err := w.store.Upsert(ctx, &snapshot); err != nil {
		return fmt.Errorf("can't store snapshot: %w", err)
	}

	if w.publisher != nil {
		// event delivery is best-effort, a publish failure doesn't fail the item
		if err := w.publisher.PublishSnapshot(ctx, &snapshot); err != nil {
			logger.Warn().Err(err).Msg("can't publish snapshot event")
		}
	}

	logger.Info().
		Bool("available", snapshot.Available).
		Str("priceChange", string(snapshot.PriceChange)).
		Msg("snapshot stored")

	return nil
}

// WithClock sets Watcher's custom Clock.
func WithClock(c Clock) Option {
	return func(w *Watcher) {
		w.clock = c
	}
}

// WithPublisher sets Watcher's snapshot event publisher.
func WithPublisher(p Publisher) Option {
	return func(w *Watcher) {
		w.publisher = p
	}
}
