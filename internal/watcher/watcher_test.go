package watcher_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ozonwatch/price-watcher/internal/extractor"
	"github.com/ozonwatch/price-watcher/internal/platform"
	"github.com/ozonwatch/price-watcher/internal/platform/models"
	"github.com/ozonwatch/price-watcher/internal/watcher"
	"github.com/ozonwatch/price-watcher/internal/watcher/mocks"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testURLFormat = "https://www.ozon.ru/product/%s/"

func testConfig() watcher.Config {
	return watcher.Config{
		ProductURLFormat: testURLFormat,
		CycleInterval:    time.Minute,
		PageTimeout:      time.Second,
		FieldTimeout:     time.Second,
	}
}

// stubPage resolves locators from a fixed query-to-text table.
type stubPage struct {
	texts map[string]string
}

func (p stubPage) Text(_ context.Context, locator extractor.Locator) (string, error) {
	if text, ok := p.texts[locator.Query]; ok {
		return text, nil
	}
	return "", errors.New("element not found")
}

func productPage() stubPage {
	return stubPage{texts: map[string]string{
		extractor.Price.Candidates[0].Query:          "1 000 ₽",
		extractor.CardPrice.Candidates[0].Query:      "950 ₽",
		extractor.OriginalPrice.Candidates[0].Query:  "1 200 ₽",
		extractor.Rating.Candidates[0].Query:         "4.8 • 128 отзывов",
		extractor.QuestionsCount.Candidates[0].Query: "28 вопросов",
	}}
}

// fakeClock skips sleeps and cancels the run after maxSleeps cycles.
type fakeClock struct {
	now       time.Time
	maxSleeps int
	sleeps    int
	cancel    context.CancelFunc
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Timestamp() int64 {
	return c.now.Unix()
}

func (c *fakeClock) Sleep(ctx context.Context, _ time.Duration) error {
	c.sleeps++
	if c.sleeps >= c.maxSleeps {
		c.cancel()
	}
	return ctx.Err()
}

func newTestWatcher(
	sessions watcher.Sessions,
	store watcher.Store,
	clock watcher.Clock,
	ops ...watcher.Option,
) *watcher.Watcher {
	logger := zerolog.Nop()
	ops = append([]watcher.Option{watcher.WithClock(clock)}, ops...)
	return watcher.NewWatcher(sessions, store, testConfig(), &logger, ops...)
}

func TestUnitWatcherStoresSnapshot(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &fakeClock{
		now:       time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC),
		maxSleeps: 1,
		cancel:    cancel,
	}

	sess := mocks.NewSession(t)
	sess.On("Visit", mock.Anything, fmt.Sprintf(testURLFormat, "123456789"), mock.Anything).
		Return(productPage(), nil)
	sess.On("Release").Return()

	sessions := mocks.NewSessions(t)
	sessions.On("Acquire", mock.Anything).Return(sess, nil)

	var stored *models.Snapshot
	store := mocks.NewStore(t)
	store.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Snapshot")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Snapshot)
		}).
		Return(nil)

	err := newTestWatcher(sessions, store, clock).Run(ctx, []string{"123456789"})

	require.ErrorIs(t, err, context.Canceled, "should stop on cancelled context")
	require.NotNil(t, stored, "should store a snapshot")
	assert.Equal(t, "123456789", stored.ProductCode, "should keep the product code")
	assert.Equal(t, clock.now, stored.CapturedAt, "should stamp snapshot with clock time")
	assert.Equal(t, clock.now.Unix(), stored.CapturedAtEpoch, "should stamp snapshot with epoch seconds")
	assert.Equal(t, lo.ToPtr(1000.0), stored.Price, "should normalize the price")
	assert.Equal(t, lo.ToPtr(950.0), stored.CardPrice, "should normalize the card price")
	assert.Equal(t, lo.ToPtr(1200.0), stored.OriginalPrice, "should normalize the original price")
	assert.Equal(t, models.PriceDropped, stored.PriceChange, "should derive price change")
	assert.Equal(t, lo.ToPtr(4.8), stored.Rating, "should normalize the rating")
	assert.Equal(t, 0, stored.RatingChange, "should keep rating change neutral")
	assert.Equal(t, 28, stored.QuestionsCount, "should normalize the questions counter")
	assert.Equal(t, 128, stored.ReviewsCount, "should normalize the reviews counter")
	assert.True(t, stored.Available, "should mark the product available")
}

func TestUnitWatcherIsolatesItemFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &fakeClock{now: time.Now().UTC(), maxSleeps: 1, cancel: cancel}

	sess := mocks.NewSession(t)
	sess.On("Visit", mock.Anything, fmt.Sprintf(testURLFormat, "111"), mock.Anything).
		Return(productPage(), nil)
	sess.On("Visit", mock.Anything, fmt.Sprintf(testURLFormat, "222"), mock.Anything).
		Return(nil, assert.AnError)
	sess.On("Visit", mock.Anything, fmt.Sprintf(testURLFormat, "333"), mock.Anything).
		Return(productPage(), nil)
	sess.On("Release").Return()

	sessions := mocks.NewSessions(t)
	sessions.On("Acquire", mock.Anything).Return(sess, nil)

	var storedCodes []string
	store := mocks.NewStore(t)
	store.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Snapshot")).
		Run(func(args mock.Arguments) {
			storedCodes = append(storedCodes, args.Get(1).(*models.Snapshot).ProductCode)
		}).
		Return(nil)

	err := newTestWatcher(sessions, store, clock).Run(ctx, []string{"111", "222", "333"})

	require.ErrorIs(t, err, context.Canceled, "should stop on cancelled context")
	assert.Equal(t, []string{"111", "333"}, storedCodes, "should store every product except the failed one")
}

func TestUnitWatcherSkipsUnavailablePage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &fakeClock{now: time.Now().UTC(), maxSleeps: 1, cancel: cancel}

	sess := mocks.NewSession(t)
	sess.On("Visit", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: timed out", platform.ErrPageUnavailable))
	sess.On("Release").Return()

	sessions := mocks.NewSessions(t)
	sessions.On("Acquire", mock.Anything).Return(sess, nil)

	store := mocks.NewStore(t)

	err := newTestWatcher(sessions, store, clock).Run(ctx, []string{"111"})

	require.ErrorIs(t, err, context.Canceled, "should stop on cancelled context")
	store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUnitWatcherRecreatesLostSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &fakeClock{now: time.Now().UTC(), maxSleeps: 1, cancel: cancel}

	lost := mocks.NewSession(t)
	lost.On("Visit", mock.Anything, fmt.Sprintf(testURLFormat, "111"), mock.Anything).
		Return(productPage(), nil).Once()
	lost.On("Visit", mock.Anything, fmt.Sprintf(testURLFormat, "222"), mock.Anything).
		Return(nil, fmt.Errorf("%w: browser gone", platform.ErrSessionLost)).Once()
	lost.On("Release").Return().Once()

	replacement := mocks.NewSession(t)
	replacement.On("Visit", mock.Anything, fmt.Sprintf(testURLFormat, "333"), mock.Anything).
		Return(productPage(), nil).Once()
	replacement.On("Release").Return().Once()

	sessions := mocks.NewSessions(t)
	sessions.On("Acquire", mock.Anything).Return(lost, nil).Once()
	sessions.On("Acquire", mock.Anything).Return(replacement, nil).Once()

	var storedCodes []string
	store := mocks.NewStore(t)
	store.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Snapshot")).
		Run(func(args mock.Arguments) {
			storedCodes = append(storedCodes, args.Get(1).(*models.Snapshot).ProductCode)
		}).
		Return(nil)

	err := newTestWatcher(sessions, store, clock).Run(ctx, []string{"111", "222", "333"})

	require.ErrorIs(t, err, context.Canceled, "should stop on cancelled context")
	assert.Equal(t, []string{"111", "333"}, storedCodes, "should finish the cycle on the new session")
}

func TestUnitWatcherAbortsCycleWhenReacquireFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &fakeClock{now: time.Now().UTC(), maxSleeps: 1, cancel: cancel}

	lost := mocks.NewSession(t)
	lost.On("Visit", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: browser gone", platform.ErrSessionLost)).Once()
	lost.On("Release").Return().Once()

	sessions := mocks.NewSessions(t)
	sessions.On("Acquire", mock.Anything).Return(lost, nil).Once()
	sessions.On("Acquire", mock.Anything).Return(nil, assert.AnError).Once()

	store := mocks.NewStore(t)

	err := newTestWatcher(sessions, store, clock).Run(ctx, []string{"111", "222"})

	require.ErrorIs(t, err, context.Canceled, "should keep running and stop on cancelled context")
	store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUnitWatcherRunsCycleAfterCycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &fakeClock{now: time.Now().UTC(), maxSleeps: 3, cancel: cancel}

	sess := mocks.NewSession(t)
	sess.On("Visit", mock.Anything, mock.Anything, mock.Anything).Return(productPage(), nil)
	sess.On("Release").Return()

	sessions := mocks.NewSessions(t)
	sessions.On("Acquire", mock.Anything).Return(sess, nil)

	store := mocks.NewStore(t)
	store.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Snapshot")).Return(nil)

	err := newTestWatcher(sessions, store, clock).Run(ctx, []string{"111"})

	require.ErrorIs(t, err, context.Canceled, "should stop on cancelled context")
	assert.Equal(t, 3, clock.sleeps, "should sleep between cycles")
	sessions.AssertNumberOfCalls(t, "Acquire", 3)
	store.AssertNumberOfCalls(t, "Upsert", 3)
	sess.AssertNumberOfCalls(t, "Release", 3)
}

func TestUnitWatcherPublishesSnapshotEvents(t *testing.T) {
	tests := map[string]struct {
		publisherError error
	}{
		"ok":              {},
		"publisher error": {publisherError: assert.AnError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			clock := &fakeClock{now: time.Now().UTC(), maxSleeps: 1, cancel: cancel}

			sess := mocks.NewSession(t)
			sess.On("Visit", mock.Anything, mock.Anything, mock.Anything).Return(productPage(), nil)
			sess.On("Release").Return()

			sessions := mocks.NewSessions(t)
			sessions.On("Acquire", mock.Anything).Return(sess, nil)

			store := mocks.NewStore(t)
			store.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Snapshot")).Return(nil)

			publisher := mocks.NewPublisher(t)
			publisher.On("PublishSnapshot", mock.Anything, mock.AnythingOfType("*models.Snapshot")).
				Return(tt.publisherError)

			wat := newTestWatcher(sessions, store, clock, watcher.WithPublisher(publisher))
			err := wat.Run(ctx, []string{"111"})

			require.ErrorIs(t, err, context.Canceled, "publish failures should not stop the watcher")
			store.AssertNumberOfCalls(t, "Upsert", 1)
			publisher.AssertNumberOfCalls(t, "PublishSnapshot", 1)
		})
	}
}
