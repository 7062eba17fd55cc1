package client

import (
	"context"
	"sync"
	"time"

	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the last-fetched state of all collections.
//
// ErrMsg carries the error of the last refresh cycle. When it is set,
// the other fields hold the bundled fallback data so that views never
// render empty.
type Snapshot struct {
	User         *models.User
	Accounts     []models.Account
	Transactions []models.Transaction
	Budgets      []models.Budget
	Goals        []models.Goal
	Alerts       []models.Alert
	Insights     []models.Insight
	MonthlyStats *models.MonthlyStats
	IsLoading    bool
	ErrMsg       string
}

// Cache holds the snapshot and refreshes it by polling.
//
// Simulated events mutate the same snapshot; a refresh completing after
// an event was applied overwrites the event's effect, so locally applied
// events live for at most one poll interval.
type Cache struct {
	client     *Client
	interval   time.Duration
	statsMonth types.Month

	mu       sync.Mutex
	snapshot Snapshot
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithInterval sets the poll interval.
func WithInterval(interval time.Duration) CacheOption {
	return func(c *Cache) {
		c.interval = interval
	}
}

// WithStatsMonth sets the month the monthly statistics are fetched for.
// It defaults to the current month.
func WithStatsMonth(month types.Month) CacheOption {
	return func(c *Cache) {
		c.statsMonth = month
	}
}

// NewCache returns a cache that is marked as loading until the first
// refresh completes.
func NewCache(client *Client, options ...CacheOption) *Cache {
	cache := &Cache{
		client:     client,
		interval:   15 * time.Second,
		statsMonth: types.MonthOf(time.Now()),
		snapshot:   Snapshot{IsLoading: true},
	}

	for _, option := range options {
		option(cache)
	}

	return cache
}

// Snapshot returns a copy of the current snapshot.
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot
}

// Refresh fetches all collections concurrently and replaces the
// snapshot. On any failure it falls back to the bundled data and records
// the error; the loading flag is cleared either way.
func (c *Cache) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.snapshot.IsLoading = true
	c.mu.Unlock()

	var next Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		next.User, err = c.client.User(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Accounts, err = c.client.Accounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Transactions, err = c.client.Transactions(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		next.Budgets, err = c.client.Budgets(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Goals, err = c.client.Goals(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Alerts, err = c.client.Alerts(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Insights, err = c.client.Insights(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.MonthlyStats, err = c.client.MonthlyStats(gctx, c.statsMonth)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("refresh failed, falling back to bundled data")

		next = fallbackSnapshot(c.statsMonth)
		next.ErrMsg = err.Error()
	}

	c.mu.Lock()
	c.snapshot = next
	c.mu.Unlock()
}

// Run refreshes once immediately and then on every poll tick until the
// context is cancelled. Errors do not stop the loop, the next tick
// retries.
func (c *Cache) Run(ctx context.Context) {
	c.Refresh(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh(ctx)
		}
	}
}

// ApplyTransaction prepends a transaction to the snapshot. It is not
// persisted and the next refresh overwrites it.
func (c *Cache) ApplyTransaction(transaction models.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot.Transactions = append([]models.Transaction{transaction}, c.snapshot.Transactions...)
}

// ApplyAlert prepends an alert to the snapshot. It is not persisted and
// the next refresh overwrites it.
func (c *Cache) ApplyAlert(alert models.Alert) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot.Alerts = append([]models.Alert{alert}, c.snapshot.Alerts...)
}

// ApplyGoalProgress rewrites the matching goal's current amount. It is
// not persisted and the next refresh overwrites it.
func (c *Cache) ApplyGoalProgress(update GoalProgress) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, goal := range c.snapshot.Goals {
		if goal.ID == update.GoalID {
			c.snapshot.Goals[i].CurrentAmount = update.NewAmount
		}
	}
}

// AttachEvents subscribes the cache to an event feed.
func (c *Cache) AttachEvents(events *Events) {
	events.OnTransaction(c.ApplyTransaction)
	events.OnAlert(c.ApplyAlert)
	events.OnGoalProgress(c.ApplyGoalProgress)
}
