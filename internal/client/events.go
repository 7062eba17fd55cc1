package client

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/campusfin/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalProgress is a simulated progress update for a savings goal.
type GoalProgress struct {
	GoalID    string          `json:"goalId"`
	NewAmount decimal.Decimal `json:"newAmount"`
	Timestamp time.Time       `json:"timestamp"`
}

// Events is a handler registry for the simulated event feed.
type Events struct {
	mu           sync.Mutex
	transaction  []func(models.Transaction)
	alert        []func(models.Alert)
	goalProgress []func(GoalProgress)
}

func (e *Events) OnTransaction(handler func(models.Transaction)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transaction = append(e.transaction, handler)
}

func (e *Events) OnAlert(handler func(models.Alert)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.alert = append(e.alert, handler)
}

func (e *Events) OnGoalProgress(handler func(GoalProgress)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.goalProgress = append(e.goalProgress, handler)
}

func (e *Events) EmitTransaction(transaction models.Transaction) {
	e.mu.Lock()
	handlers := append([]func(models.Transaction){}, e.transaction...)
	e.mu.Unlock()

	for _, handler := range handlers {
		handler(transaction)
	}
}

func (e *Events) EmitAlert(alert models.Alert) {
	e.mu.Lock()
	handlers := append([]func(models.Alert){}, e.alert...)
	e.mu.Unlock()

	for _, handler := range handlers {
		handler(alert)
	}
}

func (e *Events) EmitGoalProgress(update GoalProgress) {
	e.mu.Lock()
	handlers := append([]func(GoalProgress){}, e.goalProgress...)
	e.mu.Unlock()

	for _, handler := range handlers {
		handler(update)
	}
}

// Simulator generates random events on local timers. This is a
// polling-era stand-in for a push channel: nothing it emits comes from
// or goes to the server.
type Simulator struct {
	Events *Events

	rng *rand.Rand
}

var simulatedMerchants = []string{"Campus Cafe", "BookMart", "Gas Station", "Online Store", "Restaurant"}

var simulatedCategories = []string{"Food & Dining", "Education", "Transportation", "Entertainment", "Groceries"}

// NewSimulator returns a simulator emitting into the passed registry.
func NewSimulator(events *Events) *Simulator {
	return &Simulator{
		Events: events,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run emits events until the context is cancelled: transactions every
// 15-25 seconds, alerts every 30-45 seconds and goal progress updates
// every 20-30 seconds.
func (s *Simulator) Run(ctx context.Context) {
	go s.loop(ctx, 15*time.Second, 10*time.Second, s.newRand(), func(rng *rand.Rand) {
		s.Events.EmitTransaction(randomTransaction(rng))
	})
	go s.loop(ctx, 30*time.Second, 15*time.Second, s.newRand(), func(rng *rand.Rand) {
		s.Events.EmitAlert(randomAlert(rng))
	})
	go s.loop(ctx, 20*time.Second, 10*time.Second, s.newRand(), func(rng *rand.Rand) {
		s.Events.EmitGoalProgress(randomGoalProgress(rng))
	})
}

// newRand derives a generator for one loop. math/rand sources are not
// safe for concurrent use, so the generator goroutines must not share
// one.
func (s *Simulator) newRand() *rand.Rand {
	return rand.New(rand.NewSource(s.rng.Int63()))
}

func (s *Simulator) loop(ctx context.Context, base, jitter time.Duration, rng *rand.Rand, emit func(*rand.Rand)) {
	for {
		interval := base + time.Duration(rng.Int63n(int64(jitter)))

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			emit(rng)
		}
	}
}

func randomTransaction(rng *rand.Rand) models.Transaction {
	amount := decimal.NewFromFloat(rng.Float64()*50 + 5).Round(2).Neg()

	return models.Transaction{
		DefaultModel: models.DefaultModel{ID: "sim_" + uuid.NewString()},
		AccountID:    "acc1",
		Amount:       amount,
		Description:  simulatedMerchants[rng.Intn(len(simulatedMerchants))],
		Category:     simulatedCategories[rng.Intn(len(simulatedCategories))],
		Date:         time.Now().In(time.UTC),
		Merchant:     simulatedMerchants[rng.Intn(len(simulatedMerchants))],
		Status:       "completed",
	}
}

func randomAlert(rng *rand.Rand) models.Alert {
	alerts := []models.Alert{
		{
			Type:     "budget_warning",
			Title:    "Budget Alert",
			Message:  "Approaching monthly limit",
			Severity: "warning",
		},
		{
			Type:     "goal_milestone",
			Title:    "Goal Progress",
			Message:  "You're making great progress!",
			Severity: "success",
		},
	}

	alert := alerts[rng.Intn(len(alerts))]
	alert.ID = "sim_" + uuid.NewString()
	alert.Timestamp = time.Now().In(time.UTC)
	return alert
}

func randomGoalProgress(rng *rand.Rand) GoalProgress {
	return GoalProgress{
		GoalID:    "goal1",
		NewAmount: decimal.NewFromInt(rng.Int63n(100) + 100),
		Timestamp: time.Now().In(time.UTC),
	}
}
