package client

import (
	"sort"

	"github.com/campusfin/backend/internal/models"
)

// TransactionsForAccount returns the cached transactions of one account,
// keeping the cached order.
func (s Snapshot) TransactionsForAccount(accountID string) []models.Transaction {
	transactions := make([]models.Transaction, 0)
	for _, transaction := range s.Transactions {
		if transaction.AccountID == accountID {
			transactions = append(transactions, transaction)
		}
	}

	return transactions
}

// TransactionsForCategory returns the cached transactions of one
// category, keeping the cached order.
func (s Snapshot) TransactionsForCategory(category string) []models.Transaction {
	transactions := make([]models.Transaction, 0)
	for _, transaction := range s.Transactions {
		if transaction.Category == category {
			transactions = append(transactions, transaction)
		}
	}

	return transactions
}

// RecentTransactions returns the n most recent cached transactions. The
// cache holds them most recent first already, so this is a prefix.
func (s Snapshot) RecentTransactions(n int) []models.Transaction {
	if n > len(s.Transactions) {
		n = len(s.Transactions)
	}

	return append([]models.Transaction{}, s.Transactions[:n]...)
}

// UnreadAlerts returns the cached alerts not yet marked as read.
func (s Snapshot) UnreadAlerts() []models.Alert {
	alerts := make([]models.Alert, 0)
	for _, alert := range s.Alerts {
		if !alert.IsRead {
			alerts = append(alerts, alert)
		}
	}

	return alerts
}

// GoalsByPriority returns the cached goals ordered high, medium, low.
// Goals with the same priority keep their cached order.
func (s Snapshot) GoalsByPriority() []models.Goal {
	rank := map[string]int{"high": 0, "medium": 1, "low": 2}

	goals := append([]models.Goal{}, s.Goals...)
	sort.SliceStable(goals, func(i, j int) bool {
		ri, ok := rank[goals[i].Priority]
		if !ok {
			ri = len(rank)
		}
		rj, ok := rank[goals[j].Priority]
		if !ok {
			rj = len(rank)
		}

		return ri < rj
	})

	return goals
}
