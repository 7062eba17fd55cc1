// Package client mirrors the server collections in memory for UI views.
//
// It contains the HTTP accessor for the finance API, the polling data
// cache with its bundled fallback snapshot, the simulated event feed and
// the CSV/JSON export helpers.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/internal/types"
)

// Client is a typed accessor for the finance API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for a finance API base URL, e.g.
// "http://localhost:4000/api/finance".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("GET %s: %s", path, e.Error)
		}

		return fmt.Errorf("GET %s: unexpected status %d", path, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(target)
}

// User returns the stored user, or nil if none exists.
func (c *Client) User(ctx context.Context) (*models.User, error) {
	var user *models.User
	err := c.get(ctx, "/user", &user)
	return user, err
}

func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := c.get(ctx, "/accounts", &accounts)
	return accounts, err
}

// Transactions returns transactions, most recent first. A non-empty
// accountID restricts the result to that account.
func (c *Client) Transactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	path := "/transactions"
	if accountID != "" {
		path += "?accountId=" + url.QueryEscape(accountID)
	}

	var transactions []models.Transaction
	err := c.get(ctx, path, &transactions)
	return transactions, err
}

func (c *Client) Budgets(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	err := c.get(ctx, "/budgets", &budgets)
	return budgets, err
}

func (c *Client) Goals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	err := c.get(ctx, "/goals", &goals)
	return goals, err
}

func (c *Client) Alerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := c.get(ctx, "/alerts", &alerts)
	return alerts, err
}

func (c *Client) Insights(ctx context.Context) ([]models.Insight, error) {
	var insights []models.Insight
	err := c.get(ctx, "/insights", &insights)
	return insights, err
}

// MonthlyStats returns the aggregate for a month, or nil if none exists.
func (c *Client) MonthlyStats(ctx context.Context, month types.Month) (*models.MonthlyStats, error) {
	var stats *models.MonthlyStats
	err := c.get(ctx, "/monthly-stats/"+month.String(), &stats)
	return stats, err
}

// CreateTransaction submits a transaction to the ingestion endpoint and
// returns the persisted record.
func (c *Client) CreateTransaction(ctx context.Context, body any) (models.Transaction, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return models.Transaction{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", strings.NewReader(string(payload)))
	if err != nil {
		return models.Transaction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return models.Transaction{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&e); err == nil && e.Error != "" {
			return models.Transaction{}, fmt.Errorf("POST /transactions: %s", e.Error)
		}

		return models.Transaction{}, fmt.Errorf("POST /transactions: unexpected status %d", res.StatusCode)
	}

	var transaction models.Transaction
	err = json.NewDecoder(res.Body).Decode(&transaction)
	return transaction, err
}
