package client

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"time"

	"github.com/campusfin/backend/internal/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// export is the document written by ExportJSON. It carries the stored
// collections without the derived aggregates, those can be rebuilt.
type export struct {
	User         *models.User         `json:"user"`
	Accounts     []models.Account     `json:"accounts"`
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
	Goals        []models.Goal        `json:"goals"`
	ExportDate   time.Time            `json:"exportDate"`
}

// ExportCSV writes the cached transactions as a spreadsheet-friendly
// CSV document. The output starts with a UTF-8 byte order mark so that
// Excel detects the encoding. When the cache holds no transactions yet,
// they are fetched first.
func (c *Cache) ExportCSV(ctx context.Context, w io.Writer) error {
	snapshot := c.Snapshot()

	transactions := snapshot.Transactions
	if len(transactions) == 0 {
		var err error
		transactions, err = c.client.Transactions(ctx, "")
		if err != nil {
			return err
		}
	}

	// unicode.UTF8BOM prepends the byte order mark on the first write.
	out := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"Date", "Description", "Category", "Amount", "Account"}); err != nil {
		return err
	}

	for _, transaction := range transactions {
		err := writer.Write([]string{
			transaction.Date.Format("2006-01-02"),
			transaction.Description,
			transaction.Category,
			transaction.Amount.String(),
			transaction.AccountID,
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return out.Close()
}

// ExportJSON writes the stored collections as a single JSON document,
// stamped with the export time. The data is fetched fresh so that the
// export never contains locally simulated records.
func (c *Cache) ExportJSON(ctx context.Context, w io.Writer) error {
	var doc export

	user, err := c.client.User(ctx)
	if err != nil {
		return err
	}
	doc.User = user

	if doc.Accounts, err = c.client.Accounts(ctx); err != nil {
		return err
	}
	if doc.Transactions, err = c.client.Transactions(ctx, ""); err != nil {
		return err
	}
	if doc.Budgets, err = c.client.Budgets(ctx); err != nil {
		return err
	}
	if doc.Goals, err = c.client.Goals(ctx); err != nil {
		return err
	}

	doc.ExportDate = time.Now().In(time.UTC)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&doc)
}
