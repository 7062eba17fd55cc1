package finance

import (
	"net/http"
	"strings"
	"time"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// DefaultAccountID is the account a transaction is booked against when
// the submission does not name one.
const DefaultAccountID = "acc1"

// DefaultCategory is used when the submission has no category or the
// category does not match the allowlist.
const DefaultCategory = "Other"

// TransactionRequest is a transaction submission.
//
// Amount is a pointer so that a missing amount can be told apart from an
// explicit zero.
type TransactionRequest struct {
	AccountID   string           `json:"accountId" example:"acc1" default:"acc1"`
	Amount      *decimal.Decimal `json:"amount" example:"-25.50"`
	Description string           `json:"description" example:"Lunch" default:""`
	Category    string           `json:"category" example:"Food" default:"Other"`
	Date        string           `json:"date" example:"2024-01-15"`
	Merchant    string           `json:"merchant" example:"Campus Cafe" default:""`
	Status      string           `json:"status" example:"completed" default:"completed"`
}

// model normalizes the request into a transaction record, applying the
// documented defaults.
func (r TransactionRequest) model(date time.Time) models.Transaction {
	transaction := models.Transaction{
		AccountID:   r.AccountID,
		Amount:      *r.Amount,
		Description: r.Description,
		Category:    normalizeCategory(r.Category),
		Date:        date,
		Merchant:    r.Merchant,
		Status:      r.Status,
	}

	if transaction.AccountID == "" {
		transaction.AccountID = DefaultAccountID
	}

	if transaction.Status == "" {
		transaction.Status = "completed"
	}

	return transaction
}

// normalizeCategory checks the category against the allowlist globs.
// User-supplied text that matches no pattern falls back to the default
// category instead of ending up verbatim in the aggregates.
func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}

	for _, pattern := range categoryAllowlist {
		if glob.Glob(pattern, category) {
			return category
		}
	}

	return DefaultCategory
}

// parseDate accepts a full date or an RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/finance/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get transactions
// @Description	Returns transactions ordered by date, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200	{array}		models.Transaction
// @Failure		500	{object}	httputil.HTTPError
// @Param			accountId	query	string	false	"Filter by exact account ID"
// @Router			/api/finance/transactions [get]
func GetTransactions(c *gin.Context) {
	transactions, err := models.Transactions(models.DB, c.Query("accountId"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction validates and normalizes a transaction submission,
// persists it and updates the derived aggregates.
//
// @Summary		Create transaction
// @Description	Creates a new transaction and updates the account balance and monthly statistics
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201	{object}	models.Transaction
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			transaction	body	TransactionRequest	true	"Transaction"
// @Router			/api/finance/transactions [post]
func CreateTransaction(c *gin.Context) {
	var request TransactionRequest
	if err := httputil.BindData(c, &request); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	if request.Amount == nil {
		httputil.NewError(c, http.StatusBadRequest, errAmountRequired)
		return
	}

	if request.Date == "" {
		httputil.NewError(c, http.StatusBadRequest, errDateRequired)
		return
	}

	date, err := parseDate(request.Date)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errDateInvalid)
		return
	}

	transaction := request.model(date)
	err = models.CreateTransaction(models.DB, &transaction)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
