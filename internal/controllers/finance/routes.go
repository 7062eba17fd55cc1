// Package finance implements the REST API of the finance tracker.
package finance

import (
	"github.com/gin-gonic/gin"
)

// categoryAllowlist holds the glob patterns a transaction category is
// checked against. Set when the routes are registered.
var categoryAllowlist = []string{"*"}

// RegisterRoutes registers the finance API routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup, allowlist []string) {
	if len(allowlist) > 0 {
		categoryAllowlist = allowlist
	}

	{
		r.OPTIONS("/user", OptionsUser)
		r.GET("/user", GetUser)
	}

	{
		r.OPTIONS("/accounts", OptionsAccounts)
		r.GET("/accounts", GetAccounts)
	}

	{
		r.OPTIONS("/transactions", OptionsTransactions)
		r.GET("/transactions", GetTransactions)
		r.POST("/transactions", CreateTransaction)
	}

	{
		r.OPTIONS("/budgets", OptionsBudgets)
		r.GET("/budgets", GetBudgets)
	}

	{
		r.OPTIONS("/goals", OptionsGoals)
		r.GET("/goals", GetGoals)
	}

	{
		r.OPTIONS("/alerts", OptionsAlerts)
		r.GET("/alerts", GetAlerts)
	}

	{
		r.OPTIONS("/insights", OptionsInsights)
		r.GET("/insights", GetInsights)
	}

	{
		r.OPTIONS("/monthly-stats/:month", OptionsMonthlyStats)
		r.GET("/monthly-stats/:month", GetMonthlyStats)
	}
}
