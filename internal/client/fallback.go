package client

import (
	"encoding/json"

	_ "embed"

	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/internal/types"
	"github.com/rs/zerolog/log"
)

//go:embed fallback.json
var fallbackJSON []byte

type fallbackData struct {
	User         *models.User         `json:"user"`
	Accounts     []models.Account     `json:"accounts"`
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
	Goals        []models.Goal        `json:"goals"`
	Alerts       []models.Alert       `json:"alerts"`
	Insights     []models.Insight     `json:"insights"`
	MonthlyStats *models.MonthlyStats `json:"monthlyStats"`
}

// fallbackSnapshot returns the bundled demo data so that views have
// something to render when the backend is unreachable. The bundled
// monthly aggregate is relabeled to the requested month.
func fallbackSnapshot(month types.Month) Snapshot {
	var data fallbackData
	if err := json.Unmarshal(fallbackJSON, &data); err != nil {
		// The file is embedded at build time, this cannot happen for a
		// released binary.
		log.Error().Err(err).Msg("bundled fallback data is invalid")
		return Snapshot{}
	}

	if data.MonthlyStats != nil {
		data.MonthlyStats.Month = month
	}

	return Snapshot{
		User:         data.User,
		Accounts:     data.Accounts,
		Transactions: data.Transactions,
		Budgets:      data.Budgets,
		Goals:        data.Goals,
		Alerts:       data.Alerts,
		Insights:     data.Insights,
		MonthlyStats: data.MonthlyStats,
	}
}
