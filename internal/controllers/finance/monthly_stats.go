package finance

import (
	"net/http"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyStats
// @Success		204
// @Router			/api/finance/monthly-stats/{month} [options]
func OptionsMonthlyStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly statistics
// @Description	Returns the aggregate for a month, or null if none exists
// @Tags			MonthlyStats
// @Produce		json
// @Success		200	{object}	models.MonthlyStats
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/api/finance/monthly-stats/{month} [get]
func GetMonthlyStats(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errMonthInvalid)
		return
	}

	stats, ok, err := models.StatsForMonth(models.DB, month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, stats)
}
