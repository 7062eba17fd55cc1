package finance

import (
	"net/http"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/api/finance/alerts [options]
func OptionsAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get alerts
// @Description	Returns all alerts, most recent first
// @Tags			Alerts
// @Produce		json
// @Success		200	{array}		models.Alert
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/finance/alerts [get]
func GetAlerts(c *gin.Context) {
	alerts, err := models.Alerts(models.DB)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}
