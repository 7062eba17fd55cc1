package finance

import (
	"net/http"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/api/finance/insights [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get insights
// @Description	Returns all insights
// @Tags			Insights
// @Produce		json
// @Success		200	{array}		models.Insight
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/finance/insights [get]
func GetInsights(c *gin.Context) {
	insights := make([]models.Insight, 0)
	err := models.DB.Find(&insights).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
