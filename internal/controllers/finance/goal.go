package finance

import (
	"net/http"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/api/finance/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get goals
// @Description	Returns all goals
// @Tags			Goals
// @Produce		json
// @Success		200	{array}		models.Goal
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/finance/goals [get]
func GetGoals(c *gin.Context) {
	goals := make([]models.Goal, 0)
	err := models.DB.Find(&goals).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, goals)
}
