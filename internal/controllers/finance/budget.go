package finance

import (
	"net/http"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/api/finance/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/finance/budgets [get]
func GetBudgets(c *gin.Context) {
	budgets := make([]models.Budget, 0)
	err := models.DB.Find(&budgets).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}
