package finance

import (
	"net/http"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/api/finance/accounts [options]
func OptionsAccounts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get accounts
// @Description	Returns all accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{array}		models.Account
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/finance/accounts [get]
func GetAccounts(c *gin.Context) {
	accounts := make([]models.Account, 0)
	err := models.DB.Find(&accounts).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}
