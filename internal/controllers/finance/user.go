package finance

import (
	"net/http"

	"github.com/campusfin/backend/internal/httputil"
	"github.com/campusfin/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/api/finance/user [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get user
// @Description	Returns the stored user, or null if none exists
// @Tags			User
// @Produce		json
// @Success		200	{object}	models.User
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/finance/user [get]
func GetUser(c *gin.Context) {
	user, ok, err := models.FirstUser(models.DB)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, user)
}
