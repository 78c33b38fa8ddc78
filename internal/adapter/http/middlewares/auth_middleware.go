package middlewares

import (
	"net/http"
	"strings"

	"tienda_admin/internal/usecase"
	"tienda_admin/pkg"

	"github.com/gin-gonic/gin"
)

// RequireSession guards the order and analytics routes. The caller must
// present the bearer token of the currently open session; any other token
// (or none at all) is rejected before the handler runs.
func RequireSession(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		if !auth.Authorized(parts[1]) {
			abortUnauthorized(c, "No active session for this token")
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
