package handlers

import (
	"errors"
	"net/http"

	request "tienda_admin/internal/adapter/http/dto/request"
	response "tienda_admin/internal/adapter/http/dto/response"
	"tienda_admin/internal/usecase"
	"tienda_admin/internal/usecase/interfaces"
	"tienda_admin/internal/validation"
	"tienda_admin/pkg"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// AuthHandler handles session lifecycle requests.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	v       *validatorv10.Validate
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc, v: validation.New()}
}

// Login godoc
// @Summary      Authenticate an operator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  request.LoginRequest  true  "operator credentials"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := validation.BindAndValidate(c, &payload, h.v); err != nil {
		return
	}

	s, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(s))
}

// Logout godoc
// @Summary      Close the active session
// @Tags         auth
// @Success      204  "no content"
// @Security     Bearer
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.usecase.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Session godoc
// @Summary      Inspect the active session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	s, ok := h.usecase.Current()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "No active session", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrUnreachable):
		return pkg.NewDomainError("UPSTREAM_UNREACHABLE", "Upstream service unreachable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
