package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/approval-system/internal/api/metrics"
	"github.com/orderdesk/approval-system/internal/api/middleware"
	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/ports"
	"github.com/orderdesk/approval-system/internal/core/session"
)

// TokenRevoker records a signed-out token until its natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

type AuthHandler struct {
	authService ports.AuthService
	revoker     TokenRevoker
}

func NewAuthHandler(authService ports.AuthService, revoker TokenRevoker) *AuthHandler {
	return &AuthHandler{authService: authService, revoker: revoker}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required,numeric,min=10,max=15"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type authResponse struct {
	Token string          `json:"token,omitempty"`
	User  *domain.Account `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	account, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case domain.ErrEmailExists, domain.ErrPhoneExists, domain.ErrNameExists:
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.AccountsRegisteredTotal.WithLabelValues(account.Role).Inc()
	return c.JSON(http.StatusCreated, authResponse{User: account})
}

// Login authenticates an (email, password, role) triple and returns a session
// token. All failures share one generic message.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: account})
}

// Logout revokes the presented session token for the remainder of its
// validity window.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.TokenKey).(string)
	claims, ok := c.Get(middleware.ClaimsKey).(*session.Claims)
	if token == "" || !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	ttl := session.DefaultTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := h.revoker.Revoke(c.Request().Context(), token, ttl); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "signed out"})
}
