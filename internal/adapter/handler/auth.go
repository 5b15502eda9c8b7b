package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/auth"
	"github.com/johnquangdev/one-on-one-manager/internal/adapter/presenter"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/auth"
)

// Auth handles account HTTP requests
type Auth struct {
	authService auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates an account and signs it in
// @Summary      Register
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      auth.RegisterRequest  true  "Account"
// @Success      201      {object}  auth.AuthResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      409      {object}  map[string]interface{}  "Username taken"
// @Router       /users/register [post]
func (h *Auth) Register(c echo.Context) error {
	var req authDTO.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Register(c.Request().Context(), auth.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToAuthResponse(result))
}

// Login checks credentials and issues tokens
// @Summary      Login
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      auth.LoginRequest  true  "Credentials"
// @Success      200      {object}  auth.AuthResponse
// @Failure      401      {object}  map[string]interface{}  "Invalid username or password"
// @Router       /users/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAuthResponse(result))
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary      Refresh tokens
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      auth.RefreshTokenRequest  true  "Refresh token"
// @Success      200      {object}  auth.AuthResponse
// @Failure      401      {object}  map[string]interface{}  "Invalid refresh token"
// @Router       /users/refresh [post]
func (h *Auth) RefreshToken(c echo.Context) error {
	var req authDTO.RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAuthResponse(result))
}

// Me returns the signed-in account
// @Summary      Current user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auth.UserResponse
// @Failure      401  {object}  map[string]interface{}
// @Router       /users/me [get]
func (h *Auth) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponse(user))
}

// CheckUsername reports whether a username is registered
// @Summary      Check username
// @Tags         Users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  auth.CheckUsernameResponse
// @Router       /users/check/{username} [get]
func (h *Auth) CheckUsername(c echo.Context) error {
	user, exists, err := h.authService.CheckUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &authDTO.CheckUsernameResponse{
		Exists: exists,
		User:   presenter.ToUserResponse(user),
	})
}

// MigrateData assigns legacy rows without an owner to the caller
// @Summary      Claim legacy data
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auth.MigrateDataResponse
// @Failure      401  {object}  map[string]interface{}
// @Router       /users/migrate-data [post]
func (h *Auth) MigrateData(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.MigrateData(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMigrateDataResponse(result))
}
