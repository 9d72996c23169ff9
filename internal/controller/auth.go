package controller

import (
	"net/http"

	"mywallet/internal/core"
	"mywallet/internal/middlewareinternal"
	"mywallet/internal/service"
	"mywallet/internal/validation"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type AuthController struct {
	authService core.AuthService
	validator   *validation.Validator
	logger      *zap.Logger
}

func NewAuthController(authService core.AuthService, validator *validation.Validator, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		validator:   validator,
		logger:      logger,
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var request validation.RegisterPayload

	if err := render.DecodeJSON(r.Body, &request); err != nil {
		c.logger.Debug("Invalid request format", zap.Error(err))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := c.validator.Struct(request); err != nil {
		c.logger.Debug("Registration payload rejected", zap.Error(err))
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, err := c.authService.Register(r.Context(), request.Name, request.Email, request.Password)
	if err != nil {
		c.logger.Warn("Registration failed",
			zap.String("email", request.Email),
			zap.Error(err))

		switch err {
		case service.ErrEmailTaken:
			http.Error(w, "Email already registered", http.StatusConflict)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.logger.Info("User registered successfully",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	w.WriteHeader(http.StatusCreated)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var request validation.LoginPayload

	if err := render.DecodeJSON(r.Body, &request); err != nil {
		c.logger.Debug("Invalid request format", zap.Error(err))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := c.validator.Struct(request); err != nil {
		c.logger.Debug("Login payload rejected", zap.Error(err))
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, token, err := c.authService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		c.logger.Warn("Login failed",
			zap.String("email", request.Email),
			zap.Error(err))

		switch err {
		case service.ErrInvalidCredentials:
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.logger.Info("User logged in successfully",
		zap.Int64("user_id", user.ID))

	render.JSON(w, r, struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middlewareinternal.GetTokenFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := c.authService.Logout(r.Context(), token); err != nil {
		c.logger.Error("Logout failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
