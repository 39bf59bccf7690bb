package transport

import (
	"encoding/json"
	"net/http"

	"digisure/internal/middleware"
	"digisure/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the simulated login payload. Role is
// optional and defaults to student.
type LoginRequest struct {
	Role string `json:"role"`
}

// AuthHandler handles the simulated login endpoint
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/auth/login", h.Login)
}

// Login hands out the fixed demo user with the requested role. An
// empty or unparseable body falls back to the default role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Login body not parseable, using default role", zap.Error(err))
	}

	user := h.authService.Login(req.Role)

	h.logger.Info("Simulated login", zap.String("role", string(user.Role)))
	middleware.RespondWithJSON(w, http.StatusOK, user)
}
