package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/acme/dashboard-gateway/internal/application/identity"
	"github.com/acme/dashboard-gateway/internal/interfaces/http/dto"
	"github.com/acme/dashboard-gateway/internal/interfaces/http/middleware"
)

// AuthHandler serves login attempts
type AuthHandler struct {
	BaseHandler
	service *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login handles POST /auth/login. Credential failures of any kind get the
// same short message; unexpected failures are logged and surfaced as a
// generic error rather than being dressed up as bad credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "email and password are required")
		return
	}

	result, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.Logger(c).Error("Authentication failed unexpectedly", zap.Error(err))
		h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Something went wrong.")
		return
	}
	if !result.Authenticated() {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Invalid credentials.")
		return
	}

	h.Success(c, loginResponse{
		ID:    result.User.ID,
		Name:  result.User.Name,
		Email: result.User.Email,
	})
}
