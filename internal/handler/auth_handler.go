package handler

import (
	"net/http"

	"carlookup/internal/apperrors"
	"carlookup/internal/dto"
	"carlookup/internal/response"
	"carlookup/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	log         *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidation(apperrors.FieldError{
			Field:   "body",
			Message: "Invalid request body",
		}))
		return
	}

	h.log.Info("Authentication attempt",
		zap.String("username", req.Username),
		zap.String("ip", c.ClientIP()),
	)

	result, err := h.authService.Authenticate(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Authentication successful", result)
}
