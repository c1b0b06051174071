package v1

import (
	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/service"
	"github.com/vopial/kyc-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title KYC Registration API
// @version 1.0
// @description Business registration, email verification and admin listing

// @BasePath /api/v1

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initRegistrationRoutes(v1)
	h.initAdminRoutes(v1)
}
