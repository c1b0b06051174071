package v1

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vopial/kyc-backend/internal/service"
	"github.com/vopial/kyc-backend/pkg/logger"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")

	admin.POST("/login", h.adminLogin)
	admin.GET("/users", h.adminIdentity, h.adminUsers)
	admin.POST("/read-file", h.adminIdentity, h.adminReadFile)
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Admin login
// @Tags Admin
// @Description Exchanges admin credentials for a signed role-token cookie
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Router /admin/login [post]
func (h *Handler) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	token, ttl, err := h.services.Admin.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			failResponse(c, "Invalid email or password")
			return
		}
		logger.Error("admin login failed", zap.Error(err))
		failResponse(c, "Failed to log in. Please try again later.")
		return
	}

	c.SetCookie(tokenCookie, token, int(ttl.Seconds()), "/", "", false, true)

	okResponse(c, "Logged in successfully.")
}

// @Summary List registrants
// @Tags Admin
// @Produce json
// @Success 200 {object} UsersResponse
// @Router /admin/users [get]
func (h *Handler) adminUsers(c *gin.Context) {
	users, err := h.services.Registrations.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("list registrations failed", zap.Error(err))
		failResponse(c, "Failed to load users. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, usersResponse{
		Success: true,
		Users:   users,
	})
}

type readFileRequest struct {
	FilePath string `json:"filePath" binding:"required"`
}

// @Summary Read a stored document
// @Tags Admin
// @Description Fetches a registrant document from storage for the admin viewer
// @Accept json
// @Produce json
// @Success 200 {object} FileResponse
// @Router /admin/read-file [post]
func (h *Handler) adminReadFile(c *gin.Context) {
	var req readFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, "Data in the fields not found")
		return
	}

	data, err := h.services.Documents.Fetch(c.Request.Context(), req.FilePath)
	if err != nil {
		logger.Error("fetch document failed", zap.Error(err))
		failResponse(c, "Failed to read file. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, fileResponse{
		Success:    true,
		Message:    "File loaded successfully.",
		FileBuffer: base64.StdEncoding.EncodeToString(data),
	})
}
