package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/vopial/kyc-backend/internal/domain"
	"github.com/vopial/kyc-backend/internal/service"
	"github.com/vopial/kyc-backend/internal/uploads"
	"github.com/vopial/kyc-backend/pkg/logger"
)

const emailCookie = "email"

func (h *Handler) initRegistrationRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.register)
	api.POST("/verify", h.verify)
	api.GET("/upload-auth", h.uploadAuth)
}

type registerForm struct {
	CompanyName     string `form:"companyName" binding:"required,min=8"`
	PhysicalAddress string `form:"physicalAddress" binding:"required,min=8"`
	ContactAddress  string `form:"contactAddress" binding:"required,min=8"`
	Website         string `form:"website" binding:"required,min=8"`
	ContactEmail    string `form:"contactEmail" binding:"required,min=8,email"`
	ContactPhone    string `form:"contactPhone" binding:"required,min=8"`
	FirstName       string `form:"firstName" binding:"required,min=3"`
	LastName        string `form:"lastName" binding:"required,min=3"`
	Title           string `form:"title" binding:"required,min=3"`
	State           string `form:"state" binding:"required,min=4"`
	ZipCode         string `form:"zipCode" binding:"required,min=3,max=5"`
	BusinessType    string `form:"businessType" binding:"required,oneof=contact_center reseller wholesale other"`
	AgentsNumber    string `form:"agentsNumber"`
	PortsNumber     string `form:"portsNumber"`
	IPAddress       string `form:"ipAddress"`
	Campaign        string `form:"campaign" binding:"required,min=8"`
	AdditionalInfo  string `form:"additionalInfo"`
	NationalID      string `form:"nationalId" binding:"required,min=8"`
	Country         string `form:"country" binding:"required"`
	BusinessCountry string `form:"businessCountry" binding:"required"`
	FileURL         string `form:"fileUrl"`
	FrontSideURL    string `form:"frontSideUrl"`
	BackSideURL     string `form:"backSideUrl"`
}

// @Summary Submit a registration
// @Tags Registration
// @Description Validates the wizard submission, relays documents, persists the record and emails an OTP
// @Accept mpfd
// @Produce json
// @Success 200 {object} RegisterResponse
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		validationErrorResponse(c, err)
		return
	}

	documents, err := h.collectDocuments(c)
	if err != nil {
		logger.Error("read submitted documents failed", zap.Error(err))
		failResponse(c, "Document upload failed. Please try again later.")
		return
	}

	input := service.RegisterInput{
		Registration: domain.Registration{
			CompanyName:     form.CompanyName,
			PhysicalAddress: form.PhysicalAddress,
			ContactAddress:  form.ContactAddress,
			Website:         form.Website,
			ContactEmail:    form.ContactEmail,
			ContactPhone:    form.ContactPhone,
			FirstName:       form.FirstName,
			LastName:        form.LastName,
			Title:           form.Title,
			State:           form.State,
			ZipCode:         form.ZipCode,
			BusinessType:    form.BusinessType,
			AgentsNumber:    form.AgentsNumber,
			PortsNumber:     form.PortsNumber,
			IPAddress:       form.IPAddress,
			Campaign:        form.Campaign,
			AdditionalInfo:  form.AdditionalInfo,
			NationalID:      form.NationalID,
			Country:         form.Country,
			BusinessCountry: form.BusinessCountry,
			FileURL:         form.FileURL,
			FrontSideURL:    form.FrontSideURL,
			BackSideURL:     form.BackSideURL,
		},
		Documents: documents,
	}

	registration, err := h.services.Registrations.Register(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			failResponse(c, "User with the provided email already exists.")
		case errors.Is(err, domain.ErrUnknownBusinessType), errors.Is(err, domain.ErrInvalidIPAddress):
			failResponse(c, "Invalid form data")
		case errors.Is(err, service.ErrUploadFailed):
			failResponse(c, "Document upload failed. Please try again later.")
		default:
			logger.Error("register failed", zap.Error(err))
			failResponse(c, "Failed to create user. Please try again later.")
		}
		return
	}

	// The cookie authorizes the upcoming /verify call for this registrant.
	c.SetCookie(emailCookie, registration.ContactEmail, int(h.config.Auth.EmailCookieTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, registerResponse{
		Success: true,
		Message: "User created successfully.",
		User:    registration,
	})
}

// documentFields are the multipart keys the wizard may attach files under.
var documentFields = []string{"file", "frontSide", "backSide"}

func (h *Handler) collectDocuments(c *gin.Context) ([]uploads.Document, error) {
	var documents []uploads.Document

	for _, field := range documentFields {
		fileHeader, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				continue
			}
			return nil, err
		}

		data, err := readFileHeader(fileHeader, h.config.Uploads.MaxFileSize)
		if err != nil {
			return nil, err
		}

		documents = append(documents, uploads.Document{
			Field:       field,
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return documents, nil
}

func readFileHeader(fileHeader *multipart.FileHeader, maxSize int64) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// One byte past the cap so the relay can tell "at the limit" from "over".
	return io.ReadAll(io.LimitReader(file, maxSize+1))
}

type verifyRequest struct {
	OTP string `json:"otp"`
}

// @Summary Verify a registration
// @Tags Registration
// @Description Compares the submitted OTP against the record addressed by the email cookie
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Router /verify [post]
func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OTP == "" {
		failResponse(c, "OTP not provided")
		return
	}

	email, err := c.Cookie(emailCookie)
	if err != nil || email == "" {
		failResponse(c, "Unauthorized")
		return
	}

	if err := h.services.Registrations.Verify(c.Request.Context(), email, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			failResponse(c, "User not found")
		case errors.Is(err, service.ErrInvalidOTP):
			failResponse(c, "Invalid OTP")
		default:
			logger.Error("verify failed", zap.Error(err))
			failResponse(c, "Failed to verify user. Please try again later.")
		}
		return
	}

	okResponse(c, "User verified successfully.")
}

// @Summary Issue upload credentials
// @Tags Registration
// @Description Returns short-lived signed params for a direct-to-CDN document upload
// @Produce json
// @Success 200 {object} service.UploadAuthParams
// @Router /upload-auth [get]
func (h *Handler) uploadAuth(c *gin.Context) {
	params, err := h.services.UploadAuth.Issue(c.Request.Context())
	if err != nil {
		logger.Error("issue upload auth failed", zap.Error(err))
		failResponse(c, "Failed to issue upload credentials. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, params)
}
