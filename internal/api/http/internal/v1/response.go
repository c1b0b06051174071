package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vopial/kyc-backend/internal/domain"
)

// Business outcomes ride in the body; the transport status stays 200 and
// callers branch on the success flag.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name Response

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
} // @name ValidationError

type validationResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
} // @name ValidationResponse

type registerResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	User    *domain.Registration `json:"user,omitempty"`
} // @name RegisterResponse

type usersResponse struct {
	Success bool                  `json:"success"`
	Users   []domain.Registration `json:"users"`
} // @name UsersResponse

type fileResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FileBuffer string `json:"fileBuffer"`
} // @name FileResponse

func okResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, response{Success: true, Message: message})
}

func failResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, response{Success: false, Message: message})
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.JSON(http.StatusOK, validationResponse{
			Success: false,
			Message: "Invalid form data",
			Errors:  out,
		})
		return
	}

	failResponse(c, "Invalid form data")
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Too short, minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Too long, maximum length is %v", value)
	case "oneof":
		return fmt.Sprintf("Must be one of: %v", value)
	}
	return tag
}
