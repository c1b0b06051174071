package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/pkg/auth"
)

const adminRole = "admin"

type adminService struct {
	tokenManager auth.TokenManager
	admin        config.AdminConfig
}

func newAdminService(tokenManager auth.TokenManager, admin config.AdminConfig) *adminService {
	return &adminService{
		tokenManager: tokenManager,
		admin:        admin,
	}
}

// Login checks the credentials against the configured admin account and
// issues a signed role token. Both comparisons run in constant time.
func (s *adminService) Login(ctx context.Context, email string, password string) (string, time.Duration, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email))
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password))

	if emailMatch&passwordMatch != 1 {
		return "", 0, ErrInvalidCredentials
	}

	token, ttl, err := s.tokenManager.NewJWT(email, adminRole)
	if err != nil {
		return "", 0, fmt.Errorf("generate admin token failed: %w", err)
	}

	return token, ttl, nil
}
