package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/domain"
	"github.com/vopial/kyc-backend/internal/repository"
	"github.com/vopial/kyc-backend/internal/service/imagekit"
	"github.com/vopial/kyc-backend/internal/uploads"
	"github.com/vopial/kyc-backend/pkg/auth"
	"github.com/vopial/kyc-backend/pkg/otp"
)

type Services struct {
	Registrations Registrations
	Admin         Admin
	UploadAuth    UploadAuth
	Documents     Documents
}

type Deps struct {
	Config       *config.Config
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Repos        *repository.Repositories
	Relay        *uploads.Relay
	ImageKit     *imagekit.Client
	Redis        redis.UniversalClient
}

func NewServices(deps Deps) *Services {
	return &Services{
		Registrations: newRegistrationService(
			deps.Repos.Registrations,
			deps.Relay,
			deps.OtpGenerator,
			deps.Config,
		),
		Admin:      newAdminService(deps.TokenManager, deps.Config.Auth.Admin),
		UploadAuth: newUploadAuthService(deps.ImageKit, deps.Redis, deps.Config.ImageKit.AuthTokenTTL),
		Documents:  newDocumentService(deps.Config.Uploads.MaxFileSize),
	}
}

type Registrations interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Registration, error)
	Verify(ctx context.Context, email string, code string) error
	GetAll(ctx context.Context) ([]domain.Registration, error)
}

type Admin interface {
	Login(ctx context.Context, email string, password string) (string, time.Duration, error)
}

type UploadAuth interface {
	Issue(ctx context.Context) (*UploadAuthParams, error)
}

type Documents interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
