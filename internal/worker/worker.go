package worker

import (
	"context"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/repository"
	emailProvider "github.com/vopial/kyc-backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	Repos         *repository.Repositories
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendOTPEmail(ctx context.Context, email string, code string) error
	SendRegistrationDetails(ctx context.Context, recipient string, registrationEmail string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Repos.Registrations, deps.Config.Email),
	}
}
