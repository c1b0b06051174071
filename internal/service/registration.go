package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/domain"
	"github.com/vopial/kyc-backend/internal/queue/client"
	"github.com/vopial/kyc-backend/internal/queue/task"
	"github.com/vopial/kyc-backend/internal/repository"
	"github.com/vopial/kyc-backend/internal/uploads"
	"github.com/vopial/kyc-backend/pkg/logger"
	"github.com/vopial/kyc-backend/pkg/otp"
)

type registrationService struct {
	registrations repository.Registrations
	relay         *uploads.Relay
	otpGenerator  otp.Generator
	config        *config.Config
}

func newRegistrationService(
	registrations repository.Registrations,
	relay *uploads.Relay,
	otpGenerator otp.Generator,
	config *config.Config,
) *registrationService {
	return &registrationService{
		registrations: registrations,
		relay:         relay,
		otpGenerator:  otpGenerator,
		config:        config,
	}
}

// RegisterInput carries the validated form fields plus any document file
// parts. Registration holds pre-uploaded document URLs when the client went
// through the upload-auth path instead of sending files.
type RegisterInput struct {
	Registration domain.Registration
	Documents    []uploads.Document
}

// Register runs the submission pipeline: business-profile validation,
// uniqueness check, document relay (all-or-nothing), OTP issue, persist,
// then OTP mail enqueue. No side effect survives a failed earlier step.
func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*domain.Registration, error) {
	registration := input.Registration

	profile, err := domain.ParseBusinessProfile(
		registration.BusinessType,
		registration.AgentsNumber,
		registration.PortsNumber,
		registration.IPAddress,
	)
	if err != nil {
		return nil, err
	}

	// Only the fields owned by the chosen variant survive.
	registration.AgentsNumber = ""
	registration.PortsNumber = ""
	registration.IPAddress = ""
	profile.Apply(&registration)

	// Check-then-create: the unique index on contact_email backstops the
	// race window between these two calls.
	if _, err := s.registrations.GetByEmail(ctx, registration.ContactEmail); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration by email failed: %w", err)
	}

	if len(input.Documents) > 0 {
		urls, err := s.relay.UploadAll(ctx, input.Documents)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		if url, ok := urls["file"]; ok {
			registration.FileURL = url
		}
		if url, ok := urls["frontSide"]; ok {
			registration.FrontSideURL = url
		}
		if url, ok := urls["backSide"]; ok {
			registration.BackSideURL = url
		}
	}

	placeholder := s.config.Uploads.PlaceholderURL
	if registration.FileURL == "" {
		registration.FileURL = placeholder
	}
	if registration.FrontSideURL == "" {
		registration.FrontSideURL = placeholder
	}
	if registration.BackSideURL == "" {
		registration.BackSideURL = placeholder
	}

	registration.ID, err = uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate registration id failed: %w", err)
	}

	registration.OTP, err = s.otpGenerator.RandomCode()
	if err != nil {
		return nil, fmt.Errorf("generate otp failed: %w", err)
	}

	registration.Role = domain.DefaultRole
	now := time.Now()
	registration.CreatedAt = now
	registration.UpdatedAt = now

	if err := s.registrations.Create(ctx, &registration); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create registration failed: %w", err)
	}

	s.enqueueOTPEmail(ctx, registration.ContactEmail, registration.OTP)

	return &registration, nil
}

// Verify consumes the record's OTP. The guarded UPDATE makes consumption
// single-shot even under concurrent verify calls.
func (s *registrationService) Verify(ctx context.Context, email string, code string) error {
	registration, err := s.registrations.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get registration by email failed: %w", err)
	}

	if registration.OTP == "" || registration.OTP != code {
		return ErrInvalidOTP
	}

	if err := s.registrations.ClearOTP(ctx, registration.ID, code); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return ErrInvalidOTP
		}
		return fmt.Errorf("clear otp failed: %w", err)
	}

	s.enqueueConfirmationEmail(ctx, registration.ContactEmail, registration.ContactEmail)
	s.enqueueConfirmationEmail(ctx, s.config.Email.AdminEmail, registration.ContactEmail)

	return nil
}

func (s *registrationService) GetAll(ctx context.Context) ([]domain.Registration, error) {
	return s.registrations.GetAll(ctx)
}

// Mail dispatch is best-effort: the record is already persisted, so enqueue
// failures are logged and the request still succeeds. Delivery retries are
// the queue's job.
func (s *registrationService) enqueueOTPEmail(ctx context.Context, email string, code string) {
	asynqClient := client.GetClient(ctx)
	if asynqClient == nil {
		logger.Warn("asynq client not configured, otp email not enqueued", zap.String("email", email))
		return
	}

	t, err := task.NewSendOTPEmailTask(email, code)
	if err != nil {
		logger.Error("create otp email task failed", zap.Error(err))
		return
	}

	if _, err := asynqClient.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue otp email task failed", zap.Error(err), zap.String("email", email))
	}
}

func (s *registrationService) enqueueConfirmationEmail(ctx context.Context, recipient string, registrationEmail string) {
	asynqClient := client.GetClient(ctx)
	if asynqClient == nil {
		logger.Warn("asynq client not configured, confirmation email not enqueued", zap.String("recipient", recipient))
		return
	}

	t, err := task.NewSendConfirmationEmailTask(recipient, registrationEmail)
	if err != nil {
		logger.Error("create confirmation email task failed", zap.Error(err))
		return
	}

	if _, err := asynqClient.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue confirmation email task failed", zap.Error(err), zap.String("recipient", recipient))
	}
}
