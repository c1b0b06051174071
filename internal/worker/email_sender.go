package worker

import (
	"context"
	"fmt"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/domain"
	"github.com/vopial/kyc-backend/internal/repository"
	emailProvider "github.com/vopial/kyc-backend/pkg/email"
)

type emailSender struct {
	sender        emailProvider.Sender
	registrations repository.Registrations
	config        config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	registrations repository.Registrations,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender:        sender,
		registrations: registrations,
		config:        config,
	}
}

type otpEmailInput struct {
	Code string
}

func (s *emailSender) SendOTPEmail(ctx context.Context, email string, code string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Your verification code"

	templateInput := otpEmailInput{code}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.OTP, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}

type registrationDetailsInput struct {
	Registration *domain.Registration
}

// SendRegistrationDetails mails the full record of a verified registrant.
// The record is re-read at send time so a retried task renders current data.
func (s *emailSender) SendRegistrationDetails(ctx context.Context, recipient string, registrationEmail string) error {
	if !s.config.Enabled {
		return nil
	}

	registration, err := s.registrations.GetByEmail(ctx, registrationEmail)
	if err != nil {
		return fmt.Errorf("get registration for details email failed: %w", err)
	}

	subject := "New registration details"

	templateInput := registrationDetailsInput{registration}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: recipient}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.RegistrationDetails, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
