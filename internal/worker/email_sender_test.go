package worker

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/domain"
	"github.com/vopial/kyc-backend/pkg/email"
	mock_email "github.com/vopial/kyc-backend/pkg/email/mock"
)

type fakeRegistrations struct {
	record *domain.Registration
	err    error
}

func (f *fakeRegistrations) Create(ctx context.Context, registration *domain.Registration) error {
	return nil
}

func (f *fakeRegistrations) GetByEmail(ctx context.Context, emailAddr string) (*domain.Registration, error) {
	return f.record, f.err
}

func (f *fakeRegistrations) ClearOTP(ctx context.Context, id uuid.UUID, code string) error {
	return nil
}

func (f *fakeRegistrations) GetAll(ctx context.Context) ([]domain.Registration, error) {
	return nil, nil
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func testEmailConfig(enabled bool) config.EmailConfig {
	return config.EmailConfig{
		Enabled:    enabled,
		AdminEmail: "admin@vopial.com",
		Templates: config.EmailTemplates{
			OTP:                 "otp_email.html",
			RegistrationDetails: "registration_details.html",
		},
	}
}

func TestSendOTPEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the code into the template", func(t *testing.T) {
		chdir(t, "../..")

		sender := new(mock_email.EmailSender)
		s := newEmailSender(sender, &fakeRegistrations{}, testEmailConfig(true))

		sender.On("Send", mock.MatchedBy(func(inp email.SendEmailInput) bool {
			return inp.To == "alice@acme.com" &&
				inp.Subject == "Your verification code" &&
				strings.Contains(inp.Body, "123456")
		})).Return(nil)

		require.NoError(t, s.SendOTPEmail(ctx, "alice@acme.com", "123456"))
		sender.AssertExpectations(t)
	})

	t.Run("disabled config is a no-op", func(t *testing.T) {
		sender := new(mock_email.EmailSender)
		s := newEmailSender(sender, &fakeRegistrations{}, testEmailConfig(false))

		require.NoError(t, s.SendOTPEmail(ctx, "alice@acme.com", "123456"))
		sender.AssertNotCalled(t, "Send", mock.Anything)
	})
}

func TestSendRegistrationDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the current record", func(t *testing.T) {
		chdir(t, "../..")

		repo := &fakeRegistrations{record: &domain.Registration{
			CompanyName:  "Acme Holdings",
			ContactEmail: "alice@acme.com",
			BusinessType: "reseller",
			PortsNumber:  "500",
		}}

		sender := new(mock_email.EmailSender)
		s := newEmailSender(sender, repo, testEmailConfig(true))

		sender.On("Send", mock.MatchedBy(func(inp email.SendEmailInput) bool {
			return inp.To == "admin@vopial.com" &&
				inp.Subject == "New registration details" &&
				strings.Contains(inp.Body, "Acme Holdings") &&
				strings.Contains(inp.Body, "500")
		})).Return(nil)

		require.NoError(t, s.SendRegistrationDetails(ctx, "admin@vopial.com", "alice@acme.com"))
		sender.AssertExpectations(t)
	})

	t.Run("missing record aborts the send", func(t *testing.T) {
		repo := &fakeRegistrations{err: domain.ErrNotFound}

		sender := new(mock_email.EmailSender)
		s := newEmailSender(sender, repo, testEmailConfig(true))

		err := s.SendRegistrationDetails(ctx, "admin@vopial.com", "ghost@acme.com")
		require.Error(t, err)
		sender.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("sender failure propagates", func(t *testing.T) {
		chdir(t, "../..")

		repo := &fakeRegistrations{record: &domain.Registration{ContactEmail: "alice@acme.com"}}

		sender := new(mock_email.EmailSender)
		s := newEmailSender(sender, repo, testEmailConfig(true))
		sender.On("Send", mock.Anything).Return(errors.New("smtp unavailable"))

		require.Error(t, s.SendRegistrationDetails(ctx, "admin@vopial.com", "alice@acme.com"))
	})
}
