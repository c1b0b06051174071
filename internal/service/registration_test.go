package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/domain"
	"github.com/vopial/kyc-backend/internal/uploads"
	"github.com/vopial/kyc-backend/pkg/otp"
)

type registrationsRepoMock struct {
	mock.Mock
}

func (m *registrationsRepoMock) Create(ctx context.Context, registration *domain.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *registrationsRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	args := m.Called(ctx, email)
	if reg, ok := args.Get(0).(*domain.Registration); ok {
		return reg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *registrationsRepoMock) ClearOTP(ctx context.Context, id uuid.UUID, code string) error {
	args := m.Called(ctx, id, code)
	return args.Error(0)
}

func (m *registrationsRepoMock) GetAll(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	if regs, ok := args.Get(0).([]domain.Registration); ok {
		return regs, args.Error(1)
	}
	return nil, args.Error(1)
}

type uploaderStub struct {
	err error
}

func (u *uploaderStub) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example.com/" + fileName, nil
}

const testPlaceholderURL = "https://cdn.example.com/placeholder.jpg"

func newTestRegistrationService(repo *registrationsRepoMock, uploader uploads.Uploader) *registrationService {
	cfg := &config.Config{}
	cfg.Uploads.PlaceholderURL = testPlaceholderURL
	cfg.Uploads.MaxFileSize = 1 << 20
	cfg.Uploads.Timeout = time.Second
	cfg.Email.AdminEmail = "admin@vopial.com"

	return newRegistrationService(
		repo,
		uploads.NewRelay(uploader, cfg.Uploads),
		otp.NewNumericGenerator(),
		cfg,
	)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Registration: domain.Registration{
			CompanyName:     "Acme Holdings",
			PhysicalAddress: "123 Main St",
			ContactAddress:  "123 Main St",
			Website:         "acme.com",
			ContactEmail:    "a@acme.com",
			ContactPhone:    "+15550100200",
			FirstName:       "Alice",
			LastName:        "Nguyen",
			Title:           "CEO",
			State:           "Ontario",
			ZipCode:         "M5V2T",
			BusinessType:    "reseller",
			PortsNumber:     "500",
			IPAddress:       "10.0.0.1",
			Campaign:        "voice-termination",
			NationalID:      "987654321",
			Country:         "Canada",
			BusinessCountry: "Canada",
		},
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates record with otp and defaults", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(nil, domain.ErrNotFound)

		var created *domain.Registration
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Registration")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.Registration)
			}).
			Return(nil)

		registration, err := s.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		require.NotNil(t, created)

		n, err := strconv.Atoi(registration.OTP)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)

		assert.Equal(t, domain.DefaultRole, registration.Role)
		assert.NotEqual(t, uuid.Nil, registration.ID)
		assert.Equal(t, testPlaceholderURL, registration.FileURL)
		assert.Equal(t, testPlaceholderURL, registration.FrontSideURL)
		assert.Equal(t, testPlaceholderURL, registration.BackSideURL)
		assert.Equal(t, "500", registration.PortsNumber)
		assert.Equal(t, "10.0.0.1", registration.IPAddress)
		assert.Empty(t, registration.AgentsNumber, "contact-center field must not leak into a reseller record")
	})

	t.Run("uploads documents and uses their urls", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		input := validRegisterInput()
		input.Documents = []uploads.Document{
			{Field: "frontSide", FileName: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpg")},
		}

		registration, err := s.Register(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.example.com/front.jpg", registration.FrontSideURL)
		assert.Equal(t, testPlaceholderURL, registration.BackSideURL)
	})

	t.Run("rejects duplicate email before any side effect", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(&domain.Registration{ContactEmail: "a@acme.com"}, nil)

		_, err := s.Register(ctx, validRegisterInput())
		require.ErrorIs(t, err, ErrUserAlreadyExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps insert duplicate to already exists", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry)

		_, err := s.Register(ctx, validRegisterInput())
		require.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("upload failure aborts before persistence", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{err: errors.New("cdn down")})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(nil, domain.ErrNotFound)

		input := validRegisterInput()
		input.Documents = []uploads.Document{
			{Field: "frontSide", FileName: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpg")},
		}

		_, err := s.Register(ctx, input)
		require.ErrorIs(t, err, ErrUploadFailed)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown business type rejected", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		input := validRegisterInput()
		input.Registration.BusinessType = "franchise"

		_, err := s.Register(ctx, input)
		require.ErrorIs(t, err, domain.ErrUnknownBusinessType)
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	recordID := uuid.New()

	record := func(code string) *domain.Registration {
		return &domain.Registration{
			ID:           recordID,
			ContactEmail: "a@acme.com",
			OTP:          code,
		}
	}

	t.Run("clears otp on match", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(record("123456"), nil)
		repo.On("ClearOTP", mock.Anything, recordID, "123456").Return(nil)

		require.NoError(t, s.Verify(ctx, "a@acme.com", "123456"))
		repo.AssertExpectations(t)
	})

	t.Run("unknown email fails closed", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "b@acme.com").Return(nil, domain.ErrNotFound)

		require.ErrorIs(t, s.Verify(ctx, "b@acme.com", "123456"), ErrUserNotFound)
	})

	t.Run("mismatch leaves record unchanged", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(record("123456"), nil)

		require.ErrorIs(t, s.Verify(ctx, "a@acme.com", "654321"), ErrInvalidOTP)
		repo.AssertNotCalled(t, "ClearOTP", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replay after success is rejected", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		// The otp was consumed by a previous successful verification.
		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(record(""), nil)

		require.ErrorIs(t, s.Verify(ctx, "a@acme.com", "123456"), ErrInvalidOTP)
	})

	t.Run("concurrent consumption surfaces as invalid otp", func(t *testing.T) {
		repo := new(registrationsRepoMock)
		s := newTestRegistrationService(repo, &uploaderStub{})

		repo.On("GetByEmail", mock.Anything, "a@acme.com").Return(record("123456"), nil)
		repo.On("ClearOTP", mock.Anything, recordID, "123456").Return(domain.ErrNoRowsAffected)

		require.ErrorIs(t, s.Verify(ctx, "a@acme.com", "123456"), ErrInvalidOTP)
	})
}
