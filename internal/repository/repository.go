package repository

import (
	"context"

	"github.com/vopial/kyc-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Registrations Registrations
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Registrations: newRegistrationRepository(db),
	}
}

type Registrations interface {
	Create(ctx context.Context, registration *domain.Registration) error
	GetByEmail(ctx context.Context, email string) (*domain.Registration, error)
	// ClearOTP empties the otp column for the record, guarded by the code the
	// caller matched against; returns domain.ErrNoRowsAffected when the code
	// was consumed concurrently.
	ClearOTP(ctx context.Context, id uuid.UUID, code string) error
	GetAll(ctx context.Context) ([]domain.Registration, error)
}
