package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vopial/kyc-backend/internal/db"
	"github.com/vopial/kyc-backend/internal/domain"
)

const registrationColumns = `id, company_name, physical_address, contact_address, website, contact_email, contact_phone,
	first_name, last_name, title, state, zip_code, business_type, agents_number, ports_number, ip_address,
	campaign, additional_info, national_id, country, business_country, file_url, front_side_url, back_side_url,
	otp, role, created_at, updated_at`

type registrationRepository struct {
	db *sqlx.DB
}

func newRegistrationRepository(db *sqlx.DB) *registrationRepository {
	return &registrationRepository{
		db: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, registration *domain.Registration) error {
	const query = `INSERT INTO registration (id, company_name, physical_address, contact_address, website, contact_email, contact_phone,
		first_name, last_name, title, state, zip_code, business_type, agents_number, ports_number, ip_address,
		campaign, additional_info, national_id, country, business_country, file_url, front_side_url, back_side_url, otp, role)
		VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		registration.ID,
		registration.CompanyName,
		registration.PhysicalAddress,
		registration.ContactAddress,
		registration.Website,
		registration.ContactEmail,
		registration.ContactPhone,
		registration.FirstName,
		registration.LastName,
		registration.Title,
		registration.State,
		registration.ZipCode,
		registration.BusinessType,
		registration.AgentsNumber,
		registration.PortsNumber,
		registration.IPAddress,
		registration.Campaign,
		registration.AdditionalInfo,
		registration.NationalID,
		registration.Country,
		registration.BusinessCountry,
		registration.FileURL,
		registration.FrontSideURL,
		registration.BackSideURL,
		registration.OTP,
		registration.Role,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert registration: %w", err)
	}

	return nil
}

func (r *registrationRepository) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	var registration domain.Registration
	const query = "SELECT " + registrationColumns + " FROM registration WHERE contact_email = ?"

	if err := r.db.GetContext(ctx, &registration, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select query err: %w", err)
	}

	return &registration, nil
}

func (r *registrationRepository) ClearOTP(ctx context.Context, id uuid.UUID, code string) error {
	const query = "UPDATE registration SET otp = '' WHERE id = uuid_to_bin(?) AND otp = ? AND otp <> ''"

	res, err := r.db.ExecContext(ctx, query, id, code)
	if err != nil {
		return fmt.Errorf("db update registration otp: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db update registration otp rows: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *registrationRepository) GetAll(ctx context.Context) ([]domain.Registration, error) {
	const query = "SELECT " + registrationColumns + " FROM registration ORDER BY created_at DESC"

	var registrations []domain.Registration
	if err := r.db.SelectContext(ctx, &registrations, query); err != nil {
		return nil, fmt.Errorf("select query err: %w", err)
	}

	return registrations, nil
}
