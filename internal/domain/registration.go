package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultRole = "user"

// Registration is one KYC record per registrant. The otp field is non-empty
// exactly between record creation and successful verification and never leaves
// the server in JSON payloads.
type Registration struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CompanyName     string    `db:"company_name" json:"companyName"`
	PhysicalAddress string    `db:"physical_address" json:"physicalAddress"`
	ContactAddress  string    `db:"contact_address" json:"contactAddress"`
	Website         string    `db:"website" json:"website"`
	ContactEmail    string    `db:"contact_email" json:"contactEmail"`
	ContactPhone    string    `db:"contact_phone" json:"contactPhone"`
	FirstName       string    `db:"first_name" json:"firstName"`
	LastName        string    `db:"last_name" json:"lastName"`
	Title           string    `db:"title" json:"title"`
	State           string    `db:"state" json:"state"`
	ZipCode         string    `db:"zip_code" json:"zipCode"`
	BusinessType    string    `db:"business_type" json:"businessType"`
	AgentsNumber    string    `db:"agents_number" json:"agentsNumber,omitempty"`
	PortsNumber     string    `db:"ports_number" json:"portsNumber,omitempty"`
	IPAddress       string    `db:"ip_address" json:"ipAddress,omitempty"`
	Campaign        string    `db:"campaign" json:"campaign"`
	AdditionalInfo  string    `db:"additional_info" json:"additionalInfo,omitempty"`
	NationalID      string    `db:"national_id" json:"nationalId"`
	Country         string    `db:"country" json:"country"`
	BusinessCountry string    `db:"business_country" json:"businessCountry"`
	FileURL         string    `db:"file_url" json:"fileUrl"`
	FrontSideURL    string    `db:"front_side_url" json:"frontSideUrl"`
	BackSideURL     string    `db:"back_side_url" json:"backSideUrl"`
	OTP             string    `db:"otp" json:"-"`
	Role            string    `db:"role" json:"role"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
