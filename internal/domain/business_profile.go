package domain

import "net"

type BusinessType string

const (
	BusinessTypeContactCenter BusinessType = "contact_center"
	BusinessTypeReseller      BusinessType = "reseller"
	BusinessTypeWholesale     BusinessType = "wholesale"
	BusinessTypeOther         BusinessType = "other"
)

// BusinessProfile is the business-type-specific slice of a registration.
// Each variant knows which conditional fields belong to it, so the branching
// on the business type string happens once, here.
type BusinessProfile interface {
	Type() BusinessType
	// Apply writes the variant's fields onto the record.
	Apply(r *Registration)
}

type ContactCenterProfile struct {
	AgentsNumber string
}

func (p ContactCenterProfile) Type() BusinessType { return BusinessTypeContactCenter }

func (p ContactCenterProfile) Apply(r *Registration) {
	r.AgentsNumber = p.AgentsNumber
}

type ResellerProfile struct {
	PortsNumber string
	IPAddress   string
}

func (p ResellerProfile) Type() BusinessType { return BusinessTypeReseller }

func (p ResellerProfile) Apply(r *Registration) {
	r.PortsNumber = p.PortsNumber
	r.IPAddress = p.IPAddress
}

type WholesaleProfile struct {
	PortsNumber string
	IPAddress   string
}

func (p WholesaleProfile) Type() BusinessType { return BusinessTypeWholesale }

func (p WholesaleProfile) Apply(r *Registration) {
	r.PortsNumber = p.PortsNumber
	r.IPAddress = p.IPAddress
}

type OtherProfile struct{}

func (p OtherProfile) Type() BusinessType { return BusinessTypeOther }

func (p OtherProfile) Apply(r *Registration) {}

// ParseBusinessProfile validates the conditional fields against the chosen
// business type and returns the matching variant. Fields that belong to a
// different variant are dropped rather than rejected; the numeric-ish counts
// stay strings on purpose.
func ParseBusinessProfile(businessType, agentsNumber, portsNumber, ipAddress string) (BusinessProfile, error) {
	switch BusinessType(businessType) {
	case BusinessTypeContactCenter:
		return ContactCenterProfile{AgentsNumber: agentsNumber}, nil
	case BusinessTypeReseller:
		if err := validateIP(ipAddress); err != nil {
			return nil, err
		}
		return ResellerProfile{PortsNumber: portsNumber, IPAddress: ipAddress}, nil
	case BusinessTypeWholesale:
		if err := validateIP(ipAddress); err != nil {
			return nil, err
		}
		return WholesaleProfile{PortsNumber: portsNumber, IPAddress: ipAddress}, nil
	case BusinessTypeOther:
		return OtherProfile{}, nil
	}

	return nil, ErrUnknownBusinessType
}

func validateIP(ip string) error {
	if ip == "" {
		return nil
	}
	if net.ParseIP(ip) == nil {
		return ErrInvalidIPAddress
	}
	return nil
}
