// Package company provides the seller-side catalog: our own companies and
// their personnel. Records are read-only for document assembly.
package company

import (
	"context"
)

// Role classifies a personnel record for document placement.
type Role string

const (
	RoleSeller           Role = "seller"
	RoleTechnicalManager Role = "technical_manager"
	RoleOther            Role = "other"
)

// ParseRole maps the stored free-text role to a known Role.
// Unrecognized values fall back to RoleOther.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSeller, RoleTechnicalManager:
		return Role(s)
	default:
		return RoleOther
	}
}

// Company represents a seller organization issuing documents.
type Company struct {
	ID                 int64   `db:"id" json:"id"`
	Name               string  `db:"name" json:"name"`
	Address            *string `db:"address" json:"address,omitempty"`
	LogoPath           *string `db:"logo_path" json:"logoPath,omitempty"`
	PaymentInfo        *string `db:"payment_info" json:"paymentInfo,omitempty"`
	OtherInfo          *string `db:"other_info" json:"otherInfo,omitempty"`
	Phone              *string `db:"phone" json:"phone,omitempty"`
	Email              *string `db:"email" json:"email,omitempty"`
	Website            *string `db:"website" json:"website,omitempty"`
	VATID              *string `db:"vat_id" json:"vatId,omitempty"`
	RegistrationNumber *string `db:"registration_number" json:"registrationNumber,omitempty"`
}

// Personnel represents an employee of a Company.
type Personnel struct {
	ID        int64   `db:"id" json:"id"`
	CompanyID int64   `db:"company_id" json:"companyId"`
	Name      string  `db:"name" json:"name"`
	RoleRaw   string  `db:"role" json:"role"`
	Email     *string `db:"email" json:"email,omitempty"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
}

// Role returns the classified role of the personnel record.
func (p *Personnel) Role() Role {
	return ParseRole(p.RoleRaw)
}

// Repository defines read access to companies and personnel.
type Repository interface {
	// GetByID retrieves a company by ID.
	GetByID(ctx context.Context, id int64) (*Company, error)

	// ListPersonnel retrieves all personnel for a company, ordered by name.
	ListPersonnel(ctx context.Context, companyID int64) ([]Personnel, error)
}

// FindByRole returns the first personnel record with the given role, or nil.
// Ordering follows the input slice (repository name order).
func FindByRole(personnel []Personnel, role Role) *Personnel {
	for i := range personnel {
		if personnel[i].Role() == role {
			return &personnel[i]
		}
	}
	return nil
}
