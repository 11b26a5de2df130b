// Package client provides the buyer-side catalog: clients, their contacts
// and geography. Records are read-only for document assembly.
package client

import (
	"context"

	"github.com/shopspring/decimal"
)

// Client represents a document recipient (the buyer).
type Client struct {
	ID                     int64               `db:"id" json:"id"`
	Name                   string              `db:"name" json:"name"`
	CompanyName            *string             `db:"company_name" json:"companyName,omitempty"`
	ProjectIdentifier      string              `db:"project_identifier" json:"projectIdentifier"`
	CountryID              *int64              `db:"country_id" json:"countryId,omitempty"`
	CityID                 *int64              `db:"city_id" json:"cityId,omitempty"`
	Address                *string             `db:"address" json:"address,omitempty"`
	PrimaryNeedDescription *string             `db:"primary_need_description" json:"primaryNeedDescription,omitempty"`
	Price                  decimal.NullDecimal `db:"price" json:"price,omitempty"`
	Notes                  *string             `db:"notes" json:"notes,omitempty"`
	SelectedLanguages      *string             `db:"selected_languages" json:"selectedLanguages,omitempty"`
	Category               *string             `db:"category" json:"category,omitempty"`
}

// Contact represents a person at a client organization.
// PrimaryForClient and CanReceiveDocuments come from the client-contact link.
type Contact struct {
	ID                  int64   `db:"id" json:"id"`
	Name                string  `db:"name" json:"name"`
	Email               *string `db:"email" json:"email,omitempty"`
	Phone               *string `db:"phone" json:"phone,omitempty"`
	Position            *string `db:"position" json:"position,omitempty"`
	PrimaryForClient    bool    `db:"is_primary_for_client" json:"isPrimaryForClient"`
	CanReceiveDocuments bool    `db:"can_receive_documents" json:"canReceiveDocuments"`
}

// Country is a geography lookup record.
type Country struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// City is a geography lookup record.
type City struct {
	ID        int64  `db:"id" json:"id"`
	CountryID int64  `db:"country_id" json:"countryId"`
	Name      string `db:"name" json:"name"`
}

// Repository defines read access to clients, contacts and geography.
type Repository interface {
	// GetByID retrieves a client by ID.
	GetByID(ctx context.Context, id int64) (*Client, error)

	// GetPrimaryContact returns the preferred contact for a client:
	// the first contact flagged is_primary_for_client, otherwise the first
	// contact by name. Returns NotFound when the client has no contacts.
	GetPrimaryContact(ctx context.Context, clientID int64) (*Contact, error)

	// GetCountry retrieves a country by ID.
	GetCountry(ctx context.Context, id int64) (*Country, error)

	// GetCity retrieves a city by ID.
	GetCity(ctx context.Context, id int64) (*City, error)
}
