// Package orders provides read access to order lines: the products attached
// to a client or project with quantities and negotiated prices.
package orders

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderLine links a product to a client (and optionally a project) with a
// quantity and an optional negotiated price that overrides the base price.
type OrderLine struct {
	ID                   int64               `db:"id" json:"id"`
	ClientID             int64               `db:"client_id" json:"clientId"`
	ProjectID            *int64              `db:"project_id" json:"projectId,omitempty"`
	ProductID            int64               `db:"product_id" json:"productId"`
	Quantity             float64             `db:"quantity" json:"quantity"`
	UnitPriceOverride    decimal.NullDecimal `db:"unit_price_override" json:"unitPriceOverride,omitempty"`
	TotalPriceCalculated decimal.NullDecimal `db:"total_price_calculated" json:"totalPriceCalculated,omitempty"`
	SerialNumber         *string             `db:"serial_number" json:"serialNumber,omitempty"`
	PurchaseConfirmedAt  *string             `db:"purchase_confirmed_at" json:"purchaseConfirmedAt,omitempty"`
}

// Repository defines read access to order lines.
type Repository interface {
	// GetByID retrieves one order line by ID.
	GetByID(ctx context.Context, id int64) (*OrderLine, error)

	// ListForClientOrProject returns order lines for a client, narrowed to a
	// project when projectID is non-nil. Empty result is not an error.
	ListForClientOrProject(ctx context.Context, clientID int64, projectID *int64) ([]OrderLine, error)
}
