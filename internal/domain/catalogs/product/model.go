// Package product provides the product catalog and multi-language product
// resolution through the symmetric equivalency graph.
package product

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item in one language.
// Products are unique on (name, language_code); translations of one logical
// product are linked through EquivalencyLink.
type Product struct {
	ID            int64           `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Description   *string         `db:"description" json:"description,omitempty"`
	Category      *string         `db:"category" json:"category,omitempty"`
	LanguageCode  string          `db:"language_code" json:"languageCode"`
	BaseUnitPrice decimal.Decimal `db:"base_unit_price" json:"baseUnitPrice"`
	UnitOfMeasure *string         `db:"unit_of_measure" json:"unitOfMeasure,omitempty"`
	Weight        *float64        `db:"weight" json:"weight,omitempty"`
	Dimensions    *string         `db:"dimensions" json:"dimensions,omitempty"`
}

// EquivalencyLink declares two products to be translations of one logical
// product. Stored canonicalized (product_a_id < product_b_id) but queried
// symmetrically.
type EquivalencyLink struct {
	ProductAID int64 `db:"product_a_id" json:"productAId"`
	ProductBID int64 `db:"product_b_id" json:"productBId"`
}

// MediaLink attaches a media file to a product.
type MediaLink struct {
	ProductID     int64   `db:"product_id" json:"productId"`
	MediaID       int64   `db:"media_id" json:"mediaId"`
	DisplayOrder  int     `db:"display_order" json:"displayOrder"`
	AltText       *string `db:"alt_text" json:"altText,omitempty"`
	Title         *string `db:"title" json:"title,omitempty"`
	MediaFilepath *string `db:"media_filepath" json:"mediaFilepath,omitempty"`
	ThumbnailPath *string `db:"thumbnail_path" json:"thumbnailPath,omitempty"`
}

// Repository defines read access to products, equivalencies and media.
type Repository interface {
	// GetByIDs batch-fetches products by ID. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Product, error)

	// GetByIDWithMedia retrieves one product plus its media links ordered by
	// display_order.
	GetByIDWithMedia(ctx context.Context, id int64) (*Product, []MediaLink, error)

	// GetEquivalencyLinks returns all links touching any of the given IDs,
	// on either side of the pair.
	GetEquivalencyLinks(ctx context.Context, ids []int64) ([]EquivalencyLink, error)

	// GetMediaLinks batch-fetches media links for the given product IDs,
	// ordered by (product_id, display_order).
	GetMediaLinks(ctx context.Context, productIDs []int64) ([]MediaLink, error)
}
