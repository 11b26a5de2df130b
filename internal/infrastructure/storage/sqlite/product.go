package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"docukit/internal/core/apperror"
	"docukit/internal/domain/catalogs/product"
)

var productCols = []string{
	"id", "name", "description", "category", "language_code",
	"base_unit_price", "unit_of_measure", "weight", "dimensions",
}

var mediaLinkCols = []string{
	"pml.product_id", "pml.media_id", "pml.display_order", "pml.alt_text",
	"m.filepath AS media_filepath", "m.thumbnail_path", "m.title",
}

// ProductRepo implements product.Repository.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

var _ product.Repository = (*ProductRepo)(nil)

// GetByIDs batch-fetches products. Missing IDs are simply absent from the
// result.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}

	query, args, err := builder().
		Select(productCols...).
		From("products").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var products []product.Product
	if err := sqlscan.Select(ctx, r.db, &products, query, args...); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

// GetByIDWithMedia retrieves one product plus its media links.
func (r *ProductRepo) GetByIDWithMedia(ctx context.Context, id int64) (*product.Product, []product.MediaLink, error) {
	query, args, err := builder().
		Select(productCols...).
		From("products").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build query: %w", err)
	}

	var prod product.Product
	if err := sqlscan.Get(ctx, r.db, &prod, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, nil, apperror.NewNotFound("product", id)
		}
		return nil, nil, fmt.Errorf("get product: %w", err)
	}

	media, err := r.GetMediaLinks(ctx, []int64{id})
	if err != nil {
		return nil, nil, err
	}
	return &prod, media, nil
}

// GetEquivalencyLinks returns links touching any of the given IDs on either
// side of the pair.
func (r *ProductRepo) GetEquivalencyLinks(ctx context.Context, ids []int64) ([]product.EquivalencyLink, error) {
	if len(ids) == 0 {
		return []product.EquivalencyLink{}, nil
	}

	query, args, err := builder().
		Select("product_a_id", "product_b_id").
		From("product_equivalencies").
		Where(squirrel.Or{
			squirrel.Eq{"product_a_id": ids},
			squirrel.Eq{"product_b_id": ids},
		}).
		OrderBy("product_a_id ASC", "product_b_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var links []product.EquivalencyLink
	if err := sqlscan.Select(ctx, r.db, &links, query, args...); err != nil {
		return nil, fmt.Errorf("get equivalency links: %w", err)
	}
	return links, nil
}

// GetMediaLinks batch-fetches media links with the media file paths joined in.
func (r *ProductRepo) GetMediaLinks(ctx context.Context, productIDs []int64) ([]product.MediaLink, error) {
	if len(productIDs) == 0 {
		return []product.MediaLink{}, nil
	}

	query, args, err := builder().
		Select(mediaLinkCols...).
		From("product_media_links pml").
		Join("media m ON m.id = pml.media_id").
		Where(squirrel.Eq{"pml.product_id": productIDs}).
		OrderBy("pml.product_id ASC", "pml.display_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var links []product.MediaLink
	if err := sqlscan.Select(ctx, r.db, &links, query, args...); err != nil {
		return nil, fmt.Errorf("get media links: %w", err)
	}
	return links, nil
}
