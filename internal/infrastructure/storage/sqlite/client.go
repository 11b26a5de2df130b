package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"docukit/internal/core/apperror"
	"docukit/internal/domain/catalogs/client"
)

var clientCols = []string{
	"id", "name", "company_name", "project_identifier", "country_id", "city_id",
	"address", "primary_need_description", "price", "notes",
	"selected_languages", "category",
}

// ClientRepo implements client.Repository.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(db *sql.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

var _ client.Repository = (*ClientRepo)(nil)

// GetByID retrieves a client by ID.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	query, args, err := builder().
		Select(clientCols...).
		From("clients").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var cl client.Client
	if err := sqlscan.Get(ctx, r.db, &cl, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("client", id)
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &cl, nil
}

// GetPrimaryContact returns the preferred contact for a client: the first
// contact flagged primary, otherwise the first by name.
func (r *ClientRepo) GetPrimaryContact(ctx context.Context, clientID int64) (*client.Contact, error) {
	query, args, err := builder().
		Select(
			"c.id", "c.name", "c.email", "c.phone", "c.position",
			"cc.is_primary_for_client", "cc.can_receive_documents",
		).
		From("contacts c").
		Join("client_contacts cc ON cc.contact_id = c.id").
		Where(squirrel.Eq{"cc.client_id": clientID}).
		OrderBy("cc.is_primary_for_client DESC", "c.name ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var contact client.Contact
	if err := sqlscan.Get(ctx, r.db, &contact, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("contact", clientID).WithDetail("client_id", clientID)
		}
		return nil, fmt.Errorf("get primary contact: %w", err)
	}
	return &contact, nil
}

// GetCountry retrieves a country by ID.
func (r *ClientRepo) GetCountry(ctx context.Context, id int64) (*client.Country, error) {
	query, args, err := builder().
		Select("id", "name").
		From("countries").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var country client.Country
	if err := sqlscan.Get(ctx, r.db, &country, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("country", id)
		}
		return nil, fmt.Errorf("get country: %w", err)
	}
	return &country, nil
}

// GetCity retrieves a city by ID.
func (r *ClientRepo) GetCity(ctx context.Context, id int64) (*client.City, error) {
	query, args, err := builder().
		Select("id", "country_id", "name").
		From("cities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var city client.City
	if err := sqlscan.Get(ctx, r.db, &city, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("city", id)
		}
		return nil, fmt.Errorf("get city: %w", err)
	}
	return &city, nil
}
