package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"docukit/internal/core/apperror"
	"docukit/internal/domain/catalogs/company"
)

var companyCols = []string{
	"id", "name", "address", "logo_path", "payment_info", "other_info",
	"phone", "email", "website", "vat_id", "registration_number",
}

var personnelCols = []string{"id", "company_id", "name", "role", "email", "phone"}

// CompanyRepo implements company.Repository.
type CompanyRepo struct {
	db *sql.DB
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

var _ company.Repository = (*CompanyRepo)(nil)

// GetByID retrieves a company by ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	query, args, err := builder().
		Select(companyCols...).
		From("companies").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var comp company.Company
	if err := sqlscan.Get(ctx, r.db, &comp, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("company", id)
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &comp, nil
}

// ListPersonnel retrieves all personnel for a company, ordered by name.
func (r *CompanyRepo) ListPersonnel(ctx context.Context, companyID int64) ([]company.Personnel, error) {
	query, args, err := builder().
		Select(personnelCols...).
		From("personnel").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var personnel []company.Personnel
	if err := sqlscan.Select(ctx, r.db, &personnel, query, args...); err != nil {
		return nil, fmt.Errorf("list personnel: %w", err)
	}
	return personnel, nil
}
