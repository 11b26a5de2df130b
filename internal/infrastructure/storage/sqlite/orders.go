package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"docukit/internal/core/apperror"
	"docukit/internal/domain/orders"
)

var orderLineCols = []string{
	"id", "client_id", "project_id", "product_id", "quantity",
	"unit_price_override", "total_price_calculated",
	"serial_number", "purchase_confirmed_at",
}

// OrderRepo implements orders.Repository over the client_project_products
// table.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

var _ orders.Repository = (*OrderRepo)(nil)

// GetByID retrieves one order line by ID.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*orders.OrderLine, error) {
	query, args, err := builder().
		Select(orderLineCols...).
		From("client_project_products").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var line orders.OrderLine
	if err := sqlscan.Get(ctx, r.db, &line, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("order line", id)
		}
		return nil, fmt.Errorf("get order line: %w", err)
	}
	return &line, nil
}

// ListForClientOrProject returns order lines for a client, narrowed to one
// project when projectID is set.
func (r *OrderRepo) ListForClientOrProject(ctx context.Context, clientID int64, projectID *int64) ([]orders.OrderLine, error) {
	q := builder().
		Select(orderLineCols...).
		From("client_project_products").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("id ASC")
	if projectID != nil {
		q = q.Where(squirrel.Eq{"project_id": *projectID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []orders.OrderLine
	if err := sqlscan.Select(ctx, r.db, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	return lines, nil
}
