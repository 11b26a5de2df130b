// Package projects provides read access to client projects.
package projects

import (
	"context"

	"github.com/shopspring/decimal"
)

// Project represents a client engagement documents can be issued against.
type Project struct {
	ID           int64               `db:"id" json:"id"`
	ClientID     int64               `db:"client_id" json:"clientId"`
	Name         string              `db:"name" json:"name"`
	Description  *string             `db:"description" json:"description,omitempty"`
	StatusID     *int64              `db:"status_id" json:"statusId,omitempty"`
	StatusName   *string             `db:"status_name" json:"statusName,omitempty"`
	Budget       decimal.NullDecimal `db:"budget" json:"budget,omitempty"`
	ManagerID    *int64              `db:"manager_id" json:"managerId,omitempty"`
	Progress     *int                `db:"progress_percentage" json:"progressPercentage,omitempty"`
	StartDate    *string             `db:"start_date" json:"startDate,omitempty"`
	DeadlineDate *string             `db:"deadline_date" json:"deadlineDate,omitempty"`
}

// Repository defines read access to projects.
type Repository interface {
	// GetByID retrieves a project by ID, with its status name joined in.
	GetByID(ctx context.Context, id int64) (*Project, error)
}
