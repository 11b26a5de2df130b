package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"docukit/internal/core/apperror"
	"docukit/internal/domain/projects"
)

var projectCols = []string{
	"p.id", "p.client_id", "p.name", "p.description", "p.status_id",
	"s.name AS status_name",
	"p.budget", "p.manager_id", "p.progress_percentage",
	"p.start_date", "p.deadline_date",
}

// ProjectRepo implements projects.Repository.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

var _ projects.Repository = (*ProjectRepo)(nil)

// GetByID retrieves a project with its status name joined in.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*projects.Project, error) {
	query, args, err := builder().
		Select(projectCols...).
		From("projects p").
		LeftJoin("statuses s ON s.id = p.status_id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var project projects.Project
	if err := sqlscan.Get(ctx, r.db, &project, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("project", id)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}
