package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `id, client_id, freelancer_id, title, description, budget, deadline, category, payment_type, status, created_at, updated_at`

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects (client_id, title, description, budget, deadline, category, payment_type, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRow(ctx, query,
		project.ClientID, project.Title, project.Description, project.Budget, project.Deadline,
		project.Category, project.PaymentType, project.Status,
		project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID)
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var p domain.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ClientID, &p.FreelancerID, &p.Title, &p.Description, &p.Budget, &p.Deadline,
		&p.Category, &p.PaymentType, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List fetches a filtered page of projects plus the total match count.
// Sorting tie-breaks by id ascending so pages stay stable between calls.
func (r *projectRepo) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, int64, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Name != "" {
		addCondition("p.title ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Status != "" {
		addCondition("p.status = $%d", filter.Status)
	}
	if filter.Category != "" {
		addCondition("p.category = $%d", filter.Category)
	}
	if filter.ClientID != "" {
		addCondition("p.client_id = $%d", filter.ClientID)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Sort keys are whitelisted here; filter values never reach the ORDER BY.
	sortColumn := "p.created_at"
	if filter.SortBy == "name" {
		sortColumn = "LOWER(p.title)"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}
	orderBy := fmt.Sprintf(" ORDER BY %s %s, p.id ASC", sortColumn, direction)

	offset := (filter.Page - 1) * filter.Limit
	query := `SELECT p.id, p.client_id, p.freelancer_id, p.title, p.description, p.budget, p.deadline,
                     p.category, p.payment_type, p.status, p.created_at, p.updated_at,
                     c.name AS client_name, f.name AS freelancer_name
              FROM projects p
              JOIN users c ON p.client_id = c.id
              LEFT JOIN users f ON p.freelancer_id = f.id` +
		where + orderBy +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, filter.Limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.FreelancerID, &p.Title, &p.Description, &p.Budget, &p.Deadline,
			&p.Category, &p.PaymentType, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.ClientName, &p.FreelancerName,
		); err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM projects p` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *projectRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE projects SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Cancel marks the project cancelled and rejects every pending bid on it.
// Both writes commit in one transaction so no reader sees a cancelled
// project with live bids.
func (r *projectRepo) Cancel(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	result, err := tx.Exec(ctx,
		`UPDATE projects SET status = $2, updated_at = $3 WHERE id = $1 AND status NOT IN ($4, $5)`,
		id, domain.ProjectStatusCancelled, now, domain.ProjectStatusCompleted, domain.ProjectStatusCancelled,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	if _, err := tx.Exec(ctx,
		`UPDATE bids SET status = $2, updated_at = $3 WHERE project_id = $1 AND status = $4`,
		id, domain.BidStatusRejected, now, domain.BidStatusPending,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
