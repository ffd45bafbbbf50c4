package postgres

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bidRepo struct {
	db *pgxpool.Pool
}

func NewBidRepository(db *pgxpool.Pool) domain.BidRepository {
	return &bidRepo{db: db}
}

func (r *bidRepo) Create(ctx context.Context, bid *domain.Bid) error {
	now := time.Now()
	bid.CreatedAt = now
	bid.UpdatedAt = now
	query := `INSERT INTO bids (project_id, freelancer_id, amount, delivery_time, message, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		bid.ProjectID, bid.FreelancerID, bid.Amount, bid.DeliveryTime, bid.Message, bid.Status,
		bid.CreatedAt, bid.UpdatedAt,
	).Scan(&bid.ID)
}

func (r *bidRepo) GetByID(ctx context.Context, id int64) (*domain.Bid, error) {
	query := `SELECT id, project_id, freelancer_id, amount, delivery_time, message, status, created_at, updated_at
              FROM bids WHERE id = $1`
	var b domain.Bid
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.ProjectID, &b.FreelancerID, &b.Amount, &b.DeliveryTime, &b.Message, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bidRepo) GetByProjectID(ctx context.Context, projectID int64) ([]domain.Bid, error) {
	query := `SELECT b.id, b.project_id, b.freelancer_id, b.amount, b.delivery_time, b.message, b.status,
                     b.created_at, b.updated_at, u.name AS freelancer_name
              FROM bids b
              JOIN users u ON b.freelancer_id = u.id
              WHERE b.project_id = $1
              ORDER BY b.created_at ASC, b.id ASC`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(
			&b.ID, &b.ProjectID, &b.FreelancerID, &b.Amount, &b.DeliveryTime, &b.Message, &b.Status,
			&b.CreatedAt, &b.UpdatedAt, &b.FreelancerName,
		); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

func (r *bidRepo) GetByFreelancerID(ctx context.Context, freelancerID string) ([]domain.Bid, error) {
	query := `SELECT b.id, b.project_id, b.freelancer_id, b.amount, b.delivery_time, b.message, b.status,
                     b.created_at, b.updated_at, p.title AS project_title
              FROM bids b
              JOIN projects p ON b.project_id = p.id
              WHERE b.freelancer_id = $1
              ORDER BY b.created_at DESC, b.id ASC`
	rows, err := r.db.Query(ctx, query, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(
			&b.ID, &b.ProjectID, &b.FreelancerID, &b.Amount, &b.DeliveryTime, &b.Message, &b.Status,
			&b.CreatedAt, &b.UpdatedAt, &b.ProjectTitle,
		); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

func (r *bidRepo) HasPendingBid(ctx context.Context, projectID int64, freelancerID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bids WHERE project_id = $1 AND freelancer_id = $2 AND status = $3)`
	var exists bool
	err := r.db.QueryRow(ctx, query, projectID, freelancerID, domain.BidStatusPending).Scan(&exists)
	return exists, err
}

// Accept commits the full acceptance atomically: accepted bid, rejected
// siblings, and the project moving to assigned with this freelancer. The
// project row is locked first so concurrent accepts on the same project
// serialize; the loser sees ErrConflict.
func (r *bidRepo) Accept(ctx context.Context, bid *domain.Bid) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var projectStatus string
	err = tx.QueryRow(ctx,
		`SELECT status FROM projects WHERE id = $1 FOR UPDATE`, bid.ProjectID,
	).Scan(&projectStatus)
	if err != nil {
		return err
	}
	if projectStatus != domain.ProjectStatusOpen {
		return domain.ErrConflict
	}

	now := time.Now()

	result, err := tx.Exec(ctx,
		`UPDATE bids SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`,
		bid.ID, domain.BidStatusAccepted, now, domain.BidStatusPending,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	if _, err := tx.Exec(ctx,
		`UPDATE bids SET status = $2, updated_at = $3 WHERE project_id = $1 AND id <> $4 AND status = $5`,
		bid.ProjectID, domain.BidStatusRejected, now, bid.ID, domain.BidStatusPending,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE projects SET status = $2, freelancer_id = $3, updated_at = $4 WHERE id = $1`,
		bid.ProjectID, domain.ProjectStatusAssigned, bid.FreelancerID, now,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *bidRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
