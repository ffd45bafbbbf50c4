package postgres

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	review.CreatedAt = time.Now()
	query := `INSERT INTO reviews (project_id, reviewer_id, reviewee_id, rating, comment, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		review.ProjectID, review.ReviewerID, review.RevieweeID, review.Rating, review.Comment,
		review.CreatedAt,
	).Scan(&review.ID)
}

func (r *reviewRepo) ExistsForReviewer(ctx context.Context, projectID int64, reviewerID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE project_id = $1 AND reviewer_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, projectID, reviewerID).Scan(&exists)
	return exists, err
}

func (r *reviewRepo) GetByRevieweeID(ctx context.Context, revieweeID string) ([]domain.Review, error) {
	query := `SELECT rv.id, rv.project_id, rv.reviewer_id, rv.reviewee_id, rv.rating, rv.comment, rv.created_at,
                     u.name AS reviewer_name, p.title AS project_title
              FROM reviews rv
              JOIN users u ON rv.reviewer_id = u.id
              JOIN projects p ON rv.project_id = p.id
              WHERE rv.reviewee_id = $1
              ORDER BY rv.created_at DESC, rv.id ASC`
	rows, err := r.db.Query(ctx, query, revieweeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ID, &rv.ProjectID, &rv.ReviewerID, &rv.RevieweeID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
			&rv.ReviewerName, &rv.ProjectTitle,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
