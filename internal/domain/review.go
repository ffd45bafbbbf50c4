package domain

import (
	"context"
	"time"
)

// Review is feedback left by one project party about the other once the
// project is completed. At most one review per (project, reviewer).
type Review struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	ReviewerID string    `json:"reviewer_id"`
	RevieweeID string    `json:"reviewee_id"`
	Rating     int       `json:"rating"` // 1-5
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined data for list responses
	ReviewerName *string `json:"reviewer_name,omitempty"`
	ProjectTitle *string `json:"project_title,omitempty"`
}

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	ExistsForReviewer(ctx context.Context, projectID int64, reviewerID string) (bool, error)
	GetByRevieweeID(ctx context.Context, revieweeID string) ([]Review, error)
}

type ReviewUsecase interface {
	CreateReview(ctx context.Context, reviewerID string, projectID int64, rating int, comment string) (*Review, error)
	ListByUser(ctx context.Context, userID string) ([]Review, error)
}
