package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type reviewUsecase struct {
	reviewRepo  domain.ReviewRepository
	projectRepo domain.ProjectRepository
}

func NewReviewUsecase(reviewRepo domain.ReviewRepository, projectRepo domain.ProjectRepository) domain.ReviewUsecase {
	return &reviewUsecase{
		reviewRepo:  reviewRepo,
		projectRepo: projectRepo,
	}
}

// CreateReview records feedback from one project party about the other.
// Allowed only on completed projects, once per direction.
func (u *reviewUsecase) CreateReview(ctx context.Context, reviewerID string, projectID int64, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperror.Validation("Rating must be between 1 and 5")
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}
	if project.Status != domain.ProjectStatusCompleted {
		return nil, apperror.Conflict("Project must be completed before it can be reviewed")
	}
	if !isParticipant(project, reviewerID) {
		return nil, apperror.Participant("Only project participants can leave a review")
	}

	exists, err := u.reviewRepo.ExistsForReviewer(ctx, projectID, reviewerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already reviewed this project")
	}

	// The reviewee is whichever project party the reviewer is not.
	revieweeID := project.ClientID
	if reviewerID == project.ClientID {
		revieweeID = *project.FreelancerID
	}

	review := &domain.Review{
		ProjectID:  projectID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperror.Internal(err)
	}
	return review, nil
}

func (u *reviewUsecase) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	reviews, err := u.reviewRepo.GetByRevieweeID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}
