package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type bidUsecase struct {
	bidRepo     domain.BidRepository
	projectRepo domain.ProjectRepository
}

func NewBidUsecase(bidRepo domain.BidRepository, projectRepo domain.ProjectRepository) domain.BidUsecase {
	return &bidUsecase{
		bidRepo:     bidRepo,
		projectRepo: projectRepo,
	}
}

// SubmitBid places a pending bid on an open project.
// A freelancer gets one pending bid per project and may not bid on their own.
func (u *bidUsecase) SubmitBid(ctx context.Context, freelancerID string, projectID int64, amount float64, deliveryTime, message string) (*domain.Bid, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}
	if project.Status != domain.ProjectStatusOpen {
		return nil, apperror.ProjectNotOpen("Project is not open for bids")
	}
	if freelancerID == project.ClientID {
		return nil, apperror.SelfBid("You cannot bid on your own project")
	}

	exists, err := u.bidRepo.HasPendingBid(ctx, projectID, freelancerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.DuplicateBid("You already have a pending bid on this project")
	}

	if amount <= 0 {
		return nil, apperror.Validation("Amount must be greater than zero")
	}
	if len(message) < domain.MinBidMessageLen {
		return nil, apperror.Validation(fmt.Sprintf("Message must be at least %d characters", domain.MinBidMessageLen))
	}

	bid := &domain.Bid{
		ProjectID:    projectID,
		FreelancerID: freelancerID,
		Amount:       amount,
		DeliveryTime: deliveryTime,
		Message:      message,
		Status:       domain.BidStatusPending,
	}
	if err := u.bidRepo.Create(ctx, bid); err != nil {
		return nil, apperror.Internal(err)
	}
	return bid, nil
}

// AcceptBid is the sole path into the ASSIGNED project status. The accepted
// bid, the sibling rejections, and the project assignment commit together.
func (u *bidUsecase) AcceptBid(ctx context.Context, actorID string, bidID int64) (*domain.Bid, error) {
	bid, err := u.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, apperror.NotFound("Bid not found")
	}

	project, err := u.projectRepo.GetByID(ctx, bid.ProjectID)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}
	if actorID != project.ClientID {
		return nil, apperror.NotOwner("Only the project's client can accept bids")
	}
	if bid.Status != domain.BidStatusPending || project.Status != domain.ProjectStatusOpen {
		return nil, apperror.BidNotPending("Bid is no longer pending")
	}

	if err := u.bidRepo.Accept(ctx, bid); err != nil {
		// A concurrent accept or cancel won the race inside the transaction.
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.BidNotPending("Bid is no longer pending")
		}
		return nil, apperror.Internal(err)
	}

	bid.Status = domain.BidStatusAccepted
	return bid, nil
}

// WithdrawBid lets a freelancer retract their own pending bid.
func (u *bidUsecase) WithdrawBid(ctx context.Context, actorID string, bidID int64) error {
	bid, err := u.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return apperror.NotFound("Bid not found")
	}
	if actorID != bid.FreelancerID {
		return apperror.NotOwner("You can only withdraw your own bid")
	}
	if bid.Status != domain.BidStatusPending {
		return apperror.BidNotPending("Only pending bids can be withdrawn")
	}
	if err := u.bidRepo.Delete(ctx, bidID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ListByProject returns a project's bids to its client.
func (u *bidUsecase) ListByProject(ctx context.Context, actorID string, projectID int64) ([]domain.Bid, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}
	if actorID != project.ClientID {
		return nil, apperror.NotOwner("Only the project's client can view its bids")
	}
	bids, err := u.bidRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return bids, nil
}

func (u *bidUsecase) ListMine(ctx context.Context, freelancerID string) ([]domain.Bid, error) {
	bids, err := u.bidRepo.GetByFreelancerID(ctx, freelancerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return bids, nil
}
