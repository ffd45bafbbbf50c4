package domain

import (
	"context"
	"time"
)

// Bid status constants
const (
	BidStatusPending  = "pending"
	BidStatusAccepted = "accepted"
	BidStatusRejected = "rejected"
)

// MinBidMessageLen is the minimum length of a bid cover message.
const MinBidMessageLen = 50

type Bid struct {
	ID           int64     `json:"id"`
	ProjectID    int64     `json:"project_id"`
	FreelancerID string    `json:"freelancer_id"`
	Amount       float64   `json:"amount"`
	DeliveryTime string    `json:"delivery_time"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined data for list responses
	FreelancerName *string `json:"freelancer_name,omitempty"`
	ProjectTitle   *string `json:"project_title,omitempty"`
}

type BidRepository interface {
	Create(ctx context.Context, bid *Bid) error
	GetByID(ctx context.Context, id int64) (*Bid, error)
	GetByProjectID(ctx context.Context, projectID int64) ([]Bid, error)
	GetByFreelancerID(ctx context.Context, freelancerID string) ([]Bid, error)
	HasPendingBid(ctx context.Context, projectID int64, freelancerID string) (bool, error)
	// Accept marks the bid accepted, rejects all sibling pending bids, and
	// assigns the project to the bid's freelancer in a single transaction.
	// Returns ErrConflict if the bid or project changed status concurrently.
	Accept(ctx context.Context, bid *Bid) error
	Delete(ctx context.Context, id int64) error
}

type BidUsecase interface {
	SubmitBid(ctx context.Context, freelancerID string, projectID int64, amount float64, deliveryTime, message string) (*Bid, error)
	AcceptBid(ctx context.Context, actorID string, bidID int64) (*Bid, error)
	WithdrawBid(ctx context.Context, actorID string, bidID int64) error
	ListByProject(ctx context.Context, actorID string, projectID int64) ([]Bid, error)
	ListMine(ctx context.Context, freelancerID string) ([]Bid, error)
}
