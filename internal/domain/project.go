package domain

import (
	"context"
	"time"
)

// Project status constants
const (
	ProjectStatusDraft      = "draft"
	ProjectStatusOpen       = "open"
	ProjectStatusAssigned   = "assigned"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

// Payment type constants
const (
	PaymentTypeFixed  = "fixed"
	PaymentTypeHourly = "hourly"
)

// projectTransitions is the project status state table. ASSIGNED is absent
// from the OPEN row on purpose: it is entered only through bid acceptance.
var projectTransitions = map[string][]string{
	ProjectStatusDraft:      {ProjectStatusOpen, ProjectStatusCancelled},
	ProjectStatusOpen:       {ProjectStatusCancelled},
	ProjectStatusAssigned:   {ProjectStatusInProgress, ProjectStatusCancelled},
	ProjectStatusInProgress: {ProjectStatusCompleted, ProjectStatusCancelled},
	ProjectStatusCompleted:  {},
	ProjectStatusCancelled:  {},
}

// CanTransition reports whether the state table permits moving a project
// from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range projectTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether a project status admits no further change.
func IsTerminalStatus(status string) bool {
	return status == ProjectStatusCompleted || status == ProjectStatusCancelled
}

type Project struct {
	ID           int64     `json:"id"`
	ClientID     string    `json:"client_id"`
	FreelancerID *string   `json:"freelancer_id,omitempty"` // set when a bid is accepted
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Budget       float64   `json:"budget"`
	Deadline     time.Time `json:"deadline"`
	Category     string    `json:"category"`
	PaymentType  string    `json:"payment_type"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined data for list responses
	ClientName     *string `json:"client_name,omitempty"`
	FreelancerName *string `json:"freelancer_name,omitempty"`
}

// ProjectFilter describes the filter/sort/pagination inputs for listing.
// Sorting always tie-breaks by id ascending so pagination stays stable.
type ProjectFilter struct {
	Name     string // case-insensitive substring match on title
	Status   string
	Category string
	ClientID string
	SortBy   string // "name" or "date"
	Order    string // "asc" or "desc"
	Page     int    // 1-indexed
	Limit    int
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// Cancel sets the project to cancelled and rejects all of its pending
	// bids in a single transaction.
	Cancel(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	CreateProject(ctx context.Context, clientID string, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]Project, int64, error)
	Transition(ctx context.Context, actorID string, projectID int64, target string) (*Project, error)
}
