package usecase

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

const (
	minProjectTitleLen       = 5
	minProjectDescriptionLen = 20
	maxListLimit             = 100
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	now         func() time.Time
}

func NewProjectUsecase(projectRepo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		now:         time.Now,
	}
}

// NewProjectUsecaseWithClock injects a clock for deterministic deadline checks in tests.
func NewProjectUsecaseWithClock(projectRepo domain.ProjectRepository, now func() time.Time) domain.ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo, now: now}
}

// CreateProject validates the project fields and stores it. Projects start
// in OPEN unless the client explicitly saves a draft.
func (u *projectUsecase) CreateProject(ctx context.Context, clientID string, project *domain.Project) error {
	if project.Budget <= 0 {
		return apperror.Validation("Budget must be greater than zero")
	}
	if project.Deadline.Before(u.now()) {
		return apperror.Validation("Deadline must not be in the past")
	}
	if len(project.Title) < minProjectTitleLen {
		return apperror.Validation("Title must be at least 5 characters")
	}
	if len(project.Description) < minProjectDescriptionLen {
		return apperror.Validation("Description must be at least 20 characters")
	}
	if project.PaymentType != domain.PaymentTypeFixed && project.PaymentType != domain.PaymentTypeHourly {
		return apperror.Validation("Payment type must be fixed or hourly")
	}

	switch project.Status {
	case "":
		project.Status = domain.ProjectStatusOpen
	case domain.ProjectStatusDraft, domain.ProjectStatusOpen:
	default:
		return apperror.Validation("New projects can only start as draft or open")
	}

	project.ClientID = clientID
	project.FreelancerID = nil
	project.CreatedAt = u.now()
	project.UpdatedAt = project.CreatedAt

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *projectUsecase) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}
	return project, nil
}

// ListProjects applies defaults, validates pagination, and delegates to the
// repository. Results are sorted by the requested key with an id tie-break,
// so identical queries over unchanged data page identically.
func (u *projectUsecase) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, int64, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 10
	}
	if filter.Page < 1 || filter.Limit < 1 {
		return nil, 0, apperror.Validation("Page and limit must be positive")
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	switch filter.SortBy {
	case "":
		filter.SortBy = "date"
	case "name", "date":
	default:
		return nil, 0, apperror.Validation("Sort key must be name or date")
	}
	switch filter.Order {
	case "":
		filter.Order = "desc"
	case "asc", "desc":
	default:
		return nil, 0, apperror.Validation("Order must be asc or desc")
	}

	projects, total, err := u.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return projects, total, nil
}

// Transition moves a project along the status state table on behalf of an
// actor. Cancelling also rejects any pending bids in the same transaction.
// Assignment cannot be reached here; only bid acceptance assigns.
func (u *projectUsecase) Transition(ctx context.Context, actorID string, projectID int64, target string) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, apperror.NotFound("Project not found")
	}

	if target == domain.ProjectStatusAssigned {
		return nil, apperror.IllegalTransition("Projects are assigned by accepting a bid")
	}
	if !domain.CanTransition(project.Status, target) {
		return nil, apperror.IllegalTransition("Cannot move project from " + project.Status + " to " + target)
	}

	switch target {
	case domain.ProjectStatusOpen, domain.ProjectStatusCancelled:
		if actorID != project.ClientID {
			return nil, apperror.NotOwner("Only the project's client can do this")
		}
	case domain.ProjectStatusInProgress, domain.ProjectStatusCompleted:
		if project.FreelancerID == nil || actorID != *project.FreelancerID {
			return nil, apperror.NotOwner("Only the assigned freelancer can do this")
		}
	default:
		return nil, apperror.IllegalTransition("Unknown target status")
	}

	if target == domain.ProjectStatusCancelled {
		if err := u.projectRepo.Cancel(ctx, projectID); err != nil {
			return nil, apperror.Internal(err)
		}
	} else {
		if err := u.projectRepo.UpdateStatus(ctx, projectID, target); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	project.Status = target
	project.UpdatedAt = u.now()
	return project, nil
}
