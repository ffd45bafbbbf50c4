package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func validProject() *domain.Project {
	return &domain.Project{
		Title:       "Build a landing page",
		Description: "A responsive landing page with contact form and analytics.",
		Budget:      1500,
		Deadline:    fixedNow.AddDate(0, 1, 0),
		Category:    "web",
		PaymentType: domain.PaymentTypeFixed,
	}
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non-positive budget", func(t *testing.T) {
		uc := usecase.NewProjectUsecaseWithClock(new(MockProjectRepo), fixedClock)
		p := validProject()
		p.Budget = 0
		assertKind(t, uc.CreateProject(ctx, "client1", p), apperror.KindValidation)
	})

	t.Run("Should reject past deadline", func(t *testing.T) {
		uc := usecase.NewProjectUsecaseWithClock(new(MockProjectRepo), fixedClock)
		p := validProject()
		p.Deadline = fixedNow.AddDate(0, 0, -1)
		assertKind(t, uc.CreateProject(ctx, "client1", p), apperror.KindValidation)
	})

	t.Run("Should reject short title and description", func(t *testing.T) {
		uc := usecase.NewProjectUsecaseWithClock(new(MockProjectRepo), fixedClock)

		p := validProject()
		p.Title = "Logo"
		assertKind(t, uc.CreateProject(ctx, "client1", p), apperror.KindValidation)

		p = validProject()
		p.Description = "Too short"
		assertKind(t, uc.CreateProject(ctx, "client1", p), apperror.KindValidation)
	})

	t.Run("Should reject unknown payment type", func(t *testing.T) {
		uc := usecase.NewProjectUsecaseWithClock(new(MockProjectRepo), fixedClock)
		p := validProject()
		p.PaymentType = "barter"
		assertKind(t, uc.CreateProject(ctx, "client1", p), apperror.KindValidation)
	})

	t.Run("Should reject initial status outside draft or open", func(t *testing.T) {
		uc := usecase.NewProjectUsecaseWithClock(new(MockProjectRepo), fixedClock)
		p := validProject()
		p.Status = domain.ProjectStatusAssigned
		assertKind(t, uc.CreateProject(ctx, "client1", p), apperror.KindValidation)
	})

	t.Run("Should default status to open and own the project", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Project")).Return(nil)

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)
		p := validProject()

		assert.NoError(t, uc.CreateProject(ctx, "client1", p))
		assert.Equal(t, domain.ProjectStatusOpen, p.Status)
		assert.Equal(t, "client1", p.ClientID)
		assert.Nil(t, p.FreelancerID)
		mockRepo.AssertExpectations(t)
	})
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{domain.ProjectStatusDraft, domain.ProjectStatusOpen, true},
		{domain.ProjectStatusDraft, domain.ProjectStatusCancelled, true},
		{domain.ProjectStatusDraft, domain.ProjectStatusInProgress, false},
		{domain.ProjectStatusOpen, domain.ProjectStatusCancelled, true},
		{domain.ProjectStatusOpen, domain.ProjectStatusAssigned, false},
		{domain.ProjectStatusOpen, domain.ProjectStatusCompleted, false},
		{domain.ProjectStatusAssigned, domain.ProjectStatusInProgress, true},
		{domain.ProjectStatusAssigned, domain.ProjectStatusCancelled, true},
		{domain.ProjectStatusAssigned, domain.ProjectStatusCompleted, false},
		{domain.ProjectStatusInProgress, domain.ProjectStatusCompleted, true},
		{domain.ProjectStatusInProgress, domain.ProjectStatusCancelled, true},
		{domain.ProjectStatusInProgress, domain.ProjectStatusOpen, false},
		{domain.ProjectStatusCompleted, domain.ProjectStatusCancelled, false},
		{domain.ProjectStatusCancelled, domain.ProjectStatusOpen, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, domain.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, domain.IsTerminalStatus(domain.ProjectStatusCompleted))
	assert.True(t, domain.IsTerminalStatus(domain.ProjectStatusCancelled))
	assert.False(t, domain.IsTerminalStatus(domain.ProjectStatusOpen))
}

func TestTransition(t *testing.T) {
	ctx := context.Background()
	freelancer := "freelancer1"

	t.Run("Should refuse assigning directly", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Project{ID: 1, ClientID: "client1", Status: domain.ProjectStatusOpen}, nil)

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)
		_, err := uc.Transition(ctx, "client1", 1, domain.ProjectStatusAssigned)
		assertKind(t, err, apperror.KindIllegalTransition)
	})

	t.Run("Should refuse moves the table forbids", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Project{ID: 1, ClientID: "client1", Status: domain.ProjectStatusCompleted}, nil)

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)
		_, err := uc.Transition(ctx, "client1", 1, domain.ProjectStatusCancelled)
		assertKind(t, err, apperror.KindIllegalTransition)
	})

	t.Run("Should let only the client open a draft", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Project{ID: 1, ClientID: "client1", Status: domain.ProjectStatusDraft}, nil)

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)
		_, err := uc.Transition(ctx, "someone-else", 1, domain.ProjectStatusOpen)
		assertKind(t, err, apperror.KindNotOwner)
	})

	t.Run("Should let only the assigned freelancer start and complete work", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Project{
			ID: 1, ClientID: "client1", FreelancerID: &freelancer, Status: domain.ProjectStatusAssigned,
		}, nil)

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)

		_, err := uc.Transition(ctx, "client1", 1, domain.ProjectStatusInProgress)
		assertKind(t, err, apperror.KindNotOwner)

		mockRepo.On("UpdateStatus", ctx, int64(1), domain.ProjectStatusInProgress).Return(nil)
		updated, err := uc.Transition(ctx, freelancer, 1, domain.ProjectStatusInProgress)
		assert.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusInProgress, updated.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should cancel through the bid-rejecting path", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Project{ID: 1, ClientID: "client1", Status: domain.ProjectStatusOpen}, nil)
		mockRepo.On("Cancel", ctx, int64(1)).Return(nil)

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)
		updated, err := uc.Transition(ctx, "client1", 1, domain.ProjectStatusCancelled)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusCancelled, updated.Status)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non-positive page or limit", func(t *testing.T) {
		uc := usecase.NewProjectUsecaseWithClock(new(MockProjectRepo), fixedClock)

		_, _, err := uc.ListProjects(ctx, domain.ProjectFilter{Page: -1})
		assertKind(t, err, apperror.KindValidation)

		_, _, err = uc.ListProjects(ctx, domain.ProjectFilter{Limit: -5})
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should reject unknown sort key and order", func(t *testing.T) {
		uc := usecase.NewProjectUsecaseWithClock(new(MockProjectRepo), fixedClock)

		_, _, err := uc.ListProjects(ctx, domain.ProjectFilter{SortBy: "budget"})
		assertKind(t, err, apperror.KindValidation)

		_, _, err = uc.ListProjects(ctx, domain.ProjectFilter{Order: "sideways"})
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should apply defaults and cap the limit", func(t *testing.T) {
		mockRepo := new(MockProjectRepo)
		mockRepo.On("List", ctx, domain.ProjectFilter{SortBy: "date", Order: "desc", Page: 1, Limit: 10}).
			Return([]domain.Project{}, int64(0), nil).Once()
		mockRepo.On("List", ctx, domain.ProjectFilter{SortBy: "name", Order: "asc", Page: 2, Limit: 100}).
			Return([]domain.Project{}, int64(0), nil).Once()

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)

		_, _, err := uc.ListProjects(ctx, domain.ProjectFilter{})
		assert.NoError(t, err)

		_, _, err = uc.ListProjects(ctx, domain.ProjectFilter{SortBy: "name", Order: "asc", Page: 2, Limit: 500})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should pass filters through", func(t *testing.T) {
		filter := domain.ProjectFilter{
			Name: "landing", Status: domain.ProjectStatusOpen, Category: "web",
			SortBy: "name", Order: "asc", Page: 1, Limit: 20,
		}
		mockRepo := new(MockProjectRepo)
		mockRepo.On("List", ctx, filter).Return([]domain.Project{{ID: 7}}, int64(1), nil)

		uc := usecase.NewProjectUsecaseWithClock(mockRepo, fixedClock)
		projects, total, err := uc.ListProjects(ctx, filter)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, projects, 1)
	})
}
