package usecase_test

import (
	"context"
	"testing"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func completedProject() *domain.Project {
	freelancer := "freelancer1"
	return &domain.Project{ID: 1, ClientID: "client1", FreelancerID: &freelancer, Status: domain.ProjectStatusCompleted}
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject ratings outside 1 to 5", func(t *testing.T) {
		uc := usecase.NewReviewUsecase(new(MockReviewRepo), new(MockProjectRepo))

		_, err := uc.CreateReview(ctx, "client1", 1, 0, "")
		assertKind(t, err, apperror.KindValidation)

		_, err = uc.CreateReview(ctx, "client1", 1, 6, "")
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should require a completed project", func(t *testing.T) {
		project := completedProject()
		project.Status = domain.ProjectStatusInProgress
		mockProjects := new(MockProjectRepo)
		mockProjects.On("GetByID", ctx, int64(1)).Return(project, nil)

		uc := usecase.NewReviewUsecase(new(MockReviewRepo), mockProjects)
		_, err := uc.CreateReview(ctx, "client1", 1, 5, "great work")
		assertKind(t, err, apperror.KindConflict)
	})

	t.Run("Should allow only project participants", func(t *testing.T) {
		mockProjects := new(MockProjectRepo)
		mockProjects.On("GetByID", ctx, int64(1)).Return(completedProject(), nil)

		uc := usecase.NewReviewUsecase(new(MockReviewRepo), mockProjects)
		_, err := uc.CreateReview(ctx, "outsider", 1, 5, "great work")
		assertKind(t, err, apperror.KindParticipant)
	})

	t.Run("Should allow one review per direction", func(t *testing.T) {
		mockProjects := new(MockProjectRepo)
		mockProjects.On("GetByID", ctx, int64(1)).Return(completedProject(), nil)
		mockReviews := new(MockReviewRepo)
		mockReviews.On("ExistsForReviewer", ctx, int64(1), "client1").Return(true, nil)

		uc := usecase.NewReviewUsecase(mockReviews, mockProjects)
		_, err := uc.CreateReview(ctx, "client1", 1, 5, "great work")
		assertKind(t, err, apperror.KindConflict)
	})

	t.Run("Should point the review at the other party", func(t *testing.T) {
		mockProjects := new(MockProjectRepo)
		mockProjects.On("GetByID", ctx, int64(1)).Return(completedProject(), nil)
		mockReviews := new(MockReviewRepo)
		mockReviews.On("ExistsForReviewer", ctx, int64(1), mock.Anything).Return(false, nil)
		mockReviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)

		uc := usecase.NewReviewUsecase(mockReviews, mockProjects)

		fromClient, err := uc.CreateReview(ctx, "client1", 1, 5, "delivered early")
		assert.NoError(t, err)
		assert.Equal(t, "freelancer1", fromClient.RevieweeID)

		fromFreelancer, err := uc.CreateReview(ctx, "freelancer1", 1, 4, "clear requirements")
		assert.NoError(t, err)
		assert.Equal(t, "client1", fromFreelancer.RevieweeID)
	})
}

func TestListReviewsByUser(t *testing.T) {
	ctx := context.Background()

	mockReviews := new(MockReviewRepo)
	mockReviews.On("GetByRevieweeID", ctx, "freelancer1").Return([]domain.Review{{ID: 1, Rating: 5}}, nil)

	uc := usecase.NewReviewUsecase(mockReviews, new(MockProjectRepo))
	reviews, err := uc.ListByUser(ctx, "freelancer1")

	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
}
