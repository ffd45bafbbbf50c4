package usecase_test

import (
	"context"
	"testing"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockProjectRepo) Cancel(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBidRepo struct {
	mock.Mock
}

func (m *MockBidRepo) Create(ctx context.Context, bid *domain.Bid) error {
	return m.Called(ctx, bid).Error(0)
}

func (m *MockBidRepo) GetByID(ctx context.Context, id int64) (*domain.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}

func (m *MockBidRepo) GetByProjectID(ctx context.Context, projectID int64) ([]domain.Bid, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *MockBidRepo) GetByFreelancerID(ctx context.Context, freelancerID string) ([]domain.Bid, error) {
	args := m.Called(ctx, freelancerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *MockBidRepo) HasPendingBid(ctx context.Context, projectID int64, freelancerID string) (bool, error) {
	args := m.Called(ctx, projectID, freelancerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBidRepo) Accept(ctx context.Context, bid *domain.Bid) error {
	return m.Called(ctx, bid).Error(0)
}

func (m *MockBidRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, message *domain.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepo) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageRepo) GetByProjectID(ctx context.Context, projectID int64) ([]domain.Message, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageRepo) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepo) ExistsForReviewer(ctx context.Context, projectID int64, reviewerID string) (bool, error) {
	args := m.Called(ctx, projectID, reviewerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepo) GetByRevieweeID(ctx context.Context, revieweeID string) ([]domain.Review, error) {
	args := m.Called(ctx, revieweeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) FetchFreelancers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetUserSkills(ctx context.Context, userID string) ([]domain.UserSkill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSkill), args.Error(1)
}

func (m *MockSkillRepo) ReplaceUserSkills(ctx context.Context, userID string, skills []domain.UserSkill) error {
	return m.Called(ctx, userID, skills).Error(0)
}

// stubIssuer satisfies usecase.TokenIssuer without real signing.
type stubIssuer struct{}

func (stubIssuer) Issue(userID, role string) (string, error) {
	return "token-for-" + userID, nil
}

// assertKind checks that err is an AppError of the given kind.
func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, kind, appErr.Kind)
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject unknown role", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), stubIssuer{})
		_, _, err := uc.Register(ctx, "Ana", "ana@example.com", "password123", "admin")
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should reject short password", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), stubIssuer{})
		_, _, err := uc.Register(ctx, "Ana", "ana@example.com", "short", domain.RoleClient)
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "taken@example.com").Return(&domain.User{ID: "u1"}, nil)

		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		_, _, err := uc.Register(ctx, "Ana", "taken@example.com", "password123", domain.RoleClient)
		assertKind(t, err, apperror.KindConflict)
	})

	t.Run("Should create user and return token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "ana@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		user, token, err := uc.Register(ctx, "Ana", "ana@example.com", "password123", domain.RoleFreelancer)

		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, domain.RoleFreelancer, user.Role)
		assert.Equal(t, "token-for-"+user.ID, token)
		assert.NotEqual(t, "password123", user.PasswordHash)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	t.Run("Should fail with unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		_, _, err := uc.Login(ctx, "ghost@example.com", "password123")
		assertKind(t, err, apperror.KindUnauthorized)
	})

	t.Run("Should fail with wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "ana@example.com").Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		_, _, err := uc.Login(ctx, "ana@example.com", "wrongpass")
		assertKind(t, err, apperror.KindUnauthorized)
	})

	t.Run("Should succeed with correct password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "ana@example.com").Return(&domain.User{ID: "u1", Role: domain.RoleClient, PasswordHash: string(hash)}, nil)

		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		user, token, err := uc.Login(ctx, "ana@example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "token-for-u1", token)
	})
}
