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

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non-positive hourly rate", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockSkillRepo))
		rate := -20.0
		_, err := uc.UpdateProfile(ctx, "u1", nil, &rate)
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should only touch provided fields", func(t *testing.T) {
		existingBio := "Old bio"
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Bio: &existingBio}, nil)
		mockUsers.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Bio == &existingBio && u.HourlyRate != nil && *u.HourlyRate == 45.0
		})).Return(nil)

		rate := 45.0
		uc := usecase.NewUserUsecase(mockUsers, new(MockSkillRepo))
		user, err := uc.UpdateProfile(ctx, "u1", nil, &rate)

		assert.NoError(t, err)
		assert.Equal(t, existingBio, *user.Bio)
		assert.Equal(t, 45.0, *user.HourlyRate)
	})
}

func TestSetSkills(t *testing.T) {
	ctx := context.Background()

	t.Run("Should validate skill ids and proficiency", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockSkillRepo))

		_, err := uc.SetSkills(ctx, "u1", []domain.UserSkill{{SkillID: 0, Proficiency: 3}})
		assertKind(t, err, apperror.KindValidation)

		_, err = uc.SetSkills(ctx, "u1", []domain.UserSkill{{SkillID: 1, Proficiency: 6}})
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should replace and re-fetch", func(t *testing.T) {
		input := []domain.UserSkill{{SkillID: 1, Proficiency: 4}}
		stored := []domain.UserSkill{{SkillID: 1, Name: "Go", Proficiency: 4}}

		mockSkills := new(MockSkillRepo)
		mockSkills.On("ReplaceUserSkills", ctx, "u1", input).Return(nil)
		mockSkills.On("GetUserSkills", ctx, "u1").Return(stored, nil)

		uc := usecase.NewUserUsecase(new(MockUserRepo), mockSkills)
		skills, err := uc.SetSkills(ctx, "u1", input)

		assert.NoError(t, err)
		assert.Equal(t, stored, skills)
		mockSkills.AssertExpectations(t)
	})
}

func TestListFreelancers(t *testing.T) {
	ctx := context.Background()

	t.Run("Should clamp bad pagination and compute the offset", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockUsers.On("FetchFreelancers", ctx, 10, 0).Return([]domain.User{}, int64(0), nil).Once()
		mockUsers.On("FetchFreelancers", ctx, 20, 20).Return([]domain.User{}, int64(0), nil).Once()

		uc := usecase.NewUserUsecase(mockUsers, new(MockSkillRepo))

		_, _, err := uc.ListFreelancers(ctx, -3, 0)
		assert.NoError(t, err)

		_, _, err = uc.ListFreelancers(ctx, 2, 20)
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})
}
