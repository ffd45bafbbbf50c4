package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo  domain.UserRepository
	skillRepo domain.SkillRepository
}

func NewUserUsecase(userRepo domain.UserRepository, skillRepo domain.SkillRepository) domain.UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		skillRepo: skillRepo,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	skills, err := u.skillRepo.GetUserSkills(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Skills = skills
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, bio *string, hourlyRate *float64) (*domain.User, error) {
	if hourlyRate != nil && *hourlyRate <= 0 {
		return nil, apperror.Validation("Hourly rate must be greater than zero")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	if bio != nil {
		user.Bio = bio
	}
	if hourlyRate != nil {
		user.HourlyRate = hourlyRate
	}
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// SetSkills replaces the user's skill set.
func (u *userUsecase) SetSkills(ctx context.Context, userID string, skills []domain.UserSkill) ([]domain.UserSkill, error) {
	for _, s := range skills {
		if s.SkillID <= 0 {
			return nil, apperror.Validation("Skill id must be positive")
		}
		if s.Proficiency < 1 || s.Proficiency > 5 {
			return nil, apperror.Validation("Proficiency level must be between 1 and 5")
		}
	}
	if err := u.skillRepo.ReplaceUserSkills(ctx, userID, skills); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.skillRepo.GetUserSkills(ctx, userID)
}

func (u *userUsecase) ListFreelancers(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.userRepo.FetchFreelancers(ctx, pageSize, offset)
}
