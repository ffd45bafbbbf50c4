package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// TokenIssuer abstracts token signing so tests can stub it.
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenIssuer
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens TokenIssuer) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a user with a fixed role and returns it with a fresh
// access token. Roles are immutable after creation.
func (u *authUsecase) Register(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
	if role != domain.RoleClient && role != domain.RoleFreelancer {
		return nil, "", apperror.Validation("Role must be client or freelancer")
	}
	if len(password) < 8 {
		return nil, "", apperror.Validation("Password must be at least 8 characters")
	}

	if existing, _ := u.userRepo.GetByEmail(ctx, email); existing != nil {
		return nil, "", apperror.Conflict("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", apperror.Internal(err)
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
