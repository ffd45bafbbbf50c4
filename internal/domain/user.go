package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflicting state change")
)

// User roles. A user's role is fixed at registration.
const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Bio          *string    `json:"bio,omitempty"`
	HourlyRate   *float64   `json:"hourly_rate,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Skills       []UserSkill `json:"skills,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	FetchFreelancers(ctx context.Context, limit, offset int) ([]User, int64, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, role string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, bio *string, hourlyRate *float64) (*User, error)
	SetSkills(ctx context.Context, userID string, skills []UserSkill) ([]UserSkill, error)
	ListFreelancers(ctx context.Context, page, pageSize int) ([]User, int64, error)
}
