package domain

import "context"

// Skill is one entry in the global skill taxonomy.
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UserSkill joins a user to a skill with a proficiency level of 1-5.
type UserSkill struct {
	SkillID     int64  `json:"skill_id"`
	Name        string `json:"name,omitempty"`
	Proficiency int    `json:"proficiency_level"`
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
	GetUserSkills(ctx context.Context, userID string) ([]UserSkill, error)
	// ReplaceUserSkills swaps a user's full skill set in one transaction.
	ReplaceUserSkills(ctx context.Context, userID string, skills []UserSkill) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
}
