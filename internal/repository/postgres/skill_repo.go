package postgres

import (
	"context"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name, category FROM skills ORDER BY category ASC, name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetUserSkills(ctx context.Context, userID string) ([]domain.UserSkill, error) {
	query := `SELECT us.skill_id, s.name, us.proficiency_level
              FROM user_skills us
              JOIN skills s ON us.skill_id = s.id
              WHERE us.user_id = $1
              ORDER BY s.name ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.UserSkill
	for rows.Next() {
		var s domain.UserSkill
		if err := rows.Scan(&s.SkillID, &s.Name, &s.Proficiency); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ReplaceUserSkills swaps the user's full skill set in one transaction.
// The new rows are bulk-inserted by unnesting parallel arrays.
func (r *skillRepo) ReplaceUserSkills(ctx context.Context, userID string, skills []domain.UserSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
		return err
	}

	if len(skills) > 0 {
		ids := make([]int64, len(skills))
		levels := make([]int64, len(skills))
		for i, s := range skills {
			ids[i] = s.SkillID
			levels[i] = int64(s.Proficiency)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill_id, proficiency_level)
             SELECT $1, unnest($2::bigint[]), unnest($3::int[])`,
			userID, pq.Array(ids), pq.Array(levels),
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
