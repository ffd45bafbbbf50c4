package postgres

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, message *domain.Message) error {
	message.CreatedAt = time.Now()
	query := `INSERT INTO messages (project_id, sender_id, receiver_id, content, is_read, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		message.ProjectID, message.SenderID, message.ReceiverID, message.Content, message.IsRead,
		message.CreatedAt,
	).Scan(&message.ID)
}

func (r *messageRepo) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	query := `SELECT id, project_id, sender_id, receiver_id, content, is_read, created_at
              FROM messages WHERE id = $1`
	var m domain.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ProjectID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByProjectID returns the conversation in posting order. The id tie-break
// keeps messages created in the same instant stable.
func (r *messageRepo) GetByProjectID(ctx context.Context, projectID int64) ([]domain.Message, error) {
	query := `SELECT m.id, m.project_id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at,
                     u.name AS sender_name
              FROM messages m
              JOIN users u ON m.sender_id = u.id
              WHERE m.project_id = $1
              ORDER BY m.created_at ASC, m.id ASC`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(
			&m.ID, &m.ProjectID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt,
			&m.SenderName,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messageRepo) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
