package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"chirp/internal/models"
)

type ReplyRepositoryImpl struct {
	db *sqlx.DB
}

func NewReplyRepository(db *sqlx.DB) *ReplyRepositoryImpl {
	return &ReplyRepositoryImpl{db: db}
}

func (r *ReplyRepositoryImpl) Create(ctx context.Context, authorID, parentPostID, content string) (*models.Reply, error) {
	reply := &models.Reply{
		ReplyID:      uuid.New().String(),
		AuthorID:     authorID,
		ParentPostID: parentPostID,
		Content:      content,
		CreatedAt:    time.Now(),
	}

	query := `
		INSERT INTO replies (reply_id, author_id, parent_post_id, content, created_at)
		VALUES (:reply_id, :author_id, :parent_post_id, :content, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, reply)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании реплая: %w", err)
	}

	return reply, nil
}

func (r *ReplyRepositoryImpl) GetByID(ctx context.Context, replyID string) (*models.Reply, error) {
	var reply models.Reply

	query := `SELECT * FROM replies WHERE reply_id = $1`

	err := r.db.GetContext(ctx, &reply, query, replyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении реплая: %w", err)
	}

	return &reply, nil
}

// ListByPost возвращает реплаи поста по возрастанию времени создания
func (r *ReplyRepositoryImpl) ListByPost(ctx context.Context, postID string) ([]models.ReplyWithAuthor, error) {
	replies := []models.ReplyWithAuthor{}

	query := `
		SELECT
			r.reply_id,
			r.author_id,
			r.parent_post_id,
			r.content,
			r.created_at,
			u.username,
			u.avatar_url
		FROM replies r
		JOIN users u ON u.user_id = r.author_id
		WHERE r.parent_post_id = $1
		ORDER BY r.created_at ASC
	`

	err := r.db.SelectContext(ctx, &replies, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении реплаев: %w", err)
	}

	return replies, nil
}

func (r *ReplyRepositoryImpl) Delete(ctx context.Context, replyID string) error {
	query := `DELETE FROM replies WHERE reply_id = $1`

	result, err := r.db.ExecContext(ctx, query, replyID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении реплая: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
