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

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, authorID, content string) (*models.Post, error) {
	post := &models.Post{
		PostID:    uuid.New().String(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO posts (post_id, author_id, content, created_at)
		VALUES (:post_id, :author_id, :content, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return post, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetWithMeta(ctx context.Context, viewerID, postID string) (*models.PostWithMeta, error) {
	var post models.PostWithMeta

	query := `
		SELECT
			p.post_id,
			p.author_id,
			p.content,
			p.created_at,
			u.username,
			u.avatar_url,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS like_count,
			EXISTS (
				SELECT 1 FROM likes l2
				WHERE l2.post_id = p.post_id AND l2.user_id = $1
			) AS liked_by_me,
			(SELECT COUNT(*) FROM retweets r WHERE r.post_id = p.post_id) AS retweet_count,
			EXISTS (
				SELECT 1 FROM retweets r2
				WHERE r2.post_id = p.post_id AND r2.user_id = $1
			) AS retweeted_by_me
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		WHERE p.post_id = $2
	`

	err := r.db.GetContext(ctx, &post, query, viewerID, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
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

func (r *PostRepositoryImpl) Exists(ctx context.Context, postID string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке поста: %w", err)
	}

	return count > 0, nil
}

// Like идемпотентен: повторная вставка существующей пары игнорируется
func (r *PostRepositoryImpl) Like(ctx context.Context, userID, postID string) error {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) Unlike(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) Retweet(ctx context.Context, userID, postID string) error {
	query := `
		INSERT INTO retweets (user_id, post_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, postID, time.Now())
	if err != nil {
		return fmt.Errorf("ошибка при добавлении ретвита: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) Unretweet(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM retweets WHERE user_id = $1 AND post_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении ретвита: %w", err)
	}

	return nil
}
