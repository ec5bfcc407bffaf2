package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"chirp/internal/models"
)

type tokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, userID string, ttl time.Duration) (*models.PasswordResetToken, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("ошибка при генерации токена: %w", err)
	}

	token := &models.PasswordResetToken{
		Token:     hex.EncodeToString(raw),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}

	query := `
		INSERT INTO password_reset_tokens (token, user_id, expires_at)
		VALUES (:token, :user_id, :expires_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, token)
	if err != nil {
		return nil, fmt.Errorf("ошибка при сохранении токена: %w", err)
	}

	return token, nil
}

func (r *tokenRepository) FindValid(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	var resetToken models.PasswordResetToken

	query := `
		SELECT token, user_id, expires_at FROM password_reset_tokens
		WHERE token = $1 AND expires_at > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &resetToken, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске токена: %w", err)
	}

	return &resetToken, nil
}

func (r *tokenRepository) Invalidate(ctx context.Context, token string) error {
	query := `DELETE FROM password_reset_tokens WHERE token = $1`

	_, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("ошибка при удалении токена: %w", err)
	}

	return nil
}
