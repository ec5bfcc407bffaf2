package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"chirp/internal/models"
	"strings"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, username, email, password string) (*models.User, error) {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user := &models.User{
		UserID:       uuid.New().String(),
		Username:     strings.ToLower(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashedPassword),
	}

	query := `
		INSERT INTO users (user_id, username, email, password_hash)
		VALUES (:user_id, :username, :email, :password_hash)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE LOWER(username) = LOWER($1)`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по имени: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM users WHERE LOWER(username) = LOWER($1)`

	err := r.db.GetContext(ctx, &count, query, username)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке имени пользователя: %w", err)
	}

	return count > 0, nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &count, query, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке email: %w", err)
	}

	return count > 0, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrWrongPassword
	}

	return user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID string, username, bio *string) error {
	setParts := []string{}
	args := []interface{}{}

	if username != nil {
		args = append(args, strings.ToLower(*username))
		setParts = append(setParts, fmt.Sprintf("username = $%d", len(args)))
	}

	if bio != nil {
		args = append(args, *bio)
		setParts = append(setParts, fmt.Sprintf("bio = $%d", len(args)))
	}

	if len(setParts) == 0 {
		return nil
	}

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE user_id = $%d", strings.Join(setParts, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userRepository) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, avatarURL, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении аватара: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	query := `UPDATE users SET password_hash = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, string(hashedPassword), userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пароля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userRepository) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	var account models.Account

	query := `SELECT user_id, username, email, bio, avatar_url FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &account, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении аккаунта: %w", err)
	}

	return &account, nil
}

func (r *userRepository) GetProfile(ctx context.Context, viewerID, userID string) (*models.Profile, error) {
	var profile models.Profile

	query := `
		SELECT
			u.user_id,
			u.username,
			u.bio,
			u.avatar_url,
			(SELECT COUNT(*) FROM follows f1 WHERE f1.following_id = u.user_id) AS follower_count,
			(SELECT COUNT(*) FROM follows f2 WHERE f2.follower_id = u.user_id) AS following_count,
			EXISTS (
				SELECT 1 FROM follows f3
				WHERE f3.follower_id = $1 AND f3.following_id = u.user_id
			) AS is_following
		FROM users u
		WHERE u.user_id = $2
	`

	err := r.db.GetContext(ctx, &profile, query, viewerID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении профиля: %w", err)
	}

	return &profile, nil
}

func (r *userRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке пользователя: %w", err)
	}

	return count > 0, nil
}
