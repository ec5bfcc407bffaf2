package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type relationshipRepository struct {
	db *sqlx.DB
}

func NewRelationshipRepository(db *sqlx.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// BlockedSet возвращает всех пользователей, скрытых от зрителя: и тех, кого
// заблокировал он, и тех, кто заблокировал его. Ребро направленное,
// множество - симметричное.
func (r *relationshipRepository) BlockedSet(ctx context.Context, viewerID string) (map[string]struct{}, error) {
	rows := []struct {
		BlockerID string `db:"blocker_id"`
		BlockedID string `db:"blocked_id"`
	}{}

	query := `SELECT blocker_id, blocked_id FROM blocks WHERE blocker_id = $1 OR blocked_id = $1`

	err := r.db.SelectContext(ctx, &rows, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении блокировок: %w", err)
	}

	blockedSet := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row.BlockerID == viewerID {
			blockedSet[row.BlockedID] = struct{}{}
		} else if row.BlockedID == viewerID {
			blockedSet[row.BlockerID] = struct{}{}
		}
	}

	return blockedSet, nil
}

func (r *relationshipRepository) FollowedIDs(ctx context.Context, viewerID string) ([]string, error) {
	followedIDs := []string{}

	query := `SELECT following_id FROM follows WHERE follower_id = $1`

	err := r.db.SelectContext(ctx, &followedIDs, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return followedIDs, nil
}

func (r *relationshipRepository) Follow(ctx context.Context, followerID, followingID string) error {
	query := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *relationshipRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

// Block создает ребро блокировки и в той же транзакции разрывает подписки
// в обоих направлениях. Unblock подписки не восстанавливает.
func (r *relationshipRepository) Block(ctx context.Context, blockerID, blockedID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO blocks (blocker_id, blocked_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("ошибка при создании блокировки: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		blockedID, blockerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *relationshipRepository) Unblock(ctx context.Context, blockerID, blockedID string) error {
	query := `DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`

	_, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении блокировки: %w", err)
	}

	return nil
}
