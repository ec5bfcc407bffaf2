package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"chirp/internal/models"
)

type feedRepository struct {
	db *sqlx.DB
}

func NewFeedRepository(db *sqlx.DB) FeedRepository {
	return &feedRepository{db: db}
}

const postWithMetaColumns = `
	p.post_id,
	p.author_id,
	p.content,
	p.created_at,
	u.username,
	u.avatar_url,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS like_count,
	EXISTS (
		SELECT 1 FROM likes l2
		WHERE l2.post_id = p.post_id AND l2.user_id = ?
	) AS liked_by_me,
	(SELECT COUNT(*) FROM retweets r WHERE r.post_id = p.post_id) AS retweet_count,
	EXISTS (
		SELECT 1 FROM retweets r2
		WHERE r2.post_id = p.post_id AND r2.user_id = ?
	) AS retweeted_by_me`

// GlobalPosts возвращает все посты, новые первыми, с полями автора и
// счётчиками. Фильтрация по блокировкам и ограничение размера - на стороне
// сервиса ленты.
func (r *feedRepository) GlobalPosts(ctx context.Context, viewerID string) ([]models.PostWithMeta, error) {
	posts := []models.PostWithMeta{}

	query := r.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		ORDER BY p.created_at DESC`, postWithMetaColumns))

	err := r.db.SelectContext(ctx, &posts, query, viewerID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов ленты: %w", err)
	}

	return posts, nil
}

func (r *feedRepository) PostsByAuthors(ctx context.Context, viewerID string, authorIDs []string) ([]models.PostWithMeta, error) {
	posts := []models.PostWithMeta{}

	if len(authorIDs) == 0 {
		return posts, nil
	}

	query, args, err := sqlx.In(fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		WHERE p.author_id IN (?)
		ORDER BY p.created_at DESC`, postWithMetaColumns),
		viewerID, viewerID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("ошибка при сборке запроса постов: %w", err)
	}

	err = r.db.SelectContext(ctx, &posts, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов подписок: %w", err)
	}

	return posts, nil
}

func (r *feedRepository) RetweetsByUsers(ctx context.Context, viewerID string, userIDs []string) ([]models.RetweetWithMeta, error) {
	retweets := []models.RetweetWithMeta{}

	if len(userIDs) == 0 {
		return retweets, nil
	}

	query, args, err := sqlx.In(`
		SELECT
			rt.user_id || ':' || rt.post_id AS retweet_id,
			rt.user_id AS retweeter_id,
			ru.username AS retweeter_username,
			ru.avatar_url AS retweeter_avatar_url,
			rt.created_at AS retweeted_at,
			p.post_id,
			p.author_id,
			p.content,
			p.created_at,
			au.username AS author_username,
			au.avatar_url AS author_avatar_url,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS like_count,
			EXISTS (
				SELECT 1 FROM likes l2
				WHERE l2.post_id = p.post_id AND l2.user_id = ?
			) AS liked_by_me,
			(SELECT COUNT(*) FROM retweets r2 WHERE r2.post_id = p.post_id) AS retweet_count,
			EXISTS (
				SELECT 1 FROM retweets r3
				WHERE r3.post_id = p.post_id AND r3.user_id = ?
			) AS retweeted_by_me
		FROM retweets rt
		JOIN users ru ON ru.user_id = rt.user_id
		JOIN posts p ON p.post_id = rt.post_id
		JOIN users au ON au.user_id = p.author_id
		WHERE rt.user_id IN (?)
		ORDER BY rt.created_at DESC`,
		viewerID, viewerID, userIDs)
	if err != nil {
		return nil, fmt.Errorf("ошибка при сборке запроса ретвитов: %w", err)
	}

	err = r.db.SelectContext(ctx, &retweets, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ретвитов подписок: %w", err)
	}

	return retweets, nil
}
