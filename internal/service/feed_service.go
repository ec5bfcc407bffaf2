package service

import (
	"context"
	"sort"

	"chirp/internal/config"
	"chirp/internal/models"
	"chirp/internal/repository"
)

type FeedService interface {
	ForYou(ctx context.Context, viewerID string) ([]models.PostWithMeta, error)
	Following(ctx context.Context, viewerID string) ([]models.FeedItem, error)
}

type feedService struct {
	feedRepo repository.FeedRepository
	relRepo  repository.RelationshipRepository
	limit    int
}

func NewFeedService(feedRepo repository.FeedRepository, relRepo repository.RelationshipRepository, cfg *config.Config) FeedService {
	limit := cfg.FeedLimit
	if limit <= 0 {
		limit = 20
	}

	return &feedService{
		feedRepo: feedRepo,
		relRepo:  relRepo,
		limit:    limit,
	}
}

// ForYou - глобальная лента: все посты, новые первыми, без постов
// заблокированных авторов. Лимит применяется ПОСЛЕ фильтрации, поэтому
// сильно заблокированная лента не добивается обратно до полного размера.
func (s *feedService) ForYou(ctx context.Context, viewerID string) ([]models.PostWithMeta, error) {
	blockedSet, err := s.relRepo.BlockedSet(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.feedRepo.GlobalPosts(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	visible := make([]models.PostWithMeta, 0, len(posts))
	for _, post := range posts {
		if _, blocked := blockedSet[post.AuthorID]; blocked {
			continue
		}

		visible = append(visible, post)
		if len(visible) == s.limit {
			break
		}
	}

	return visible, nil
}

// Following - лента подписок: оригинальные посты подписанных авторов плюс
// ретвиты, сделанные подписанными пользователями (в том числе чужих постов).
// У постов и ретвитов разные якоря свежести, поэтому два независимых запроса
// сводятся в приложении: пометить общим ключом сортировки, слить,
// отсортировать по убыванию, обрезать.
func (s *feedService) Following(ctx context.Context, viewerID string) ([]models.FeedItem, error) {
	followedIDs, err := s.relRepo.FollowedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	// no follows - no content queries at all
	if len(followedIDs) == 0 {
		return []models.FeedItem{}, nil
	}

	blockedSet, err := s.relRepo.BlockedSet(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.feedRepo.PostsByAuthors(ctx, viewerID, followedIDs)
	if err != nil {
		return nil, err
	}

	retweets, err := s.feedRepo.RetweetsByUsers(ctx, viewerID, followedIDs)
	if err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, 0, len(posts)+len(retweets))

	for _, post := range posts {
		if _, blocked := blockedSet[post.AuthorID]; blocked {
			continue
		}

		items = append(items, models.FeedItem{
			Type: models.FeedItemPost,
			Post: models.FeedPost{
				ID:            post.PostID,
				AuthorID:      post.AuthorID,
				Content:       post.Content,
				CreatedAt:     post.CreatedAt,
				LikeCount:     post.LikeCount,
				LikedByMe:     post.LikedByMe,
				RetweetCount:  post.RetweetCount,
				RetweetedByMe: post.RetweetedByMe,
			},
			Author: models.FeedAuthor{
				ID:        post.AuthorID,
				Username:  post.Username,
				AvatarURL: post.AvatarURL,
			},
			SortTime: post.CreatedAt,
		})
	}

	for _, retweet := range retweets {
		// ретвит скрыт, если заблокирован ретвитер ИЛИ автор оригинала
		if _, blocked := blockedSet[retweet.RetweeterID]; blocked {
			continue
		}
		if _, blocked := blockedSet[retweet.AuthorID]; blocked {
			continue
		}

		retweetedAt := retweet.RetweetedAt
		items = append(items, models.FeedItem{
			Type:        models.FeedItemRetweet,
			RetweetedAt: &retweetedAt,
			Retweeter: &models.FeedAuthor{
				ID:        retweet.RetweeterID,
				Username:  retweet.RetweeterUsername,
				AvatarURL: retweet.RetweeterAvatarURL,
			},
			Post: models.FeedPost{
				ID:            retweet.PostID,
				AuthorID:      retweet.AuthorID,
				Content:       retweet.Content,
				CreatedAt:     retweet.CreatedAt,
				LikeCount:     retweet.LikeCount,
				LikedByMe:     retweet.LikedByMe,
				RetweetCount:  retweet.RetweetCount,
				RetweetedByMe: retweet.RetweetedByMe,
			},
			Author: models.FeedAuthor{
				ID:        retweet.AuthorID,
				Username:  retweet.AuthorUsername,
				AvatarURL: retweet.AuthorAvatarURL,
			},
			SortTime: retweet.RetweetedAt,
		})
	}

	// порядок элементов с одинаковым временем не определен
	sort.Slice(items, func(i, j int) bool {
		return items[i].SortTime.After(items[j].SortTime)
	})

	if len(items) > s.limit {
		items = items[:s.limit]
	}

	return items, nil
}
