package service

import (
	"context"
	"errors"

	"chirp/internal/models"
	"chirp/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID, content string) (*models.Post, error)
	GetPost(ctx context.Context, viewerID, postID string) (*models.PostWithMeta, error)
	DeletePost(ctx context.Context, viewerID, postID string) error
	Like(ctx context.Context, viewerID, postID string) error
	Unlike(ctx context.Context, viewerID, postID string) error
	Retweet(ctx context.Context, viewerID, postID string) error
	Unretweet(ctx context.Context, viewerID, postID string) error
	CreateReply(ctx context.Context, authorID, postID, content string) (*models.Reply, error)
	ListReplies(ctx context.Context, viewerID, postID string) ([]models.ReplyWithAuthor, error)
	DeleteReply(ctx context.Context, viewerID, replyID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	replyRepo repository.ReplyRepository
	relRepo   repository.RelationshipRepository
}

func NewPostService(postRepo repository.PostRepository, replyRepo repository.ReplyRepository, relRepo repository.RelationshipRepository) PostService {
	return &postService{
		postRepo:  postRepo,
		replyRepo: replyRepo,
		relRepo:   relRepo,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID, content string) (*models.Post, error) {
	return s.postRepo.Create(ctx, authorID, content)
}

// GetPost скрывает пост заблокированного автора как несуществующий
func (s *postService) GetPost(ctx context.Context, viewerID, postID string) (*models.PostWithMeta, error) {
	post, err := s.postRepo.GetWithMeta(ctx, viewerID, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	blockedSet, err := s.relRepo.BlockedSet(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	if _, blocked := blockedSet[post.AuthorID]; blocked {
		return nil, ErrNotFound
	}

	return post, nil
}

// DeletePost: сначала существование (404), потом владение (403)
func (s *postService) DeletePost(ctx context.Context, viewerID, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if post.AuthorID != viewerID {
		return ErrForbidden
	}

	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) requirePost(ctx context.Context, postID string) error {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	return nil
}

func (s *postService) Like(ctx context.Context, viewerID, postID string) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}

	return s.postRepo.Like(ctx, viewerID, postID)
}

// Unlike идемпотентен: удаление несуществующего лайка тоже успех
func (s *postService) Unlike(ctx context.Context, viewerID, postID string) error {
	return s.postRepo.Unlike(ctx, viewerID, postID)
}

func (s *postService) Retweet(ctx context.Context, viewerID, postID string) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}

	return s.postRepo.Retweet(ctx, viewerID, postID)
}

func (s *postService) Unretweet(ctx context.Context, viewerID, postID string) error {
	return s.postRepo.Unretweet(ctx, viewerID, postID)
}

func (s *postService) CreateReply(ctx context.Context, authorID, postID, content string) (*models.Reply, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	return s.replyRepo.Create(ctx, authorID, postID, content)
}

func (s *postService) ListReplies(ctx context.Context, viewerID, postID string) ([]models.ReplyWithAuthor, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	blockedSet, err := s.relRepo.BlockedSet(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	replies, err := s.replyRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	visible := make([]models.ReplyWithAuthor, 0, len(replies))
	for _, reply := range replies {
		if _, blocked := blockedSet[reply.AuthorID]; blocked {
			continue
		}
		visible = append(visible, reply)
	}

	return visible, nil
}

func (s *postService) DeleteReply(ctx context.Context, viewerID, replyID string) error {
	reply, err := s.replyRepo.GetByID(ctx, replyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if reply.AuthorID != viewerID {
		return ErrForbidden
	}

	return s.replyRepo.Delete(ctx, replyID)
}
