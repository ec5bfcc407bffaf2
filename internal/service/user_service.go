package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/storage"
)

type UserService interface {
	GetProfile(ctx context.Context, viewerID, userID string) (*models.Profile, error)
	Follow(ctx context.Context, viewerID, targetID string) error
	Unfollow(ctx context.Context, viewerID, targetID string) error
	Block(ctx context.Context, viewerID, targetID string) error
	Unblock(ctx context.Context, viewerID, targetID string) error
	UpdateProfile(ctx context.Context, userID string, username, bio *string) (*models.Account, error)
	UpdateAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.Account, error)
}

type userService struct {
	userRepo repository.UserRepository
	relRepo  repository.RelationshipRepository
	storage  storage.Storage
}

func NewUserService(userRepo repository.UserRepository, relRepo repository.RelationshipRepository, storage storage.Storage) UserService {
	return &userService{
		userRepo: userRepo,
		relRepo:  relRepo,
		storage:  storage,
	}
}

func (s *userService) GetProfile(ctx context.Context, viewerID, userID string) (*models.Profile, error) {
	profile, err := s.userRepo.GetProfile(ctx, viewerID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return profile, nil
}

// checkTarget - общая проверка для follow/block: не сам себя и цель существует
func (s *userService) checkTarget(ctx context.Context, viewerID, targetID string) error {
	if viewerID == targetID {
		return ErrSelfTarget
	}

	exists, err := s.userRepo.Exists(ctx, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	return nil
}

func (s *userService) Follow(ctx context.Context, viewerID, targetID string) error {
	if err := s.checkTarget(ctx, viewerID, targetID); err != nil {
		return err
	}

	return s.relRepo.Follow(ctx, viewerID, targetID)
}

// Unfollow идемпотентен и не проверяет существование цели
func (s *userService) Unfollow(ctx context.Context, viewerID, targetID string) error {
	return s.relRepo.Unfollow(ctx, viewerID, targetID)
}

func (s *userService) Block(ctx context.Context, viewerID, targetID string) error {
	if err := s.checkTarget(ctx, viewerID, targetID); err != nil {
		return err
	}

	return s.relRepo.Block(ctx, viewerID, targetID)
}

func (s *userService) Unblock(ctx context.Context, viewerID, targetID string) error {
	return s.relRepo.Unblock(ctx, viewerID, targetID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, username, bio *string) (*models.Account, error) {
	current, err := s.userRepo.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// уникальность проверяется только если имя реально меняется
	if username != nil && !strings.EqualFold(*username, current.Username) {
		taken, err := s.userRepo.UsernameTaken(ctx, *username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, username, bio); err != nil {
		return nil, err
	}

	return s.userRepo.GetAccount(ctx, userID)
}

func (s *userService) UpdateAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.Account, error) {
	_, avatarURL, err := s.storage.UploadAvatar(ctx, userID, fileName, file, size)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.userRepo.GetAccount(ctx, userID)
}
