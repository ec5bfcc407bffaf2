package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"chirp/internal/models"
)

// ErrNotFound - запрошенная строка не существует
var ErrNotFound = errors.New("запись не найдена")

// ErrWrongPassword - пароль не совпадает с сохраненным хешем
var ErrWrongPassword = errors.New("неверный пароль")

type UserRepository interface {
	CreateUser(ctx context.Context, username, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, username, bio *string) error
	UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
	GetProfile(ctx context.Context, viewerID, userID string) (*models.Profile, error)
	Exists(ctx context.Context, userID string) (bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, authorID, content string) (*models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetWithMeta(ctx context.Context, viewerID, postID string) (*models.PostWithMeta, error)
	Delete(ctx context.Context, postID string) error
	Exists(ctx context.Context, postID string) (bool, error)
	Like(ctx context.Context, userID, postID string) error
	Unlike(ctx context.Context, userID, postID string) error
	Retweet(ctx context.Context, userID, postID string) error
	Unretweet(ctx context.Context, userID, postID string) error
}

type ReplyRepository interface {
	Create(ctx context.Context, authorID, parentPostID, content string) (*models.Reply, error)
	GetByID(ctx context.Context, replyID string) (*models.Reply, error)
	ListByPost(ctx context.Context, postID string) ([]models.ReplyWithAuthor, error)
	Delete(ctx context.Context, replyID string) error
}

type RelationshipRepository interface {
	BlockedSet(ctx context.Context, viewerID string) (map[string]struct{}, error)
	FollowedIDs(ctx context.Context, viewerID string) ([]string, error)
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	Block(ctx context.Context, blockerID, blockedID string) error
	Unblock(ctx context.Context, blockerID, blockedID string) error
}

type FeedRepository interface {
	GlobalPosts(ctx context.Context, viewerID string) ([]models.PostWithMeta, error)
	PostsByAuthors(ctx context.Context, viewerID string, authorIDs []string) ([]models.PostWithMeta, error)
	RetweetsByUsers(ctx context.Context, viewerID string, userIDs []string) ([]models.RetweetWithMeta, error)
}

type TokenRepository interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (*models.PasswordResetToken, error)
	FindValid(ctx context.Context, token string) (*models.PasswordResetToken, error)
	Invalidate(ctx context.Context, token string) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User         UserRepository
	Post         PostRepository
	Reply        ReplyRepository
	Relationship RelationshipRepository
	Feed         FeedRepository
	Token        TokenRepository
	Tables       TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Post:         NewPostRepository(db),
		Reply:        NewReplyRepository(db),
		Relationship: NewRelationshipRepository(db),
		Feed:         NewFeedRepository(db),
		Token:        NewTokenRepository(db),
		Tables:       NewTablesRepository(db),
	}
}
