package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"chirp/internal/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, password, email string) (*models.User, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, viewerID, userID string) (*models.Profile, error) {
	args := m.Called(ctx, viewerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) Follow(ctx context.Context, viewerID, targetID string) error {
	args := m.Called(ctx, viewerID, targetID)
	return args.Error(0)
}

func (m *MockUserService) Unfollow(ctx context.Context, viewerID, targetID string) error {
	args := m.Called(ctx, viewerID, targetID)
	return args.Error(0)
}

func (m *MockUserService) Block(ctx context.Context, viewerID, targetID string) error {
	args := m.Called(ctx, viewerID, targetID)
	return args.Error(0)
}

func (m *MockUserService) Unblock(ctx context.Context, viewerID, targetID string) error {
	args := m.Called(ctx, viewerID, targetID)
	return args.Error(0)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, username, bio *string) (*models.Account, error) {
	args := m.Called(ctx, userID, username, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (*models.Account, error) {
	args := m.Called(ctx, userID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID, content string) (*models.Post, error) {
	args := m.Called(ctx, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, viewerID, postID string) (*models.PostWithMeta, error) {
	args := m.Called(ctx, viewerID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostWithMeta), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, viewerID, postID string) error {
	args := m.Called(ctx, viewerID, postID)
	return args.Error(0)
}

func (m *MockPostService) Like(ctx context.Context, viewerID, postID string) error {
	args := m.Called(ctx, viewerID, postID)
	return args.Error(0)
}

func (m *MockPostService) Unlike(ctx context.Context, viewerID, postID string) error {
	args := m.Called(ctx, viewerID, postID)
	return args.Error(0)
}

func (m *MockPostService) Retweet(ctx context.Context, viewerID, postID string) error {
	args := m.Called(ctx, viewerID, postID)
	return args.Error(0)
}

func (m *MockPostService) Unretweet(ctx context.Context, viewerID, postID string) error {
	args := m.Called(ctx, viewerID, postID)
	return args.Error(0)
}

func (m *MockPostService) CreateReply(ctx context.Context, authorID, postID, content string) (*models.Reply, error) {
	args := m.Called(ctx, authorID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reply), args.Error(1)
}

func (m *MockPostService) ListReplies(ctx context.Context, viewerID, postID string) ([]models.ReplyWithAuthor, error) {
	args := m.Called(ctx, viewerID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReplyWithAuthor), args.Error(1)
}

func (m *MockPostService) DeleteReply(ctx context.Context, viewerID, replyID string) error {
	args := m.Called(ctx, viewerID, replyID)
	return args.Error(0)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) ForYou(ctx context.Context, viewerID string) ([]models.PostWithMeta, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostWithMeta), args.Error(1)
}

func (m *MockFeedService) Following(ctx context.Context, viewerID string) ([]models.FeedItem, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedItem), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
