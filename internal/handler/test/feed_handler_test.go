package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"chirp/internal/models"
)

func TestForYouFeedHandler(t *testing.T) {
	t.Run("Глобальная лента", func(t *testing.T) {
		mockFeed := new(MockFeedService)
		mockFeed.On("ForYou", mock.Anything, "viewer").
			Return([]models.PostWithMeta{
				{PostID: "p1", AuthorID: "alice", Content: "hi", CreatedAt: time.Now()},
			}, nil)

		handler := newHandlers(new(MockAuthService), new(MockUserService), new(MockPostService), mockFeed, new(MockSessionStore))

		rr := httptest.NewRecorder()
		handler.ForYouFeed(rr, authedRequest(http.MethodGet, "/api/feed/for-you", nil, "viewer"))

		assert.Equal(t, http.StatusOK, rr.Code)

		var response []map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Len(t, response, 1)
		assert.Equal(t, "p1", response[0]["id"])
	})

	t.Run("Без сессии 401", func(t *testing.T) {
		handler := newHandlers(new(MockAuthService), new(MockUserService), new(MockPostService), new(MockFeedService), new(MockSessionStore))

		rr := httptest.NewRecorder()
		handler.ForYouFeed(rr, httptest.NewRequest(http.MethodGet, "/api/feed/for-you", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestFollowingFeedHandler(t *testing.T) {
	t.Run("Ретвит сериализуется с ретвитером, пост без него", func(t *testing.T) {
		mockFeed := new(MockFeedService)
		now := time.Now()

		mockFeed.On("Following", mock.Anything, "viewer").
			Return([]models.FeedItem{
				{
					Type:   models.FeedItemPost,
					Post:   models.FeedPost{ID: "p1", AuthorID: "alice", CreatedAt: now},
					Author: models.FeedAuthor{ID: "alice", Username: "alice"},
				},
				{
					Type:        models.FeedItemRetweet,
					RetweetedAt: &now,
					Retweeter:   &models.FeedAuthor{ID: "bob", Username: "bob"},
					Post:        models.FeedPost{ID: "p2", AuthorID: "charlie"},
					Author:      models.FeedAuthor{ID: "charlie", Username: "charlie"},
				},
			}, nil)

		handler := newHandlers(new(MockAuthService), new(MockUserService), new(MockPostService), mockFeed, new(MockSessionStore))

		rr := httptest.NewRecorder()
		handler.FollowingFeed(rr, authedRequest(http.MethodGet, "/api/feed/following", nil, "viewer"))

		assert.Equal(t, http.StatusOK, rr.Code)

		var response []map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Len(t, response, 2)

		assert.Equal(t, "post", response[0]["type"])
		assert.NotContains(t, response[0], "retweeter")
		assert.NotContains(t, response[0], "retweeted_at")

		assert.Equal(t, "retweet", response[1]["type"])
		assert.Contains(t, response[1], "retweeter")
		assert.Contains(t, response[1], "retweeted_at")
	})

	t.Run("Пустая лента это массив, а не null", func(t *testing.T) {
		mockFeed := new(MockFeedService)
		mockFeed.On("Following", mock.Anything, "viewer").Return([]models.FeedItem{}, nil)

		handler := newHandlers(new(MockAuthService), new(MockUserService), new(MockPostService), mockFeed, new(MockSessionStore))

		rr := httptest.NewRecorder()
		handler.FollowingFeed(rr, authedRequest(http.MethodGet, "/api/feed/following", nil, "viewer"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})
}
