package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"chirp/internal/config"
	"chirp/internal/session"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func sessionConfig() *config.Config {
	return &config.Config{
		Session: config.Session{
			CookieName: "chirp_sid",
			TTL:        time.Hour,
		},
	}
}

func TestSessionMiddleware(t *testing.T) {
	echoUserID := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value("userID").(string)
		w.Write([]byte(userID))
	})

	t.Run("Публичный путь проходит без cookie", func(t *testing.T) {
		store := new(mockStore)
		handler := SessionMiddleware(store, sessionConfig())(echoUserID)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Запрос без cookie отклоняется", func(t *testing.T) {
		store := new(mockStore)
		handler := SessionMiddleware(store, sessionConfig())(echoUserID)

		req := httptest.NewRequest(http.MethodGet, "/api/feed/for-you", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Неизвестная сессия отклоняется", func(t *testing.T) {
		store := new(mockStore)
		store.On("Get", mock.Anything, "stale").Return("", session.ErrNoSession)

		handler := SessionMiddleware(store, sessionConfig())(echoUserID)

		req := httptest.NewRequest(http.MethodGet, "/api/feed/for-you", nil)
		req.AddCookie(&http.Cookie{Name: "chirp_sid", Value: "stale"})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Валидная сессия кладет userID в контекст", func(t *testing.T) {
		store := new(mockStore)
		store.On("Get", mock.Anything, "sess-1").Return("u1", nil)

		handler := SessionMiddleware(store, sessionConfig())(echoUserID)

		req := httptest.NewRequest(http.MethodGet, "/api/feed/for-you", nil)
		req.AddCookie(&http.Cookie{Name: "chirp_sid", Value: "sess-1"})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u1", rr.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Preflight завершается сразу", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Обычный запрос идет дальше", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}
