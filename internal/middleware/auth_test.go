package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/middleware"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/repos/testutil"
	"github.com/senxilab/senxi-backend/internal/requestdata"
	"github.com/senxilab/senxi-backend/internal/services"
)

type memoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{m: make(map[string]string)}
}

func (ms *memoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.m[key] = value
	return nil
}

func (ms *memoryStore) Get(ctx context.Context, key string) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if value, ok := ms.m[key]; ok {
		return value, nil
	}
	return "", errors.New("key not found")
}

func (ms *memoryStore) GetDel(ctx context.Context, key string) (string, error) {
	value, err := ms.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return value, ms.Del(ctx, key)
}

func (ms *memoryStore) Del(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.m, key)
	return nil
}

func setupAuth(t *testing.T) (*gin.Engine, string, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	authService := services.NewAuthService(repos.NewUserRepo(db, log), newMemoryStore(), newMemoryStore(), "test-secret", log)

	ctx := context.Background()
	code, err := authService.SendVerificationCode(ctx, "13800138000")
	if err != nil {
		t.Fatalf("send code: %v", err)
	}
	user, token, err := authService.LoginWithPhone(ctx, "13800138000", code)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	am := middleware.NewAuthMiddleware(authService, log)
	router := gin.New()
	router.GET("/protected", am.RequireAuth(), func(c *gin.Context) {
		data := requestdata.GetRequestData(c.Request.Context())
		if data == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no request data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": data.UserID.String()})
	})
	router.GET("/open", am.OptionalAuth(), func(c *gin.Context) {
		data := requestdata.GetRequestData(c.Request.Context())
		authed := data != nil
		c.JSON(http.StatusOK, gin.H{"authenticated": authed})
	})
	return router, token, user.ID
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router, _, _ := setupAuth(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	router, _, _ := setupAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	router, token, userID := setupAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, userID.String()) {
		t.Fatalf("body %s missing user id %s", body, userID)
	}
}

func TestRequireAuthAcceptsQueryToken(t *testing.T) {
	router, token, _ := setupAuth(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	router, token, _ := setupAuth(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"authenticated":false`) {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `"authenticated":true`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}
