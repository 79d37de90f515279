package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/senxilab/senxi-backend/internal/catalog"
	"github.com/senxilab/senxi-backend/internal/guide"
	"github.com/senxilab/senxi-backend/internal/handlers"
	"github.com/senxilab/senxi-backend/internal/services"
)

type memoryStore struct {
	mu sync.Mutex
	m  map[string]string
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
	value, ok := ms.m[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return value, nil
}

func (ms *memoryStore) GetDel(ctx context.Context, key string) (string, error) {
	value, err := ms.Get(ctx, key)
	if err != nil {
		return "", err
	}
	ms.mu.Lock()
	delete(ms.m, key)
	ms.mu.Unlock()
	return value, nil
}

func (ms *memoryStore) Del(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.m, key)
	return nil
}

func newGuideRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := newTestLogger(t)
	engine := guide.New(catalog.New())
	svc := services.NewGuideService(engine, &memoryStore{m: make(map[string]string)}, log)
	handler := handlers.NewGuideHandler(svc, engine, log)

	router := gin.New()
	group := router.Group("/api/guide")
	group.POST("/start", handler.Start)
	group.POST("/chat", handler.Chat)
	group.POST("/recommend", handler.Recommend)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGuideStartAndChat(t *testing.T) {
	router := newGuideRouter(t)

	w := postJSON(t, router, "/api/guide/start", "{}")
	if w.Code != http.StatusOK {
		t.Fatalf("start status = %d", w.Code)
	}
	var started struct {
		SessionID string `json:"session_id"`
		Type      string `json:"type"`
		NextStep  int    `json:"next_step"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("decode start: %v", err)
	}
	if started.SessionID == "" || started.Type != "welcome" || started.NextStep != 1 {
		t.Fatalf("start = %+v", started)
	}

	w = postJSON(t, router, "/api/guide/chat",
		`{"session_id":"`+started.SessionID+`","message":"30平米","step":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d, body = %s", w.Code, w.Body.String())
	}
	var reply guide.Reply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode chat: %v", err)
	}
	if reply.Step != 2 || reply.Progress != 28 {
		t.Fatalf("reply = %+v", reply)
	}
}

func TestGuideChatUnknownSession(t *testing.T) {
	router := newGuideRouter(t)

	w := postJSON(t, router, "/api/guide/chat", `{"session_id":"missing","message":"30","step":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGuideRecommendEndpoint(t *testing.T) {
	router := newGuideRouter(t)

	w := postJSON(t, router, "/api/guide/recommend", `{
		"profile": {
			"area": 30,
			"region": "north",
			"problems": ["pm25", "formaldehyde"],
			"users": ["general"],
			"space_type": "living",
			"budget": "standard"
		}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var recs []guide.Recommendation
	if err := json.Unmarshal(w.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) == 0 || len(recs) > 3 {
		t.Fatalf("got %d recommendations, want 1..3", len(recs))
	}
	if recs[0].Product.ID != "pro-01" {
		t.Fatalf("top recommendation = %s, want pro-01", recs[0].Product.ID)
	}
}
