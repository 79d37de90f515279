package services_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/repos/testutil"
	"github.com/senxilab/senxi-backend/internal/services"
)

// fakeStore is an in-memory stand-in for the redis-backed TTL store.
// Expiry is ignored; tests exercise presence and single-use semantics.
type fakeStore struct {
	mu sync.Mutex
	m  map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{m: make(map[string]string)}
}

var errFakeStoreMiss = errors.New("key not found")

func (fs *fakeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.m[key] = value
	return nil
}

func (fs *fakeStore) Get(ctx context.Context, key string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	value, ok := fs.m[key]
	if !ok {
		return "", errFakeStoreMiss
	}
	return value, nil
}

func (fs *fakeStore) GetDel(ctx context.Context, key string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	value, ok := fs.m[key]
	if !ok {
		return "", errFakeStoreMiss
	}
	delete(fs.m, key)
	return value, nil
}

func (fs *fakeStore) Del(ctx context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.m, key)
	return nil
}

func newTestLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("dev")
	if err != nil {
		tb.Fatalf("new logger: %v", err)
	}
	return log
}

func newAuthService(t *testing.T) services.AuthService {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := newTestLogger(t)
	userRepo := repos.NewUserRepo(db, log)
	return services.NewAuthService(userRepo, newFakeStore(), newFakeStore(), "test-secret", log)
}

func TestSendVerificationCodeRejectsBadPhone(t *testing.T) {
	svc := newAuthService(t)
	cases := []string{"", "12345", "23800138000", "1380013800a"}
	for _, phone := range cases {
		if _, err := svc.SendVerificationCode(context.Background(), phone); !errors.Is(err, services.ErrInvalidPhone) {
			t.Errorf("SendVerificationCode(%q) err = %v, want ErrInvalidPhone", phone, err)
		}
	}
}

func TestPhoneLoginRegistersAndIssuesToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	code, err := svc.SendVerificationCode(ctx, "13800138000")
	if err != nil {
		t.Fatalf("send code: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("code %q is not 6 digits", code)
	}

	user, token, err := svc.LoginWithPhone(ctx, "13800138000", code)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Nickname != "用户8000" {
		t.Fatalf("nickname = %q, want 用户8000", user.Nickname)
	}
	if user.AuthType != "phone" {
		t.Fatalf("auth type = %q", user.AuthType)
	}

	parsed, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if parsed != user.ID {
		t.Fatalf("token resolves to %s, want %s", parsed, user.ID)
	}
}

func TestPhoneLoginReturnsExistingUser(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	code, _ := svc.SendVerificationCode(ctx, "13800138000")
	first, _, err := svc.LoginWithPhone(ctx, "13800138000", code)
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	code, _ = svc.SendVerificationCode(ctx, "13800138000")
	second, _, err := svc.LoginWithPhone(ctx, "13800138000", code)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.ID != second.ID {
		t.Fatal("second login created a new user")
	}
}

func TestPhoneLoginCodeIsSingleUse(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	code, _ := svc.SendVerificationCode(ctx, "13800138000")
	if _, _, err := svc.LoginWithPhone(ctx, "13800138000", code); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, err := svc.LoginWithPhone(ctx, "13800138000", code); !errors.Is(err, services.ErrInvalidCode) {
		t.Fatalf("replayed code err = %v, want ErrInvalidCode", err)
	}
}

func TestPhoneLoginWrongCode(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.LoginWithPhone(ctx, "13800138000", "000000"); !errors.Is(err, services.ErrInvalidCode) {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
}

func TestPasswordLoginLifecycle(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	code, _ := svc.SendVerificationCode(ctx, "13800138000")
	user, _, err := svc.LoginWithPhone(ctx, "13800138000", code)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// No password set yet.
	if _, _, err := svc.LoginWithPassword(ctx, "13800138000", "secret123"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("passwordless account err = %v, want ErrInvalidCredentials", err)
	}

	if err := svc.SetPassword(ctx, user.ID, "12345"); !errors.Is(err, services.ErrWeakPassword) {
		t.Fatalf("short password err = %v, want ErrWeakPassword", err)
	}
	if err := svc.SetPassword(ctx, user.ID, "secret123"); err != nil {
		t.Fatalf("set password: %v", err)
	}

	logged, token, err := svc.LoginWithPassword(ctx, "13800138000", "secret123")
	if err != nil {
		t.Fatalf("password login: %v", err)
	}
	if logged.ID != user.ID || token == "" {
		t.Fatalf("login result = %v token=%q", logged.ID, token)
	}

	if _, _, err := svc.LoginWithPassword(ctx, "13800138000", "wrong-pass"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.LoginWithPassword(ctx, "13900000000", "secret123"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("unknown phone err = %v, want ErrInvalidCredentials", err)
	}
}

func TestOAuthURLUnsupportedPlatform(t *testing.T) {
	svc := newAuthService(t)
	if _, _, err := svc.OAuthURL(context.Background(), "weibo", "http://localhost/cb"); !errors.Is(err, services.ErrUnsupportedPlatform) {
		t.Fatalf("err = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestOAuthCallbackFlow(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	authURL, state, err := svc.OAuthURL(ctx, "github", "http://localhost/cb")
	if err != nil {
		t.Fatalf("oauth url: %v", err)
	}
	if !strings.Contains(authURL, "state="+state) {
		t.Fatalf("url missing state: %s", authURL)
	}

	user, token, err := svc.OAuthCallback(ctx, "github", "auth-code-1", state)
	if err != nil {
		t.Fatalf("callback: %v", err)
	}
	if user.AuthType != "github" || user.GithubID == nil {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token == "" {
		t.Fatal("no token issued")
	}

	// Same authorization code maps to the same mock identity.
	_, state2, err := svc.OAuthURL(ctx, "github", "http://localhost/cb")
	if err != nil {
		t.Fatalf("second oauth url: %v", err)
	}
	again, _, err := svc.OAuthCallback(ctx, "github", "auth-code-1", state2)
	if err != nil {
		t.Fatalf("second callback: %v", err)
	}
	if again.ID != user.ID {
		t.Fatal("same code produced a different user")
	}
}

func TestOAuthCallbackStateChecks(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.OAuthCallback(ctx, "github", "code", "bogus-state"); !errors.Is(err, services.ErrInvalidState) {
		t.Fatalf("unknown state err = %v, want ErrInvalidState", err)
	}

	_, state, err := svc.OAuthURL(ctx, "wechat", "http://localhost/cb")
	if err != nil {
		t.Fatalf("oauth url: %v", err)
	}
	if _, _, err := svc.OAuthCallback(ctx, "qq", "code", state); !errors.Is(err, services.ErrPlatformMismatch) {
		t.Fatalf("cross-platform state err = %v, want ErrPlatformMismatch", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)
	if _, err := svc.ParseToken("not.a.token"); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
