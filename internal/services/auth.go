package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/types"
	"github.com/senxilab/senxi-backend/internal/utils"
)

var (
	ErrInvalidPhone        = errors.New("手机号格式不正确")
	ErrInvalidCode         = errors.New("验证码错误或已过期")
	ErrInvalidCredentials  = errors.New("手机号或密码错误")
	ErrWeakPassword        = errors.New("密码长度不能少于6位")
	ErrInvalidState        = errors.New("无效的认证请求")
	ErrPlatformMismatch    = errors.New("认证平台不匹配")
	ErrUnsupportedPlatform = errors.New("不支持的登录方式")
	ErrInvalidToken        = errors.New("invalid token")
)

const (
	codeTTL  = 5 * time.Minute
	stateTTL = 10 * time.Minute
	tokenTTL = 7 * 24 * time.Hour
)

// TTLStore is the expiring key-value storage the auth flows need for
// verification codes and OAuth state tokens. The redis client satisfies it.
type TTLStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GetDel(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

type AuthService interface {
	SendVerificationCode(ctx context.Context, phone string) (string, error)
	LoginWithPhone(ctx context.Context, phone, code string) (*types.User, string, error)
	LoginWithPassword(ctx context.Context, phone, password string) (*types.User, string, error)
	SetPassword(ctx context.Context, userID uuid.UUID, password string) error
	OAuthURL(ctx context.Context, platform, redirectURI string) (string, string, error)
	OAuthCallback(ctx context.Context, platform, code, state string) (*types.User, string, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	ParseToken(tokenString string) (uuid.UUID, error)
}

type oauthConfig struct {
	AuthURL string
	AppID   string
	Scope   string
}

type authService struct {
	userRepo   repos.UserRepo
	codeStore  TTLStore
	stateStore TTLStore
	jwtSecret  []byte
	oauth      map[string]oauthConfig
	log        *logger.Logger
}

func NewAuthService(userRepo repos.UserRepo, codeStore, stateStore TTLStore, jwtSecret string, baseLog *logger.Logger) AuthService {
	svcLog := baseLog.With("service", "AuthService")
	return &authService{
		userRepo:   userRepo,
		codeStore:  codeStore,
		stateStore: stateStore,
		jwtSecret:  []byte(jwtSecret),
		oauth: map[string]oauthConfig{
			"wechat": {
				AuthURL: "https://open.weixin.qq.com/connect/qrconnect",
				AppID:   utils.GetEnv("WECHAT_APP_ID", "YOUR_WECHAT_APP_ID", svcLog),
				Scope:   "snsapi_login",
			},
			"qq": {
				AuthURL: "https://graph.qq.com/oauth2.0/authorize",
				AppID:   utils.GetEnv("QQ_APP_ID", "YOUR_QQ_APP_ID", svcLog),
				Scope:   "get_user_info",
			},
			"github": {
				AuthURL: "https://github.com/login/oauth/authorize",
				AppID:   utils.GetEnv("GITHUB_CLIENT_ID", "YOUR_GITHUB_CLIENT_ID", svcLog),
				Scope:   "read:user",
			},
		},
		log: svcLog,
	}
}

// SendVerificationCode stores a fresh 6-digit code under the phone number
// and returns it. There is no SMS gateway; the code travels back in the
// response for demo purposes.
func (as *authService) SendVerificationCode(ctx context.Context, phone string) (string, error) {
	if !utils.ValidPhone(phone) {
		return "", ErrInvalidPhone
	}
	code := utils.RandomCode(6)
	if err := as.codeStore.Set(ctx, phone, code, codeTTL); err != nil {
		return "", err
	}
	as.log.Debug("Verification code issued", "phone", phone, "code", code)
	return code, nil
}

func (as *authService) LoginWithPhone(ctx context.Context, phone, code string) (*types.User, string, error) {
	stored, err := as.codeStore.GetDel(ctx, phone)
	if err != nil || stored != code {
		return nil, "", ErrInvalidCode
	}

	user, err := as.userRepo.GetByPhone(ctx, nil, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &types.User{
			ID:       uuid.New(),
			Phone:    &phone,
			Nickname: "用户" + phone[len(phone)-4:],
			Avatar:   "/static/images/default-avatar.png",
			AuthType: types.AuthTypePhone,
			Level:    1,
		}
		if err := as.userRepo.Create(ctx, nil, user); err != nil {
			return nil, "", err
		}
		as.log.Info("Registered new user", "user_id", user.ID, "auth_type", user.AuthType)
	} else if err != nil {
		return nil, "", err
	}

	token, err := as.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginWithPassword signs in an existing account by phone and password.
// Accounts without a password set cannot use this path.
func (as *authService) LoginWithPassword(ctx context.Context, phone, password string) (*types.User, string, error) {
	user, err := as.userRepo.GetByPhone(ctx, nil, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if user.Password == "" {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SetPassword hashes and stores a password for the account, enabling
// password login alongside the code flow.
func (as *authService) SetPassword(ctx context.Context, userID uuid.UUID, password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	user, err := as.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return as.userRepo.Update(ctx, nil, user)
}

// OAuthURL builds the provider authorization URL with a single-use state
// token bound to the platform.
func (as *authService) OAuthURL(ctx context.Context, platform, redirectURI string) (string, string, error) {
	config, ok := as.oauth[platform]
	if !ok {
		return "", "", ErrUnsupportedPlatform
	}

	state := utils.RandomToken(32)
	if err := as.stateStore.Set(ctx, state, platform, stateTTL); err != nil {
		return "", "", err
	}

	var authURL string
	switch platform {
	case "wechat":
		authURL = fmt.Sprintf("%s?appid=%s&redirect_uri=%s&response_type=code&scope=%s&state=%s#wechat_redirect",
			config.AuthURL, config.AppID, url.QueryEscape(redirectURI), config.Scope, state)
	case "qq":
		authURL = fmt.Sprintf("%s?response_type=code&client_id=%s&redirect_uri=%s&state=%s&scope=%s",
			config.AuthURL, config.AppID, url.QueryEscape(redirectURI), state, config.Scope)
	case "github":
		authURL = fmt.Sprintf("%s?client_id=%s&redirect_uri=%s&state=%s&scope=%s",
			config.AuthURL, config.AppID, url.QueryEscape(redirectURI), state, config.Scope)
	}
	return authURL, state, nil
}

// OAuthCallback validates the state, derives a deterministic mock identity
// from the authorization code and signs the user in, registering on first
// contact. No provider API is called.
func (as *authService) OAuthCallback(ctx context.Context, platform, code, state string) (*types.User, string, error) {
	if _, ok := as.oauth[platform]; !ok {
		return nil, "", ErrUnsupportedPlatform
	}

	storedPlatform, err := as.stateStore.GetDel(ctx, state)
	if err != nil {
		return nil, "", ErrInvalidState
	}
	if storedPlatform != platform {
		return nil, "", ErrPlatformMismatch
	}

	sum := md5.Sum([]byte(code))
	openID := hex.EncodeToString(sum[:])[:16]

	user, err := as.findOAuthUser(ctx, platform, openID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = as.newOAuthUser(platform, openID)
		if err := as.userRepo.Create(ctx, nil, user); err != nil {
			return nil, "", err
		}
		as.log.Info("Registered new user", "user_id", user.ID, "auth_type", platform)
	} else if err != nil {
		return nil, "", err
	}

	token, err := as.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (as *authService) findOAuthUser(ctx context.Context, platform, openID string) (*types.User, error) {
	switch platform {
	case "wechat":
		return as.userRepo.GetByWechatOpenID(ctx, nil, openID)
	case "qq":
		return as.userRepo.GetByQQOpenID(ctx, nil, openID)
	default:
		return as.userRepo.GetByGithubID(ctx, nil, openID)
	}
}

func (as *authService) newOAuthUser(platform, openID string) *types.User {
	avatars := map[string]string{
		"wechat": "https://thirdwx.qlogo.cn/mmopen/vi_32/default/0",
		"qq":     "https://q.qlogo.cn/headimg_dl?dst_uin=10000&spec=640",
		"github": "https://avatars.githubusercontent.com/u/0",
	}
	nicknames := map[string]string{
		"wechat": "Wechat用户",
		"qq":     "Qq用户",
		"github": "Github用户",
	}

	user := &types.User{
		ID:       uuid.New(),
		Nickname: nicknames[platform],
		Avatar:   avatars[platform],
		AuthType: platform,
		Level:    1,
	}
	switch platform {
	case "wechat":
		user.WechatOpenID = &openID
	case "qq":
		user.QQOpenID = &openID
	case "github":
		user.GithubID = &openID
	}
	return user
}

func (as *authService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return as.userRepo.GetByID(ctx, nil, userID)
}

func (as *authService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(as.jwtSecret)
}

func (as *authService) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return as.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
