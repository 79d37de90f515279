package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/requestdata"
	"github.com/senxilab/senxi-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	log         *logger.Logger
}

func NewAuthHandler(authService services.AuthService, baseLog *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         baseLog.With("handler", "AuthHandler"),
	}
}

// SendCode issues a verification code for the phone number. The code is
// echoed back because there is no SMS gateway behind this deployment.
func (ah *AuthHandler) SendCode(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	code, err := ah.authService.SendVerificationCode(c.Request.Context(), req.Phone)
	if errors.Is(err, services.ErrInvalidPhone) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ah.log.Error("Failed to send verification code", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "验证码发送失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "验证码已发送",
		"debug_code": code,
	})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	user, token, err := ah.authService.LoginWithPhone(c.Request.Context(), req.Phone, req.Code)
	if errors.Is(err, services.ErrInvalidCode) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ah.log.Error("Phone login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "登录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "登录成功",
		"user":    user,
		"token":   token,
	})
}

// PasswordLogin signs in by phone and password for accounts that set one.
func (ah *AuthHandler) PasswordLogin(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	user, token, err := ah.authService.LoginWithPassword(c.Request.Context(), req.Phone, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ah.log.Error("Password login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "登录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "登录成功",
		"user":    user,
		"token":   token,
	})
}

// SetPassword stores a password for the signed-in account.
func (ah *AuthHandler) SetPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	rd := requestdata.GetRequestData(c.Request.Context())
	err := ah.authService.SetPassword(c.Request.Context(), rd.UserID, req.Password)
	if errors.Is(err, services.ErrWeakPassword) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ah.log.Error("Failed to set password", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "密码设置失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "密码设置成功"})
}

// OAuthURL returns the provider authorization URL for the requested
// platform.
func (ah *AuthHandler) OAuthURL(c *gin.Context) {
	platform := c.Param("platform")
	redirectURI := c.Query("redirect_uri")

	authURL, state, err := ah.authService.OAuthURL(c.Request.Context(), platform, redirectURI)
	if errors.Is(err, services.ErrUnsupportedPlatform) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ah.log.Error("Failed to build oauth url", "platform", platform, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "登录跳转失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      authURL,
		"state":    state,
		"platform": platform,
	})
}

func (ah *AuthHandler) OAuthCallback(c *gin.Context) {
	platform := c.Param("platform")
	code := c.Query("code")
	state := c.Query("state")

	user, token, err := ah.authService.OAuthCallback(c.Request.Context(), platform, code, state)
	switch {
	case errors.Is(err, services.ErrInvalidState), errors.Is(err, services.ErrPlatformMismatch):
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	case errors.Is(err, services.ErrUnsupportedPlatform):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	case err != nil:
		ah.log.Error("OAuth callback failed", "platform", platform, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "登录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "登录成功",
		"user":    user,
		"token":   token,
	})
}

func (ah *AuthHandler) CurrentUser(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	user, err := ah.authService.GetUser(c.Request.Context(), rd.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Logout exists for client symmetry; tokens are stateless so the client
// just discards its copy.
func (ah *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已退出登录"})
}
