package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senxilab/senxi-backend/internal/guide"
	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/services"
)

type GuideHandler struct {
	guideService services.GuideService
	engine       *guide.Engine
	log          *logger.Logger
}

func NewGuideHandler(guideService services.GuideService, engine *guide.Engine, baseLog *logger.Logger) *GuideHandler {
	return &GuideHandler{
		guideService: guideService,
		engine:       engine,
		log:          baseLog.With("handler", "GuideHandler"),
	}
}

// Start opens a consultation session and returns its id with the greeting.
func (gh *GuideHandler) Start(c *gin.Context) {
	sessionID, reply, err := gh.guideService.Start(c.Request.Context())
	if err != nil {
		gh.log.Error("Failed to start guide session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "会话创建失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"step":       reply.Step,
		"type":       reply.Type,
		"message":    reply.Message,
		"next_step":  reply.NextStep,
		"progress":   reply.Progress,
	})
}

func (gh *GuideHandler) Chat(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
		Step      int    `json:"step"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	reply, err := gh.guideService.Answer(c.Request.Context(), req.SessionID, req.Message, req.Step)
	if errors.Is(err, services.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		gh.log.Error("Guide turn failed", "session_id", req.SessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "对话处理失败"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Recommend scores a fully-specified profile directly, without a session.
func (gh *GuideHandler) Recommend(c *gin.Context) {
	var req struct {
		Profile guide.Profile `json:"profile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}
	c.JSON(http.StatusOK, gh.engine.Recommend(req.Profile))
}
