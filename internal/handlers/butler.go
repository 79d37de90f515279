package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/services"
)

type ButlerHandler struct {
	butlerService services.ButlerService
	log           *logger.Logger
}

func NewButlerHandler(butlerService services.ButlerService, baseLog *logger.Logger) *ButlerHandler {
	return &ButlerHandler{
		butlerService: butlerService,
		log:           baseLog.With("handler", "ButlerHandler"),
	}
}

func (bh *ButlerHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}
	c.JSON(http.StatusOK, bh.butlerService.Chat(req.Message))
}

func (bh *ButlerHandler) QuickReplies(c *gin.Context) {
	category := c.DefaultQuery("category", "general")
	c.JSON(http.StatusOK, bh.butlerService.QuickReplies(category))
}

func (bh *ButlerHandler) Transfer(c *gin.Context) {
	c.JSON(http.StatusOK, bh.butlerService.TransferToHuman())
}
