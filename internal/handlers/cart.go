package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/requestdata"
	"github.com/senxilab/senxi-backend/internal/services"
)

type CartHandler struct {
	cartService services.CartService
	log         *logger.Logger
}

func NewCartHandler(cartService services.CartService, baseLog *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         baseLog.With("handler", "CartHandler"),
	}
}

func (ch *CartHandler) Add(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	err := ch.cartService.Add(c.Request.Context(), rd.UserID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	case errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	case err != nil:
		ch.log.Error("Cart add failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "加入购物车失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已加入购物车"})
}

func (ch *CartHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	summary, err := ch.cartService.List(c.Request.Context(), rd.UserID)
	if err != nil {
		ch.log.Error("Cart list failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "购物车加载失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": summary})
}

func (ch *CartHandler) UpdateQuantity(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	err := ch.cartService.UpdateQuantity(c.Request.Context(), rd.UserID, c.Param("product_id"), req.Quantity)
	switch {
	case errors.Is(err, services.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	case errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	case err != nil:
		ch.log.Error("Cart update failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "购物车更新失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ch *CartHandler) Remove(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if err := ch.cartService.Remove(c.Request.Context(), rd.UserID, c.Param("product_id")); err != nil {
		ch.log.Error("Cart remove failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "移除失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ch *CartHandler) Clear(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if err := ch.cartService.Clear(c.Request.Context(), rd.UserID); err != nil {
		ch.log.Error("Cart clear failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "清空失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
