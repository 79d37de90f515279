package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/requestdata"
	"github.com/senxilab/senxi-backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
	log          *logger.Logger
}

func NewOrderHandler(orderService services.OrderService, baseLog *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          baseLog.With("handler", "OrderHandler"),
	}
}

func (oh *OrderHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req struct {
		Items []services.OrderItemInput `json:"items"`

		AddressID       *uuid.UUID `json:"address_id"`
		ReceiverName    string     `json:"receiver_name"`
		ReceiverPhone   string     `json:"receiver_phone"`
		ReceiverAddress string     `json:"receiver_address"`
		Remark          string     `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	order, err := oh.orderService.Create(c.Request.Context(), rd.UserID, services.CreateOrderInput{
		Items:           req.Items,
		AddressID:       req.AddressID,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		Remark:          req.Remark,
	})
	if err != nil {
		oh.writeOrderError(c, rd.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "下单成功", "order": order})
}

// Checkout places an order from the whole cart.
func (oh *OrderHandler) Checkout(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req struct {
		AddressID *uuid.UUID `json:"address_id"`
		Remark    string     `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	order, err := oh.orderService.CheckoutCart(c.Request.Context(), rd.UserID, req.AddressID, req.Remark)
	if err != nil {
		oh.writeOrderError(c, rd.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "下单成功", "order": order})
}

func (oh *OrderHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	orders, err := oh.orderService.List(c.Request.Context(), rd.UserID, c.Query("status"))
	if err != nil {
		oh.log.Error("Order list failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "订单加载失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (oh *OrderHandler) Get(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	order, err := oh.orderService.Get(c.Request.Context(), rd.UserID, c.Param("order_no"))
	if err != nil {
		oh.writeOrderError(c, rd.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (oh *OrderHandler) Pay(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	order, err := oh.orderService.Pay(c.Request.Context(), rd.UserID, c.Param("order_no"))
	if err != nil {
		oh.writeOrderError(c, rd.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "支付成功", "order": order})
}

func (oh *OrderHandler) Ship(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	order, err := oh.orderService.Ship(c.Request.Context(), rd.UserID, c.Param("order_no"))
	if err != nil {
		oh.writeOrderError(c, rd.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "订单已发货", "order": order})
}

func (oh *OrderHandler) Cancel(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	order, err := oh.orderService.Cancel(c.Request.Context(), rd.UserID, c.Param("order_no"))
	if err != nil {
		oh.writeOrderError(c, rd.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "订单已取消", "order": order})
}

func (oh *OrderHandler) Confirm(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	order, err := oh.orderService.Confirm(c.Request.Context(), rd.UserID, c.Param("order_no"))
	if err != nil {
		oh.writeOrderError(c, rd.UserID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "确认收货成功", "order": order})
}

func (oh *OrderHandler) writeOrderError(c *gin.Context, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrInvalidOrderStatus):
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
	default:
		oh.log.Error("Order operation failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "订单处理失败"})
	}
}
