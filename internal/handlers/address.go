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

type AddressHandler struct {
	addressService services.AddressService
	log            *logger.Logger
}

func NewAddressHandler(addressService services.AddressService, baseLog *logger.Logger) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		log:            baseLog.With("handler", "AddressHandler"),
	}
}

func (ah *AddressHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req services.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	address, err := ah.addressService.Create(c.Request.Context(), rd.UserID, req)
	if err != nil {
		ah.log.Error("Address create failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "地址保存失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "address": address})
}

func (ah *AddressHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	addresses, err := ah.addressService.List(c.Request.Context(), rd.UserID)
	if err != nil {
		ah.log.Error("Address list failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "地址加载失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "addresses": addresses})
}

func (ah *AddressHandler) Update(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "地址ID格式错误"})
		return
	}
	var req services.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	address, err := ah.addressService.Update(c.Request.Context(), rd.UserID, addressID, req)
	if errors.Is(err, services.ErrAddressNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ah.log.Error("Address update failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "地址更新失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "address": address})
}

func (ah *AddressHandler) Delete(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "地址ID格式错误"})
		return
	}
	if err := ah.addressService.Delete(c.Request.Context(), rd.UserID, addressID); err != nil {
		ah.log.Error("Address delete failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "地址删除失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AddressHandler) SetDefault(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "地址ID格式错误"})
		return
	}

	err = ah.addressService.SetDefault(c.Request.Context(), rd.UserID, addressID)
	if errors.Is(err, services.ErrAddressNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ah.log.Error("Address set-default failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "默认地址设置失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
