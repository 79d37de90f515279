package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/senxilab/senxi-backend/internal/catalog"
	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
	log            *logger.Logger
}

func NewProductHandler(productService services.ProductService, baseLog *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		log:            baseLog.With("handler", "ProductHandler"),
	}
}

func (ph *ProductHandler) List(c *gin.Context) {
	category := c.Query("category")
	sortBy := c.DefaultQuery("sort", "default")
	c.JSON(http.StatusOK, ph.productService.List(category, sortBy))
}

func (ph *ProductHandler) Get(c *gin.Context) {
	product, ok := ph.productService.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "产品不存在"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ph *ProductHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, ph.productService.Categories())
}

func (ph *ProductHandler) Featured(c *gin.Context) {
	c.JSON(http.StatusOK, ph.productService.Featured())
}

func (ph *ProductHandler) Related(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit < 1 {
		limit = 3
	}
	c.JSON(http.StatusOK, ph.productService.Related(c.Param("id"), limit))
}

func (ph *ProductHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusOK, []catalog.Product{})
		return
	}
	c.JSON(http.StatusOK, ph.productService.Search(keyword))
}

func (ph *ProductHandler) Compare(c *gin.Context) {
	var req struct {
		ProductIDs []string `json:"product_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}

	comparison, err := ph.productService.Compare(req.ProductIDs)
	if errors.Is(err, catalog.ErrNotEnoughProducts) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ph.log.Error("Compare failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "对比生成失败"})
		return
	}
	c.JSON(http.StatusOK, comparison)
}

func (ph *ProductHandler) Stock(c *gin.Context) {
	stock, err := ph.productService.Stock(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ph.log.Error("Stock lookup failed", "sku", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "库存查询失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": c.Param("id"), "stock": stock})
}
