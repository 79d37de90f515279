package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/requestdata"
	"github.com/senxilab/senxi-backend/internal/services"
)

type CommunityHandler struct {
	communityService services.CommunityService
	log              *logger.Logger
}

func NewCommunityHandler(communityService services.CommunityService, baseLog *logger.Logger) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		log:              baseLog.With("handler", "CommunityHandler"),
	}
}

func (ch *CommunityHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := ch.communityService.ListPosts(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		ch.log.Error("Post list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "帖子加载失败"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ch *CommunityHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "帖子ID格式错误"})
		return
	}

	viewerID := uuid.Nil
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
		viewerID = rd.UserID
	}

	post, comments, err := ch.communityService.GetPost(c.Request.Context(), postID, viewerID)
	if errors.Is(err, services.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ch.log.Error("Post load failed", "post_id", postID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "帖子加载失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post, "comments": comments})
}

func (ch *CommunityHandler) CreatePost(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req services.CreatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误"})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "标题和内容不能为空"})
		return
	}

	post, err := ch.communityService.CreatePost(c.Request.Context(), rd.UserID, req)
	if err != nil {
		ch.log.Error("Post create failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "发布失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

func (ch *CommunityHandler) AddComment(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "帖子ID格式错误"})
		return
	}
	var req struct {
		Content  string     `json:"content"`
		ParentID *uuid.UUID `json:"parent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "评论内容不能为空"})
		return
	}

	comment, err := ch.communityService.AddComment(c.Request.Context(), rd.UserID, postID, req.Content, req.ParentID)
	if errors.Is(err, services.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ch.log.Error("Comment create failed", "post_id", postID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "评论失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

func (ch *CommunityHandler) LikePost(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "帖子ID格式错误"})
		return
	}

	liked, likes, err := ch.communityService.LikePost(c.Request.Context(), rd.UserID, postID)
	if errors.Is(err, services.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ch.log.Error("Like failed", "post_id", postID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "点赞失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "liked": liked, "likes": likes})
}

func (ch *CommunityHandler) UnlikePost(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "帖子ID格式错误"})
		return
	}

	removed, likes, err := ch.communityService.UnlikePost(c.Request.Context(), rd.UserID, postID)
	if errors.Is(err, services.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ch.log.Error("Unlike failed", "post_id", postID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "取消点赞失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed, "likes": likes})
}

func (ch *CommunityHandler) AddFavorite(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	created, err := ch.communityService.FavoriteProduct(c.Request.Context(), rd.UserID, c.Param("product_id"))
	if err != nil {
		ch.log.Error("Favorite failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "收藏失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "created": created})
}

func (ch *CommunityHandler) RemoveFavorite(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	removed, err := ch.communityService.UnfavoriteProduct(c.Request.Context(), rd.UserID, c.Param("product_id"))
	if err != nil {
		ch.log.Error("Unfavorite failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "取消收藏失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}

func (ch *CommunityHandler) ListFavorites(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	favorites, err := ch.communityService.ListFavorites(c.Request.Context(), rd.UserID)
	if err != nil {
		ch.log.Error("Favorite list failed", "user_id", rd.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "收藏加载失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": favorites})
}
