package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/types"
)

var ErrPostNotFound = errors.New("帖子不存在")

// Author is the public subset of a user shown on posts and comments.
type Author struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	Avatar   string    `json:"avatar"`
	Level    int       `json:"level"`
}

// PostView is a post joined with its author and, on the detail view, the
// caller's like state.
type PostView struct {
	types.Post
	Author Author `json:"author"`
	Liked  bool   `json:"liked"`
}

type PostPage struct {
	Posts    []PostView `json:"posts"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// CommentView is a comment with its author and nested replies.
type CommentView struct {
	types.Comment
	Author  Author        `json:"author"`
	Replies []CommentView `json:"replies"`
}

type CreatePostInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Images   []string `json:"images"`
}

type CommunityService interface {
	CreatePost(ctx context.Context, userID uuid.UUID, input CreatePostInput) (*PostView, error)
	ListPosts(ctx context.Context, category string, page, pageSize int) (*PostPage, error)
	GetPost(ctx context.Context, postID uuid.UUID, viewerID uuid.UUID) (*PostView, []CommentView, error)
	AddComment(ctx context.Context, userID, postID uuid.UUID, content string, parentID *uuid.UUID) (*CommentView, error)
	LikePost(ctx context.Context, userID, postID uuid.UUID) (bool, int, error)
	UnlikePost(ctx context.Context, userID, postID uuid.UUID) (bool, int, error)
	FavoriteProduct(ctx context.Context, userID uuid.UUID, sku string) (bool, error)
	UnfavoriteProduct(ctx context.Context, userID uuid.UUID, sku string) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*types.Favorite, error)
}

type communityService struct {
	db           *gorm.DB
	postRepo     repos.PostRepo
	commentRepo  repos.CommentRepo
	likeRepo     repos.LikeRepo
	favoriteRepo repos.FavoriteRepo
	userRepo     repos.UserRepo
	log          *logger.Logger
}

func NewCommunityService(db *gorm.DB, postRepo repos.PostRepo, commentRepo repos.CommentRepo, likeRepo repos.LikeRepo, favoriteRepo repos.FavoriteRepo, userRepo repos.UserRepo, baseLog *logger.Logger) CommunityService {
	return &communityService{
		db:           db,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		log:          baseLog.With("service", "CommunityService"),
	}
}

func (cs *communityService) CreatePost(ctx context.Context, userID uuid.UUID, input CreatePostInput) (*PostView, error) {
	if input.Category == "" {
		input.Category = types.PostCategoryGeneral
	}
	images, err := json.Marshal(input.Images)
	if err != nil {
		return nil, err
	}

	post := &types.Post{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		Images:      datatypes.JSON(images),
		IsPublished: true,
	}
	if err := cs.postRepo.Create(ctx, nil, post); err != nil {
		return nil, err
	}

	author, err := cs.author(ctx, userID)
	if err != nil {
		return nil, err
	}
	cs.log.Info("Post created", "post_id", post.ID, "user_id", userID)
	return &PostView{Post: *post, Author: author}, nil
}

func (cs *communityService) ListPosts(ctx context.Context, category string, page, pageSize int) (*PostPage, error) {
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}
	posts, total, err := cs.postRepo.List(ctx, nil, category, page, pageSize)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		author, err := cs.author(ctx, post.UserID)
		if err != nil {
			return nil, err
		}
		views = append(views, PostView{Post: *post, Author: author})
	}
	if page < 1 {
		page = 1
	}
	return &PostPage{Posts: views, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetPost returns the post with its threaded comments and bumps the view
// counter. viewerID may be uuid.Nil for anonymous readers.
func (cs *communityService) GetPost(ctx context.Context, postID uuid.UUID, viewerID uuid.UUID) (*PostView, []CommentView, error) {
	post, err := cs.postRepo.GetByID(ctx, nil, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrPostNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if err := cs.postRepo.IncrementViews(ctx, nil, postID); err != nil {
		return nil, nil, err
	}
	post.Views++

	author, err := cs.author(ctx, post.UserID)
	if err != nil {
		return nil, nil, err
	}

	liked := false
	if viewerID != uuid.Nil {
		liked, err = cs.likeRepo.Exists(ctx, nil, postID, viewerID)
		if err != nil {
			return nil, nil, err
		}
	}

	comments, err := cs.threadedComments(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	return &PostView{Post: *post, Author: author, Liked: liked}, comments, nil
}

func (cs *communityService) AddComment(ctx context.Context, userID, postID uuid.UUID, content string, parentID *uuid.UUID) (*CommentView, error) {
	if _, err := cs.postRepo.GetByID(ctx, nil, postID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	} else if err != nil {
		return nil, err
	}

	comment := &types.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		UserID:   userID,
		Content:  content,
		ParentID: parentID,
	}
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cs.commentRepo.Create(ctx, tx, comment); err != nil {
			return err
		}
		return cs.postRepo.AddCommentCount(ctx, tx, postID, 1)
	})
	if err != nil {
		return nil, err
	}

	author, err := cs.author(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CommentView{Comment: *comment, Author: author, Replies: []CommentView{}}, nil
}

// LikePost records the like. Repeat likes are a no-op so the counter moves
// at most once per user. Returns whether the like was new and the new count.
func (cs *communityService) LikePost(ctx context.Context, userID, postID uuid.UUID) (bool, int, error) {
	post, err := cs.postRepo.GetByID(ctx, nil, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, ErrPostNotFound
	}
	if err != nil {
		return false, 0, err
	}

	var created bool
	err = cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err = cs.likeRepo.Create(ctx, tx, &types.PostLike{
			ID:     uuid.New(),
			PostID: postID,
			UserID: userID,
		})
		if err != nil {
			return err
		}
		if created {
			return cs.postRepo.AddLikes(ctx, tx, postID, 1)
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	likes := post.Likes
	if created {
		likes++
	}
	return created, likes, nil
}

func (cs *communityService) UnlikePost(ctx context.Context, userID, postID uuid.UUID) (bool, int, error) {
	post, err := cs.postRepo.GetByID(ctx, nil, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, ErrPostNotFound
	}
	if err != nil {
		return false, 0, err
	}

	var removed bool
	err = cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err = cs.likeRepo.Delete(ctx, tx, postID, userID)
		if err != nil {
			return err
		}
		if removed {
			return cs.postRepo.AddLikes(ctx, tx, postID, -1)
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	likes := post.Likes
	if removed {
		likes--
	}
	return removed, likes, nil
}

func (cs *communityService) FavoriteProduct(ctx context.Context, userID uuid.UUID, sku string) (bool, error) {
	return cs.favoriteRepo.Create(ctx, nil, &types.Favorite{
		ID:         uuid.New(),
		UserID:     userID,
		ProductSKU: sku,
	})
}

func (cs *communityService) UnfavoriteProduct(ctx context.Context, userID uuid.UUID, sku string) (bool, error) {
	return cs.favoriteRepo.Delete(ctx, nil, userID, sku)
}

func (cs *communityService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*types.Favorite, error) {
	return cs.favoriteRepo.ListByUser(ctx, nil, userID)
}

func (cs *communityService) author(ctx context.Context, userID uuid.UUID) (Author, error) {
	user, err := cs.userRepo.GetByID(ctx, nil, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Author{ID: userID, Nickname: "已注销用户"}, nil
	}
	if err != nil {
		return Author{}, err
	}
	return Author{
		ID:       user.ID,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Level:    user.Level,
	}, nil
}

// threadedComments loads all comments for the post and nests replies one
// level under their parents.
func (cs *communityService) threadedComments(ctx context.Context, postID uuid.UUID) ([]CommentView, error) {
	comments, err := cs.commentRepo.ListByPost(ctx, nil, postID)
	if err != nil {
		return nil, err
	}

	views := make(map[uuid.UUID]*CommentView, len(comments))
	var order []uuid.UUID
	for _, comment := range comments {
		author, err := cs.author(ctx, comment.UserID)
		if err != nil {
			return nil, err
		}
		views[comment.ID] = &CommentView{Comment: *comment, Author: author, Replies: []CommentView{}}
		order = append(order, comment.ID)
	}

	// Attach replies first, then collect the roots, so a root copied into
	// the result already carries all of its replies.
	for _, id := range order {
		view := views[id]
		if view.ParentID == nil {
			continue
		}
		if parent, ok := views[*view.ParentID]; ok {
			parent.Replies = append(parent.Replies, *view)
		}
	}

	var roots []CommentView
	for _, id := range order {
		view := views[id]
		if view.ParentID == nil {
			roots = append(roots, *view)
		} else if _, ok := views[*view.ParentID]; !ok {
			roots = append(roots, *view)
		}
	}
	return roots, nil
}
