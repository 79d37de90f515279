package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/types"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, post *types.Post) error
	GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error)
	List(ctx context.Context, tx *gorm.DB, category string, page, pageSize int) ([]*types.Post, int64, error)
	IncrementViews(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error
	AddLikes(ctx context.Context, tx *gorm.DB, postID uuid.UUID, delta int) error
	AddCommentCount(ctx context.Context, tx *gorm.DB, postID uuid.UUID, delta int) error
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, post *types.Post) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Create(post).Error
}

func (pr *postRepo) GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var post types.Post
	if err := transaction.WithContext(ctx).
		Where("id = ? AND is_published = ?", postID, true).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns one page of published posts, pinned first then newest, plus
// the total count for pagination.
func (pr *postRepo) List(ctx context.Context, tx *gorm.DB, category string, page, pageSize int) ([]*types.Post, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	query := transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("is_published = ?", true)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var results []*types.Post
	if err := query.
		Order("is_pinned DESC, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (pr *postRepo) IncrementViews(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		Update("views", gorm.Expr("views + 1")).Error
}

func (pr *postRepo) AddLikes(ctx context.Context, tx *gorm.DB, postID uuid.UUID, delta int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		Update("likes", gorm.Expr("likes + ?", delta)).Error
}

func (pr *postRepo) AddCommentCount(ctx context.Context, tx *gorm.DB, postID uuid.UUID, delta int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		Update("comment_count", gorm.Expr("comment_count + ?", delta)).Error
}
