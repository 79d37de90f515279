package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/types"
)

type LikeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, like *types.PostLike) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error)
	Exists(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error)
}

type likeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLikeRepo(db *gorm.DB, baseLog *logger.Logger) LikeRepo {
	return &likeRepo{db: db, log: baseLog.With("repo", "LikeRepo")}
}

// Create inserts the like and reports whether it was new. A duplicate
// trips the composite unique index and counts as not-new rather than an
// error.
func (lr *likeRepo) Create(ctx context.Context, tx *gorm.DB, like *types.PostLike) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (lr *likeRepo) Delete(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	result := transaction.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&types.PostLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (lr *likeRepo) Exists(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
