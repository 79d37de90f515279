package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/types"
)

type FavoriteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, favorite *types.Favorite) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sku string) (bool, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Favorite, error)
}

type favoriteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFavoriteRepo(db *gorm.DB, baseLog *logger.Logger) FavoriteRepo {
	return &favoriteRepo{db: db, log: baseLog.With("repo", "FavoriteRepo")}
}

// Create reports whether the favorite was new; duplicates are not errors.
func (fr *favoriteRepo) Create(ctx context.Context, tx *gorm.DB, favorite *types.Favorite) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if err := transaction.WithContext(ctx).Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (fr *favoriteRepo) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sku string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	result := transaction.WithContext(ctx).
		Where("user_id = ? AND product_sku = ?", userID, sku).
		Delete(&types.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (fr *favoriteRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Favorite, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Favorite
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
