package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/types"
)

type CartRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.CartItem) error
	GetByUserAndProduct(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sku string) (*types.CartItem, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CartItem, error)
	UpdateQuantity(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, quantity int) error
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sku string) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return &cartRepo{db: db, log: baseLog.With("repo", "CartRepo")}
}

func (cr *cartRepo) Create(ctx context.Context, tx *gorm.DB, item *types.CartItem) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Create(item).Error
}

func (cr *cartRepo) GetByUserAndProduct(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sku string) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var item types.CartItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND product_sku = ?", userID, sku).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (cr *cartRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.CartItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *cartRepo) UpdateQuantity(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, quantity int) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (cr *cartRepo) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sku string) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND product_sku = ?", userID, sku).
		Delete(&types.CartItem{}).Error
}

func (cr *cartRepo) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.CartItem{}).Error
}
