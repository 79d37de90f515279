package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *types.Order) error
	GetByOrderNo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, orderNo string) (*types.Order, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.Order, error)
	Update(ctx context.Context, tx *gorm.DB, order *types.Order) error
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Create(order).Error
}

func (or *orderRepo) GetByOrderNo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, orderNo string) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var order types.Order
	if err := transaction.WithContext(ctx).
		Preload("Items").
		Where("order_no = ? AND user_id = ?", orderNo, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (or *orderRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	query := transaction.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID)
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	var results []*types.Order
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) Update(ctx context.Context, tx *gorm.DB, order *types.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).
		Omit("Items").
		Save(order).Error
}
