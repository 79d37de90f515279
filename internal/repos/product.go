package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/types"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*types.Product) error
	GetBySKU(ctx context.Context, tx *gorm.DB, sku string) (*types.Product, error)
	GetBySKUs(ctx context.Context, tx *gorm.DB, skus []string) ([]*types.Product, error)
	List(ctx context.Context, tx *gorm.DB, category string) ([]*types.Product, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	ReduceStock(ctx context.Context, tx *gorm.DB, sku string, quantity int) (bool, error)
	RestoreStock(ctx context.Context, tx *gorm.DB, sku string, quantity int) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(products) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&products).Error
}

func (pr *productRepo) GetBySKU(ctx context.Context, tx *gorm.DB, sku string) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var product types.Product
	if err := transaction.WithContext(ctx).
		Where("sku = ? AND is_active = ?", sku, true).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (pr *productRepo) GetBySKUs(ctx context.Context, tx *gorm.DB, skus []string) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Product
	if len(skus) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("sku IN ? AND is_active = ?", skus, true).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) List(ctx context.Context, tx *gorm.DB, category string) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	query := transaction.WithContext(ctx).Where("is_active = ?", true)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	var results []*types.Product
	if err := query.Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReduceStock decrements stock by quantity only when enough remains, in a
// single conditional UPDATE so concurrent orders cannot oversell. Returns
// false when stock was insufficient.
func (pr *productRepo) ReduceStock(ctx context.Context, tx *gorm.DB, sku string, quantity int) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	result := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("sku = ? AND stock >= ?", sku, quantity).
		Updates(map[string]interface{}{
			"stock": gorm.Expr("stock - ?", quantity),
			"sales": gorm.Expr("sales + ?", quantity),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RestoreStock reverses a previous ReduceStock when an order is cancelled.
func (pr *productRepo) RestoreStock(ctx context.Context, tx *gorm.DB, sku string, quantity int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("sku = ?", sku).
		Updates(map[string]interface{}{
			"stock": gorm.Expr("stock + ?", quantity),
			"sales": gorm.Expr("sales - ?", quantity),
		}).Error
}
