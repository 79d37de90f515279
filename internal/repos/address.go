package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/types"
)

type AddressRepo interface {
	Create(ctx context.Context, tx *gorm.DB, address *types.Address) error
	GetByID(ctx context.Context, tx *gorm.DB, userID, addressID uuid.UUID) (*types.Address, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Address, error)
	Update(ctx context.Context, tx *gorm.DB, address *types.Address) error
	Delete(ctx context.Context, tx *gorm.DB, userID, addressID uuid.UUID) error
	ClearDefault(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	return &addressRepo{db: db, log: baseLog.With("repo", "AddressRepo")}
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Create(address).Error
}

func (ar *addressRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, addressID uuid.UUID) (*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var address types.Address
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (ar *addressRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*types.Address
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *addressRepo) Update(ctx context.Context, tx *gorm.DB, address *types.Address) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).Save(address).Error
}

func (ar *addressRepo) Delete(ctx context.Context, tx *gorm.DB, userID, addressID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&types.Address{}).Error
}

// ClearDefault unsets the default flag on all of the user's addresses so a
// new default can be promoted.
func (ar *addressRepo) ClearDefault(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
