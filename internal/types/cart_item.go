package types

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product;column:user_id" json:"user_id"`
	ProductSKU string    `gorm:"not null;uniqueIndex:idx_cart_user_product;column:product_sku" json:"product_id"`
	Quantity   int       `gorm:"not null;default:1;column:quantity" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (CartItem) TableName() string { return "cart_item" }
