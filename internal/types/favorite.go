package types

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite;column:user_id" json:"user_id"`
	ProductSKU string    `gorm:"not null;uniqueIndex:idx_favorite;column:product_sku" json:"product_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (Favorite) TableName() string { return "favorite" }
