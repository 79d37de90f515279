package types

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Phone     string    `gorm:"not null;column:phone" json:"phone"`
	Province  string    `gorm:"not null;column:province" json:"province"`
	City      string    `gorm:"not null;column:city" json:"city"`
	District  string    `gorm:"not null;column:district" json:"district"`
	Detail    string    `gorm:"not null;column:detail" json:"detail"`
	IsDefault bool      `gorm:"not null;default:false;column:is_default" json:"is_default"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Address) TableName() string { return "address" }
