package types

import (
	"time"

	"github.com/google/uuid"
)

// Order status lifecycle.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"-"`
	OrderNo         string      `gorm:"uniqueIndex;not null;column:order_no" json:"id"`
	UserID          uuid.UUID   `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Status          string      `gorm:"not null;default:pending;column:status" json:"status"`
	TotalAmount     float64     `gorm:"not null;column:total_amount" json:"total_amount"`
	DiscountAmount  float64     `gorm:"not null;default:0;column:discount_amount" json:"discount_amount"`
	FinalAmount     float64     `gorm:"not null;column:final_amount" json:"final_amount"`
	ReceiverName    string      `gorm:"column:receiver_name" json:"receiver_name"`
	ReceiverPhone   string      `gorm:"column:receiver_phone" json:"receiver_phone"`
	ReceiverAddress string      `gorm:"column:receiver_address" json:"receiver_address"`
	Remark          string      `gorm:"column:remark" json:"remark,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items"`
	PaidAt          *time.Time  `gorm:"column:paid_at" json:"paid_at,omitempty"`
	ShippedAt       *time.Time  `gorm:"column:shipped_at" json:"shipped_at,omitempty"`
	CompletedAt     *time.Time  `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string { return "order" }

// OrderItem snapshots the product at purchase time so historical orders
// stay stable when catalog data changes.
type OrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index;column:order_id" json:"-"`
	ProductSKU   string    `gorm:"not null;column:product_sku" json:"product_id"`
	ProductName  string    `gorm:"not null;column:product_name" json:"product_name"`
	ProductImage string    `gorm:"column:product_image" json:"product_image"`
	Price        float64   `gorm:"not null;column:price" json:"price"`
	Quantity     int       `gorm:"not null;column:quantity" json:"quantity"`
	Subtotal     float64   `gorm:"not null;column:subtotal" json:"subtotal"`
}

func (OrderItem) TableName() string { return "order_item" }
