package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product categories.
const (
	CategoryHome      = "home"
	CategoryCar       = "car"
	CategoryAccessory = "accessory"
)

// Product is the commerce-side product row: the sellable unit with stock.
// Structured attributes (images, specs, features, tags, coverage sets) live
// in JSON columns rather than serialized text so they stay queryable.
type Product struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"-"`
	SKU              string         `gorm:"uniqueIndex;not null;column:sku" json:"id"`
	Name             string         `gorm:"not null;column:name" json:"name"`
	Series           string         `gorm:"column:series" json:"series"`
	Category         string         `gorm:"not null;index;column:category" json:"category"`
	Description      string         `gorm:"column:description" json:"description"`
	Price            float64        `gorm:"not null;column:price" json:"price"`
	OriginalPrice    float64        `gorm:"column:original_price" json:"original_price"`
	CADRPM25         int            `gorm:"column:cadr_pm25" json:"cadr_pm25"`
	CADRFormaldehyde int            `gorm:"column:cadr_formaldehyde" json:"cadr_formaldehyde"`
	ApplicableArea   string         `gorm:"column:applicable_area" json:"applicable_area"`
	AreaMin          int            `gorm:"column:area_min" json:"-"`
	AreaMax          int            `gorm:"column:area_max" json:"-"`
	NoiseRange       string         `gorm:"column:noise_range" json:"noise_range"`
	MainImage        string         `gorm:"column:main_image" json:"main_image"`
	Images           datatypes.JSON `gorm:"type:jsonb;column:images" json:"images"`
	Specs            datatypes.JSON `gorm:"type:jsonb;column:specs" json:"specs"`
	Features         datatypes.JSON `gorm:"type:jsonb;column:features" json:"features"`
	Tags             datatypes.JSON `gorm:"type:jsonb;column:tags" json:"tags"`
	Problems         datatypes.JSON `gorm:"type:jsonb;column:problems" json:"problems"`
	UserGroups       datatypes.JSON `gorm:"type:jsonb;column:user_groups" json:"user_groups"`
	SuitableFor      datatypes.JSON `gorm:"type:jsonb;column:suitable_for" json:"suitable_for"`
	Stock            int            `gorm:"not null;default:0;column:stock" json:"stock"`
	Sales            int            `gorm:"not null;default:0;column:sales" json:"sales"`
	Rating           float64        `gorm:"not null;default:5.0;column:rating" json:"rating"`
	ReviewCount      int            `gorm:"not null;default:0;column:review_count" json:"review_count"`
	Badge            string         `gorm:"column:badge" json:"badge,omitempty"`
	BadgeColor       string         `gorm:"column:badge_color" json:"badge_color,omitempty"`
	IsActive         bool           `gorm:"not null;default:true;column:is_active" json:"-"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
