package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post categories.
const (
	PostCategoryExperience   = "experience"
	PostCategoryFormaldehyde = "formaldehyde"
	PostCategoryAllergy      = "allergy"
	PostCategoryGeneral      = "general"
)

type Post struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Title        string         `gorm:"not null;column:title" json:"title"`
	Content      string         `gorm:"not null;column:content" json:"content"`
	Category     string         `gorm:"not null;default:general;index;column:category" json:"category"`
	Images       datatypes.JSON `gorm:"type:jsonb;column:images" json:"images"`
	Likes        int            `gorm:"not null;default:0;column:likes" json:"likes"`
	Views        int            `gorm:"not null;default:0;column:views" json:"views"`
	CommentCount int            `gorm:"not null;default:0;column:comment_count" json:"comments_count"`
	IsPublished  bool           `gorm:"not null;default:true;column:is_published" json:"-"`
	IsPinned     bool           `gorm:"not null;default:false;column:is_pinned" json:"is_pinned"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updated_at"`
}

func (Post) TableName() string { return "post" }
