package types

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID  `gorm:"type:uuid;not null;index;column:post_id" json:"post_id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Content   string     `gorm:"not null;column:content" json:"content"`
	ParentID  *uuid.UUID `gorm:"type:uuid;column:parent_id" json:"parent_id,omitempty"`
	Likes     int        `gorm:"not null;default:0;column:likes" json:"likes"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

func (Comment) TableName() string { return "comment" }
