package types

import (
	"time"

	"github.com/google/uuid"
)

// PostLike records one like per (post, user); the composite unique index
// is what rejects duplicates.
type PostLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_like;column:post_id" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_like;column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (PostLike) TableName() string { return "post_like" }
