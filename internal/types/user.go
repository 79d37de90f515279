package types

import (
	"time"

	"github.com/google/uuid"
)

// AuthType values for User.AuthType.
const (
	AuthTypePhone  = "phone"
	AuthTypeWechat = "wechat"
	AuthTypeQQ     = "qq"
	AuthTypeGithub = "github"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Phone        *string   `gorm:"uniqueIndex;column:phone" json:"phone,omitempty"`
	Email        *string   `gorm:"uniqueIndex;column:email" json:"email,omitempty"`
	Nickname     string    `gorm:"not null;column:nickname" json:"nickname"`
	Password     string    `gorm:"column:password" json:"-"`
	Avatar       string    `gorm:"column:avatar" json:"avatar"`
	AuthType     string    `gorm:"not null;default:phone;column:auth_type" json:"auth_type"`
	WechatOpenID *string   `gorm:"uniqueIndex;column:wechat_openid" json:"-"`
	QQOpenID     *string   `gorm:"uniqueIndex;column:qq_openid" json:"-"`
	GithubID     *string   `gorm:"uniqueIndex;column:github_id" json:"-"`
	Level        int       `gorm:"not null;default:1;column:level" json:"level"`
	Points       int       `gorm:"not null;default:0;column:points" json:"points"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string { return "user" }
