// Package testutil provides an in-memory database and seed helpers for
// repository and service tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/senxilab/senxi-backend/internal/types"
)

// NewTestDB opens a private in-memory database migrated with the full
// schema. Each test gets its own database, torn down when the test ends.
func NewTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&types.User{},
		&types.Product{},
		&types.Order{},
		&types.OrderItem{},
		&types.CartItem{},
		&types.Address{},
		&types.Post{},
		&types.Comment{},
		&types.PostLike{},
		&types.Favorite{},
	)
	if err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func SeedUser(tb testing.TB, db *gorm.DB, phone string) *types.User {
	tb.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Phone:    &phone,
		Nickname: "用户" + phone[len(phone)-4:],
		AuthType: types.AuthTypePhone,
		Level:    1,
	}
	if err := db.Create(user).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return user
}

func SeedProduct(tb testing.TB, db *gorm.DB, sku string, price float64, stock int) *types.Product {
	tb.Helper()
	product := &types.Product{
		ID:       uuid.New(),
		SKU:      sku,
		Name:     "测试产品 " + sku,
		Category: types.CategoryHome,
		Price:    price,
		Stock:    stock,
		Rating:   5,
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return product
}

func SeedAddress(tb testing.TB, db *gorm.DB, userID uuid.UUID, isDefault bool) *types.Address {
	tb.Helper()
	address := &types.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "张三",
		Phone:     "13800138000",
		Province:  "浙江省",
		City:      "杭州市",
		District:  "西湖区",
		Detail:    "文一西路100号",
		IsDefault: isDefault,
	}
	if err := db.Create(address).Error; err != nil {
		tb.Fatalf("seed address: %v", err)
	}
	return address
}

func SeedPost(tb testing.TB, db *gorm.DB, userID uuid.UUID, title string) *types.Post {
	tb.Helper()
	post := &types.Post{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Content:     "使用体验分享：" + title,
		Category:    types.PostCategoryExperience,
		IsPublished: true,
	}
	if err := db.Create(post).Error; err != nil {
		tb.Fatalf("seed post: %v", err)
	}
	return post
}
