package services_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/repos/testutil"
	"github.com/senxilab/senxi-backend/internal/services"
)

func newCartService(t *testing.T) (services.CartService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := newTestLogger(t)
	cartRepo := repos.NewCartRepo(db, log)
	productRepo := repos.NewProductRepo(db, log)
	return services.NewCartService(cartRepo, productRepo, log), db
}

func TestCartAddMergesExistingLine(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "13800138000")
	testutil.SeedProduct(t, db, "mini-01", 1299, 10)

	if err := svc.Add(ctx, user.ID, "mini-01", 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(ctx, user.ID, "mini-01", 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	summary, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("got %d lines, want 1 merged line", len(summary.Items))
	}
	if summary.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", summary.Items[0].Quantity)
	}
	if summary.TotalAmount != 1299*5 {
		t.Fatalf("total = %v", summary.TotalAmount)
	}
}

func TestCartAddCapsAtStock(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "13800138000")
	testutil.SeedProduct(t, db, "pro-01", 2999, 3)

	if err := svc.Add(ctx, user.ID, "pro-01", 4); !errors.Is(err, services.ErrInsufficientStock) {
		t.Fatalf("over-stock add err = %v, want ErrInsufficientStock", err)
	}

	if err := svc.Add(ctx, user.ID, "pro-01", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(ctx, user.ID, "pro-01", 2); !errors.Is(err, services.ErrInsufficientStock) {
		t.Fatalf("merged over-stock err = %v, want ErrInsufficientStock", err)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc, db := newCartService(t)
	user := testutil.SeedUser(t, db, "13800138000")

	if err := svc.Add(context.Background(), user.ID, "ghost-99", 1); !errors.Is(err, services.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "13800138000")
	testutil.SeedProduct(t, db, "mini-01", 1299, 10)

	if err := svc.UpdateQuantity(ctx, user.ID, "mini-01", 2); !errors.Is(err, services.ErrCartItemNotFound) {
		t.Fatalf("update missing line err = %v, want ErrCartItemNotFound", err)
	}

	if err := svc.Add(ctx, user.ID, "mini-01", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.UpdateQuantity(ctx, user.ID, "mini-01", 4); err != nil {
		t.Fatalf("update: %v", err)
	}

	summary, _ := svc.List(ctx, user.ID)
	if summary.Items[0].Quantity != 4 {
		t.Fatalf("quantity = %d, want 4", summary.Items[0].Quantity)
	}

	// Zero quantity removes the line.
	if err := svc.UpdateQuantity(ctx, user.ID, "mini-01", 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	summary, _ = svc.List(ctx, user.ID)
	if len(summary.Items) != 0 {
		t.Fatalf("line not removed: %+v", summary.Items)
	}
}

func TestCartClear(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "13800138000")
	testutil.SeedProduct(t, db, "mini-01", 1299, 10)
	testutil.SeedProduct(t, db, "pro-01", 2999, 10)

	svc.Add(ctx, user.ID, "mini-01", 1)
	svc.Add(ctx, user.ID, "pro-01", 1)

	if err := svc.Clear(ctx, user.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	summary, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if summary.TotalCount != 0 {
		t.Fatalf("total count = %d, want 0", summary.TotalCount)
	}
}
