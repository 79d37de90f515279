package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/repos/testutil"
	"github.com/senxilab/senxi-backend/internal/services"
)

func newAddressService(t *testing.T) (services.AddressService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := newTestLogger(t)
	return services.NewAddressService(db, repos.NewAddressRepo(db, log), log), db
}

func sampleAddress(isDefault bool) services.AddressInput {
	return services.AddressInput{
		Name:      "李四",
		Phone:     "13900139000",
		Province:  "广东省",
		City:      "深圳市",
		District:  "南山区",
		Detail:    "科技园南路88号",
		IsDefault: isDefault,
	}
}

func TestAddressCreateDemotesPreviousDefault(t *testing.T) {
	svc, db := newAddressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "13800138000")

	first, err := svc.Create(ctx, user.ID, sampleAddress(true))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, user.ID, sampleAddress(true))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	addresses, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(addresses) != 2 {
		t.Fatalf("got %d addresses, want 2", len(addresses))
	}
	for _, a := range addresses {
		if a.ID == first.ID && a.IsDefault {
			t.Fatal("first address kept its default flag")
		}
		if a.ID == second.ID && !a.IsDefault {
			t.Fatal("second address is not the default")
		}
	}
}

func TestAddressSetDefault(t *testing.T) {
	svc, db := newAddressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "13800138000")

	first, err := svc.Create(ctx, user.ID, sampleAddress(true))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, user.ID, sampleAddress(false))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if err := svc.SetDefault(ctx, user.ID, second.ID); err != nil {
		t.Fatalf("set default: %v", err)
	}

	addresses, _ := svc.List(ctx, user.ID)
	for _, a := range addresses {
		if a.ID == first.ID && a.IsDefault {
			t.Fatal("previous default not cleared")
		}
		if a.ID == second.ID && !a.IsDefault {
			t.Fatal("new default not set")
		}
	}

	if err := svc.SetDefault(ctx, user.ID, uuid.New()); !errors.Is(err, services.ErrAddressNotFound) {
		t.Fatalf("unknown address err = %v, want ErrAddressNotFound", err)
	}
}

func TestAddressDelete(t *testing.T) {
	svc, db := newAddressService(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "13800138000")

	address, err := svc.Create(ctx, user.ID, sampleAddress(false))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, user.ID, address.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	addresses, _ := svc.List(ctx, user.ID)
	if len(addresses) != 0 {
		t.Fatalf("address not deleted: %d left", len(addresses))
	}
}
