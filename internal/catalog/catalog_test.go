package catalog

import (
	"errors"
	"testing"
)

func TestByID(t *testing.T) {
	c := New()
	p, ok := c.ByID("pro-01")
	if !ok {
		t.Fatal("pro-01 not found")
	}
	if p.Category != "home" || p.Price != 2999 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if _, ok := c.ByID("ghost-99"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestPurifiersExcludesAccessories(t *testing.T) {
	c := New()
	for _, p := range c.Purifiers() {
		if p.Category == "accessory" {
			t.Fatalf("accessory %s returned as purifier", p.ID)
		}
	}
	if len(c.Purifiers()) != 5 {
		t.Fatalf("got %d purifiers, want 5", len(c.Purifiers()))
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	c := New()

	home := c.List("home", "")
	for _, p := range home {
		if p.Category != "home" {
			t.Fatalf("category filter leaked %s", p.ID)
		}
	}

	all := c.List("all", "price_asc")
	for i := 1; i < len(all); i++ {
		if all[i].Price < all[i-1].Price {
			t.Fatalf("price_asc out of order at %d: %v > %v", i, all[i-1].Price, all[i].Price)
		}
	}

	byRating := c.List("", "rating")
	for i := 1; i < len(byRating); i++ {
		if byRating[i].Rating > byRating[i-1].Rating {
			t.Fatalf("rating sort out of order at %d", i)
		}
	}
}

func TestRelated(t *testing.T) {
	c := New()
	related := c.Related("pro-01", 3)
	if len(related) != 3 {
		t.Fatalf("got %d related products, want 3", len(related))
	}
	for _, p := range related {
		if p.ID == "pro-01" {
			t.Fatal("product related to itself")
		}
	}

	if got := c.Related("ghost-99", 3); got != nil {
		t.Fatalf("unknown id should have no related products, got %d", len(got))
	}
}

func TestSearch(t *testing.T) {
	c := New()

	if got := c.Search("pro"); len(got) == 0 {
		t.Fatal("series search returned nothing")
	}
	byName := c.Search("森林呼吸")
	if len(byName) != 1 || byName[0].ID != "pro-01" {
		t.Fatalf("name search = %v", byName)
	}
	if got := c.Search("不存在的产品"); len(got) != 0 {
		t.Fatalf("bogus keyword matched %d products", len(got))
	}
}

func TestCompare(t *testing.T) {
	c := New()

	cmp, err := c.Compare([]string{"mini-01", "pro-01", "ghost-99"})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(cmp.Products) != 2 {
		t.Fatalf("got %d products, want 2 (unknown ids skipped)", len(cmp.Products))
	}
	if len(cmp.Dimensions) != 6 {
		t.Fatalf("got %d dimensions, want 6", len(cmp.Dimensions))
	}
	for _, d := range cmp.Dimensions {
		if len(d.Values) != 2 {
			t.Fatalf("dimension %s has %d values, want 2", d.Name, len(d.Values))
		}
	}

	if _, err := c.Compare([]string{"mini-01"}); !errors.Is(err, ErrNotEnoughProducts) {
		t.Fatalf("single product compare err = %v, want ErrNotEnoughProducts", err)
	}
	if _, err := c.Compare([]string{"ghost-1", "ghost-2"}); !errors.Is(err, ErrNotEnoughProducts) {
		t.Fatalf("all-unknown compare err = %v, want ErrNotEnoughProducts", err)
	}
}

func TestFeatured(t *testing.T) {
	c := New()
	featured := c.Featured()
	if len(featured) != 3 {
		t.Fatalf("got %d featured products, want 3", len(featured))
	}
}
