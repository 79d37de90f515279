package catalog

import (
	"errors"
	"sort"
	"strings"
)

// Catalog is the in-memory reference catalog: the marketing-side product
// data served by the list/detail/compare/search endpoints. It is immutable
// after construction; every accessor returns copies.
type Catalog struct {
	products   []Product
	categories []Category
}

type Product struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Series           string      `json:"series"`
	Category         string      `json:"category"`
	Price            float64     `json:"price"`
	OriginalPrice    float64     `json:"original_price"`
	Discount         string      `json:"discount,omitempty"`
	CADRPM25         int         `json:"cadr_pm25,omitempty"`
	CADRFormaldehyde int         `json:"cadr_formaldehyde,omitempty"`
	ApplicableArea   string      `json:"applicable_area,omitempty"`
	AreaMin          int         `json:"-"`
	AreaMax          int         `json:"-"`
	NoiseRange       string      `json:"noise_range,omitempty"`
	Power            string      `json:"power,omitempty"`
	Dimensions       string      `json:"dimensions,omitempty"`
	Weight           string      `json:"weight,omitempty"`
	FilterLife       string      `json:"filter_life,omitempty"`
	Features         []string    `json:"features"`
	Highlights       []Highlight `json:"highlights,omitempty"`
	SuitableFor      []string    `json:"suitable_for,omitempty"`
	Problems         []string    `json:"problems,omitempty"`
	UserGroups       []string    `json:"user_groups,omitempty"`
	ApplicableModels []string    `json:"applicable_models,omitempty"`
	Images           []string    `json:"images,omitempty"`
	MainImage        string      `json:"main_image"`
	Rating           float64     `json:"rating"`
	Reviews          int         `json:"reviews"`
	Sales            int         `json:"sales"`
	Tags             []string    `json:"tags"`
	Badge            string      `json:"badge,omitempty"`
	BadgeColor       string      `json:"badge_color,omitempty"`
}

type Highlight struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Comparison holds a side-by-side view of two or more products.
type Comparison struct {
	Products   []Product   `json:"products"`
	Dimensions []Dimension `json:"dimensions"`
}

type Dimension struct {
	Name   string        `json:"name"`
	Key    string        `json:"key"`
	Unit   string        `json:"unit"`
	Values []interface{} `json:"values"`
	Best   string        `json:"best,omitempty"`
}

// ErrNotEnoughProducts is returned by Compare when fewer than two of the
// requested IDs resolve to catalog products.
var ErrNotEnoughProducts = errors.New("至少需要2个产品进行对比")

func New() *Catalog {
	return &Catalog{
		products:   defaultProducts(),
		categories: defaultCategories(),
	}
}

func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Purifiers returns the purifier units (home and car categories), the set
// the guided recommendation scores over. Accessories carry no
// problem-coverage data and are excluded.
func (c *Catalog) Purifiers() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == "home" || p.Category == "car" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Featured() []Product {
	featured := map[string]bool{"mini-01": true, "pro-01": true, "max-01": true}
	var out []Product
	for _, p := range c.products {
		if featured[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// List filters by category ("" or "all" means everything) and sorts by
// price_asc, price_desc, rating or sales; any other value keeps catalog
// order.
func (c *Catalog) List(category, sortBy string) []Product {
	var out []Product
	for _, p := range c.products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	switch sortBy {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case "sales":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	}
	return out
}

// Related ranks other products by shared category (+2) and shared problem
// coverage (+1 each) and returns the top matches.
func (c *Catalog) Related(id string, limit int) []Product {
	current, ok := c.ByID(id)
	if !ok {
		return nil
	}
	currentProblems := toSet(current.Problems)

	type scored struct {
		product Product
		score   int
	}
	var related []scored
	for _, p := range c.products {
		if p.ID == id {
			continue
		}
		score := 0
		if p.Category == current.Category {
			score += 2
		}
		for _, prob := range p.Problems {
			if currentProblems[prob] {
				score++
			}
		}
		if score > 0 {
			related = append(related, scored{product: p, score: score})
		}
	}
	sort.SliceStable(related, func(i, j int) bool { return related[i].score > related[j].score })

	if limit > len(related) {
		limit = len(related)
	}
	out := make([]Product, 0, limit)
	for _, r := range related[:limit] {
		out = append(out, r.product)
	}
	return out
}

// Search matches the keyword against name, series and tags.
func (c *Catalog) Search(keyword string) []Product {
	keyword = strings.ToLower(keyword)
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), keyword) ||
			strings.Contains(strings.ToLower(p.Series), keyword) ||
			anyContains(p.Tags, keyword) {
			out = append(out, p)
		}
	}
	return out
}

// Compare builds the six-dimension comparison table. IDs that do not
// resolve are skipped; fewer than two valid products is an error.
func (c *Catalog) Compare(ids []string) (*Comparison, error) {
	var products []Product
	for _, id := range ids {
		if p, ok := c.ByID(id); ok {
			products = append(products, p)
		}
	}
	if len(products) < 2 {
		return nil, ErrNotEnoughProducts
	}

	dims := []Dimension{
		{Name: "价格", Key: "price", Unit: "元", Best: "low"},
		{Name: "PM2.5 CADR", Key: "cadr_pm25", Unit: "m³/h", Best: "high"},
		{Name: "甲醛 CADR", Key: "cadr_formaldehyde", Unit: "m³/h", Best: "high"},
		{Name: "适用面积", Key: "applicable_area"},
		{Name: "噪音范围", Key: "noise_range", Best: "low"},
		{Name: "用户评分", Key: "rating", Unit: "分", Best: "high"},
	}
	for i := range dims {
		dims[i].Values = make([]interface{}, 0, len(products))
	}
	for _, p := range products {
		dims[0].Values = append(dims[0].Values, p.Price)
		dims[1].Values = append(dims[1].Values, p.CADRPM25)
		dims[2].Values = append(dims[2].Values, p.CADRFormaldehyde)
		dims[3].Values = append(dims[3].Values, orDash(p.ApplicableArea))
		dims[4].Values = append(dims[4].Values, orDash(p.NoiseRange))
		dims[5].Values = append(dims[5].Values, p.Rating)
	}

	return &Comparison{Products: products, Dimensions: dims}, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func anyContains(values []string, keyword string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), keyword) {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
