package services

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/catalog"
	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/types"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var ErrProductNotFound = errors.New("产品不存在")

const defaultSeedStock = 100

// ProductService serves catalog reads and bridges them to the persisted
// product rows that carry stock and sales counters.
type ProductService interface {
	Seed(ctx context.Context) error
	List(category, sortBy string) []catalog.Product
	Get(id string) (catalog.Product, bool)
	Categories() []catalog.Category
	Featured() []catalog.Product
	Related(id string, limit int) []catalog.Product
	Search(keyword string) []catalog.Product
	Compare(ids []string) (*catalog.Comparison, error)
	Stock(ctx context.Context, sku string) (int, error)
	CheckStock(ctx context.Context, sku string, quantity int) (bool, error)
}

type productService struct {
	catalog     *catalog.Catalog
	productRepo repos.ProductRepo
	log         *logger.Logger
}

func NewProductService(c *catalog.Catalog, productRepo repos.ProductRepo, baseLog *logger.Logger) ProductService {
	return &productService{
		catalog:     c,
		productRepo: productRepo,
		log:         baseLog.With("service", "ProductService"),
	}
}

// Seed populates the product table from the catalog on first boot. An
// already-populated table is left untouched so stock survives restarts.
func (ps *productService) Seed(ctx context.Context) error {
	count, err := ps.productRepo.Count(ctx, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		ps.log.Debug("Product table already seeded", "count", count)
		return nil
	}

	rows := make([]*types.Product, 0, len(ps.catalog.All()))
	for _, p := range ps.catalog.All() {
		row, err := toProductRow(p)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	if err := ps.productRepo.Create(ctx, nil, rows); err != nil {
		return err
	}
	ps.log.Info("Seeded product table", "count", len(rows))
	return nil
}

func (ps *productService) List(category, sortBy string) []catalog.Product {
	return ps.catalog.List(category, sortBy)
}

func (ps *productService) Get(id string) (catalog.Product, bool) {
	return ps.catalog.ByID(id)
}

func (ps *productService) Categories() []catalog.Category {
	return ps.catalog.Categories()
}

func (ps *productService) Featured() []catalog.Product {
	return ps.catalog.Featured()
}

func (ps *productService) Related(id string, limit int) []catalog.Product {
	return ps.catalog.Related(id, limit)
}

func (ps *productService) Search(keyword string) []catalog.Product {
	return ps.catalog.Search(keyword)
}

func (ps *productService) Compare(ids []string) (*catalog.Comparison, error) {
	return ps.catalog.Compare(ids)
}

func (ps *productService) Stock(ctx context.Context, sku string) (int, error) {
	product, err := ps.productRepo.GetBySKU(ctx, nil, sku)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	return product.Stock, nil
}

func (ps *productService) CheckStock(ctx context.Context, sku string, quantity int) (bool, error) {
	stock, err := ps.Stock(ctx, sku)
	if err != nil {
		return false, err
	}
	return stock >= quantity, nil
}

func toProductRow(p catalog.Product) (*types.Product, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, err
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return nil, err
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, err
	}
	problems, err := json.Marshal(p.Problems)
	if err != nil {
		return nil, err
	}
	groups, err := json.Marshal(p.UserGroups)
	if err != nil {
		return nil, err
	}
	suitable, err := json.Marshal(p.SuitableFor)
	if err != nil {
		return nil, err
	}
	specs, err := json.Marshal(map[string]string{
		"power":      p.Power,
		"dimensions": p.Dimensions,
		"weight":     p.Weight,
		"filterLife": p.FilterLife,
	})
	if err != nil {
		return nil, err
	}

	return &types.Product{
		ID:               uuid.New(),
		SKU:              p.ID,
		Name:             p.Name,
		Series:           p.Series,
		Category:         p.Category,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		CADRPM25:         p.CADRPM25,
		CADRFormaldehyde: p.CADRFormaldehyde,
		ApplicableArea:   p.ApplicableArea,
		AreaMin:          p.AreaMin,
		AreaMax:          p.AreaMax,
		NoiseRange:       p.NoiseRange,
		MainImage:        p.MainImage,
		Images:           datatypes.JSON(images),
		Specs:            datatypes.JSON(specs),
		Features:         datatypes.JSON(features),
		Tags:             datatypes.JSON(tags),
		Problems:         datatypes.JSON(problems),
		UserGroups:       datatypes.JSON(groups),
		SuitableFor:      datatypes.JSON(suitable),
		Stock:            defaultSeedStock,
		Sales:            p.Sales,
		Rating:           p.Rating,
		ReviewCount:      p.Reviews,
		Badge:            p.Badge,
		BadgeColor:       p.BadgeColor,
		IsActive:         true,
	}, nil
}
