package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/types"
)

var (
	ErrInsufficientStock = errors.New("库存不足")
	ErrCartItemNotFound  = errors.New("购物车中没有该商品")
)

// CartLine is one cart row joined with its current product data.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	Stock     int     `json:"stock"`
}

type CartSummary struct {
	Items       []CartLine `json:"items"`
	TotalCount  int        `json:"total_count"`
	TotalAmount float64    `json:"total_amount"`
}

type CartService interface {
	Add(ctx context.Context, userID uuid.UUID, sku string, quantity int) error
	List(ctx context.Context, userID uuid.UUID) (*CartSummary, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, sku string, quantity int) error
	Remove(ctx context.Context, userID uuid.UUID, sku string) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	cartRepo    repos.CartRepo
	productRepo repos.ProductRepo
	log         *logger.Logger
}

func NewCartService(cartRepo repos.CartRepo, productRepo repos.ProductRepo, baseLog *logger.Logger) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		log:         baseLog.With("service", "CartService"),
	}
}

// Add puts quantity of the product in the cart, merging with any existing
// row. The combined quantity is capped by available stock.
func (cs *cartService) Add(ctx context.Context, userID uuid.UUID, sku string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	product, err := cs.productRepo.GetBySKU(ctx, nil, sku)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	existing, err := cs.cartRepo.GetByUserAndProduct(ctx, nil, userID, sku)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if product.Stock < quantity {
			return ErrInsufficientStock
		}
		return cs.cartRepo.Create(ctx, nil, &types.CartItem{
			ID:         uuid.New(),
			UserID:     userID,
			ProductSKU: sku,
			Quantity:   quantity,
		})
	}
	if err != nil {
		return err
	}

	combined := existing.Quantity + quantity
	if product.Stock < combined {
		return ErrInsufficientStock
	}
	return cs.cartRepo.UpdateQuantity(ctx, nil, existing.ID, combined)
}

func (cs *cartService) List(ctx context.Context, userID uuid.UUID) (*CartSummary, error) {
	items, err := cs.cartRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	skus := make([]string, 0, len(items))
	for _, item := range items {
		skus = append(skus, item.ProductSKU)
	}
	products, err := cs.productRepo.GetBySKUs(ctx, nil, skus)
	if err != nil {
		return nil, err
	}
	bySKU := make(map[string]*types.Product, len(products))
	for _, p := range products {
		bySKU[p.SKU] = p
	}

	summary := &CartSummary{Items: []CartLine{}}
	for _, item := range items {
		product, ok := bySKU[item.ProductSKU]
		if !ok {
			continue
		}
		subtotal := product.Price * float64(item.Quantity)
		summary.Items = append(summary.Items, CartLine{
			ProductID: product.SKU,
			Name:      product.Name,
			Image:     product.MainImage,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
			Stock:     product.Stock,
		})
		summary.TotalCount += item.Quantity
		summary.TotalAmount += subtotal
	}
	return summary, nil
}

func (cs *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, sku string, quantity int) error {
	if quantity < 1 {
		return cs.Remove(ctx, userID, sku)
	}
	item, err := cs.cartRepo.GetByUserAndProduct(ctx, nil, userID, sku)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartItemNotFound
	}
	if err != nil {
		return err
	}
	product, err := cs.productRepo.GetBySKU(ctx, nil, sku)
	if err != nil {
		return err
	}
	if product.Stock < quantity {
		return ErrInsufficientStock
	}
	return cs.cartRepo.UpdateQuantity(ctx, nil, item.ID, quantity)
}

func (cs *cartService) Remove(ctx context.Context, userID uuid.UUID, sku string) error {
	return cs.cartRepo.Delete(ctx, nil, userID, sku)
}

func (cs *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return cs.cartRepo.DeleteByUser(ctx, nil, userID)
}
