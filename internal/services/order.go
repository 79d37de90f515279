package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/snowflake"
	"github.com/senxilab/senxi-backend/internal/types"
)

var (
	ErrOrderNotFound      = errors.New("订单不存在")
	ErrEmptyOrder         = errors.New("订单中没有商品")
	ErrInvalidOrderStatus = errors.New("当前订单状态不允许该操作")
	ErrAddressNotFound    = errors.New("收货地址不存在")
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderInput carries everything needed to place an order. Receiver
// fields are resolved from AddressID when it is set.
type CreateOrderInput struct {
	Items           []OrderItemInput
	AddressID       *uuid.UUID
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	Remark          string
	ClearCart       bool
}

type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*types.Order, error)
	CheckoutCart(ctx context.Context, userID uuid.UUID, addressID *uuid.UUID, remark string) (*types.Order, error)
	List(ctx context.Context, userID uuid.UUID, status string) ([]*types.Order, error)
	Get(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error)
	Pay(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error)
	Ship(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error)
	Cancel(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error)
	Confirm(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error)
}

type orderService struct {
	db          *gorm.DB
	orderRepo   repos.OrderRepo
	productRepo repos.ProductRepo
	cartRepo    repos.CartRepo
	addressRepo repos.AddressRepo
	userRepo    repos.UserRepo
	log         *logger.Logger
}

func NewOrderService(db *gorm.DB, orderRepo repos.OrderRepo, productRepo repos.ProductRepo, cartRepo repos.CartRepo, addressRepo repos.AddressRepo, userRepo repos.UserRepo, baseLog *logger.Logger) OrderService {
	return &orderService{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		log:         baseLog.With("service", "OrderService"),
	}
}

// Create places an order. Stock for every line is decremented with a
// conditional update inside one transaction, so either the whole order is
// placed or nothing changes.
func (os *orderService) Create(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*types.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	if input.AddressID != nil {
		address, err := os.addressRepo.GetByID(ctx, nil, userID, *input.AddressID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		if err != nil {
			return nil, err
		}
		input.ReceiverName = address.Name
		input.ReceiverPhone = address.Phone
		input.ReceiverAddress = address.Province + address.City + address.District + address.Detail
	}

	var order *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order = &types.Order{
			ID:              uuid.New(),
			OrderNo:         "ORD" + snowflake.NextString(),
			UserID:          userID,
			Status:          types.OrderStatusPending,
			ReceiverName:    input.ReceiverName,
			ReceiverPhone:   input.ReceiverPhone,
			ReceiverAddress: input.ReceiverAddress,
			Remark:          input.Remark,
		}

		for _, line := range input.Items {
			if line.Quantity < 1 {
				line.Quantity = 1
			}
			product, err := os.productRepo.GetBySKU(ctx, tx, line.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			if err != nil {
				return err
			}

			ok, err := os.productRepo.ReduceStock(ctx, tx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}

			subtotal := product.Price * float64(line.Quantity)
			order.Items = append(order.Items, types.OrderItem{
				ID:           uuid.New(),
				OrderID:      order.ID,
				ProductSKU:   product.SKU,
				ProductName:  product.Name,
				ProductImage: product.MainImage,
				Price:        product.Price,
				Quantity:     line.Quantity,
				Subtotal:     subtotal,
			})
			order.TotalAmount += subtotal
		}
		order.FinalAmount = order.TotalAmount - order.DiscountAmount

		if err := os.orderRepo.Create(ctx, tx, order); err != nil {
			return err
		}

		if input.ClearCart {
			return os.cartRepo.DeleteByUser(ctx, tx, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	os.log.Info("Order created", "order_no", order.OrderNo, "user_id", userID, "amount", order.FinalAmount)
	return order, nil
}

// CheckoutCart turns the whole cart into an order and empties it.
func (os *orderService) CheckoutCart(ctx context.Context, userID uuid.UUID, addressID *uuid.UUID, remark string) (*types.Order, error) {
	items, err := os.cartRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	input := CreateOrderInput{
		AddressID: addressID,
		Remark:    remark,
		ClearCart: true,
	}
	for _, item := range items {
		input.Items = append(input.Items, OrderItemInput{
			ProductID: item.ProductSKU,
			Quantity:  item.Quantity,
		})
	}
	return os.Create(ctx, userID, input)
}

func (os *orderService) List(ctx context.Context, userID uuid.UUID, status string) ([]*types.Order, error) {
	return os.orderRepo.ListByUser(ctx, nil, userID, status)
}

func (os *orderService) Get(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error) {
	order, err := os.orderRepo.GetByOrderNo(ctx, nil, userID, orderNo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// Pay marks a pending order paid and credits one point per yuan.
func (os *orderService) Pay(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error) {
	var order *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = os.orderRepo.GetByOrderNo(ctx, tx, userID, orderNo)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if order.Status != types.OrderStatusPending {
			return ErrInvalidOrderStatus
		}

		now := time.Now()
		order.Status = types.OrderStatusPaid
		order.PaidAt = &now
		if err := os.orderRepo.Update(ctx, tx, order); err != nil {
			return err
		}
		return os.userRepo.AddPoints(ctx, tx, userID, int(order.FinalAmount))
	})
	if err != nil {
		return nil, err
	}
	os.log.Info("Order paid", "order_no", orderNo, "user_id", userID)
	return order, nil
}

// Ship moves a paid order into transit and stamps the shipping time.
func (os *orderService) Ship(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error) {
	var order *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = os.orderRepo.GetByOrderNo(ctx, tx, userID, orderNo)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if order.Status != types.OrderStatusPaid {
			return ErrInvalidOrderStatus
		}

		now := time.Now()
		order.Status = types.OrderStatusShipped
		order.ShippedAt = &now
		return os.orderRepo.Update(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	os.log.Info("Order shipped", "order_no", orderNo, "user_id", userID)
	return order, nil
}

// Cancel voids a pending order and puts the reserved stock back.
func (os *orderService) Cancel(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error) {
	var order *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = os.orderRepo.GetByOrderNo(ctx, tx, userID, orderNo)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if order.Status != types.OrderStatusPending {
			return ErrInvalidOrderStatus
		}

		for _, item := range order.Items {
			if err := os.productRepo.RestoreStock(ctx, tx, item.ProductSKU, item.Quantity); err != nil {
				return err
			}
		}
		order.Status = types.OrderStatusCancelled
		return os.orderRepo.Update(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	os.log.Info("Order cancelled", "order_no", orderNo, "user_id", userID)
	return order, nil
}

// Confirm completes a paid or shipped order.
func (os *orderService) Confirm(ctx context.Context, userID uuid.UUID, orderNo string) (*types.Order, error) {
	order, err := os.orderRepo.GetByOrderNo(ctx, nil, userID, orderNo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.Status != types.OrderStatusPaid && order.Status != types.OrderStatusShipped {
		return nil, ErrInvalidOrderStatus
	}

	now := time.Now()
	order.Status = types.OrderStatusCompleted
	order.CompletedAt = &now
	if err := os.orderRepo.Update(ctx, nil, order); err != nil {
		return nil, err
	}
	return order, nil
}
