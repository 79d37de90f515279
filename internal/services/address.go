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

type AddressInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Province  string `json:"province"`
	City      string `json:"city"`
	District  string `json:"district"`
	Detail    string `json:"detail"`
	IsDefault bool   `json:"is_default"`
}

type AddressService interface {
	Create(ctx context.Context, userID uuid.UUID, input AddressInput) (*types.Address, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Address, error)
	Update(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*types.Address, error)
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) error
}

type addressService struct {
	db          *gorm.DB
	addressRepo repos.AddressRepo
	log         *logger.Logger
}

func NewAddressService(db *gorm.DB, addressRepo repos.AddressRepo, baseLog *logger.Logger) AddressService {
	return &addressService{
		db:          db,
		addressRepo: addressRepo,
		log:         baseLog.With("service", "AddressService"),
	}
}

func (as *addressService) Create(ctx context.Context, userID uuid.UUID, input AddressInput) (*types.Address, error) {
	address := &types.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Phone:     input.Phone,
		Province:  input.Province,
		City:      input.City,
		District:  input.District,
		Detail:    input.Detail,
		IsDefault: input.IsDefault,
	}
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.IsDefault {
			if err := as.addressRepo.ClearDefault(ctx, tx, userID); err != nil {
				return err
			}
		}
		return as.addressRepo.Create(ctx, tx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (as *addressService) List(ctx context.Context, userID uuid.UUID) ([]*types.Address, error) {
	return as.addressRepo.ListByUser(ctx, nil, userID)
}

func (as *addressService) Update(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*types.Address, error) {
	address, err := as.addressRepo.GetByID(ctx, nil, userID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, err
	}

	address.Name = input.Name
	address.Phone = input.Phone
	address.Province = input.Province
	address.City = input.City
	address.District = input.District
	address.Detail = input.Detail

	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.IsDefault && !address.IsDefault {
			if err := as.addressRepo.ClearDefault(ctx, tx, userID); err != nil {
				return err
			}
			address.IsDefault = true
		}
		return as.addressRepo.Update(ctx, tx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (as *addressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	return as.addressRepo.Delete(ctx, nil, userID, addressID)
}

func (as *addressService) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := as.addressRepo.GetByID(ctx, nil, userID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAddressNotFound
	}
	if err != nil {
		return err
	}

	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.addressRepo.ClearDefault(ctx, tx, userID); err != nil {
			return err
		}
		address.IsDefault = true
		return as.addressRepo.Update(ctx, tx, address)
	})
}
