package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
	"github.com/shopspring/decimal"
)

type EstablishmentService struct {
	uow               uow.UOW
	establishmentRepo EstablishmentRepository
	productRepo       ProductRepository
}

func NewEstablishmentService(u uow.UOW) (*EstablishmentService, error) {
	establishmentRepo, estRepoErr :=
		uow.GetRepositoryAs[EstablishmentRepository](u, uow.RepositoryName(repoargs.EstablishmentRepoName))
	if estRepoErr != nil {
		return nil, estRepoErr
	}
	productRepo, productRepoErr :=
		uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if productRepoErr != nil {
		return nil, productRepoErr
	}
	return &EstablishmentService{
		uow:               u,
		establishmentRepo: establishmentRepo,
		productRepo:       productRepo,
	}, nil
}

// EstablishmentDetails - заведение вместе с его товарами, читательский срез.
type EstablishmentDetails struct {
	Establishment domain.Establishment
	Products      []domain.Product
}

type CreateEstablishmentArgs struct {
	Name        string
	Description string
	Category    string
	Address     string
}

// Create создает заведение, владельцем становится вызывающий клиент. Владение
// моделируется уникальной колонкой owner_client_id: попытка создать второе заведение
// дает domain.ErrDuplicateKey.
func (s *EstablishmentService) Create(
	ctx context.Context,
	ownerClientID int64,
	args CreateEstablishmentArgs,
) (*domain.Establishment, error) {
	establishment, err := s.establishmentRepo.Create(ctx, repoargs.CreateEstablishment{
		OwnerClientID: ownerClientID,
		Name:          args.Name,
		Description:   args.Description,
		Category:      args.Category,
		Address:       args.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("creating establishment: %w", err)
	}
	return establishment, nil
}

func (s *EstablishmentService) List(
	ctx context.Context,
	filter repoargs.EstablishmentFilter,
) ([]domain.Establishment, error) {
	establishments, err := s.establishmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return establishments, nil
}

// GetWithProducts - публичная карточка заведения: только активные товары.
func (s *EstablishmentService) GetWithProducts(ctx context.Context, id int64) (*EstablishmentDetails, error) {
	establishment, estErr := s.establishmentRepo.FindByID(ctx, id)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	products, productsErr := s.productRepo.GetByEstablishmentID(ctx, id, true)
	if productsErr != nil {
		return nil, productsErr //nolint:wrapcheck
	}
	return &EstablishmentDetails{
		Establishment: *establishment,
		Products:      products,
	}, nil
}

// MyStore возвращает заведение владельца со всеми товарами, включая неактивные.
// Если клиент не владеет заведением - domain.ErrRecordNotFound.
func (s *EstablishmentService) MyStore(ctx context.Context, ownerClientID int64) (*EstablishmentDetails, error) {
	establishment, estErr := s.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	products, productsErr := s.productRepo.GetByEstablishmentID(ctx, establishment.ID, false)
	if productsErr != nil {
		return nil, productsErr //nolint:wrapcheck
	}
	return &EstablishmentDetails{
		Establishment: *establishment,
		Products:      products,
	}, nil
}

func (s *EstablishmentService) UpdateMyStore(
	ctx context.Context,
	ownerClientID int64,
	args repoargs.UpdateEstablishment,
) (*EstablishmentDetails, error) {
	establishment, estErr := s.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	updated, updateErr := s.establishmentRepo.Update(ctx, establishment.ID, args)
	if updateErr != nil {
		return nil, fmt.Errorf("updating establishment: %w", updateErr)
	}
	products, productsErr := s.productRepo.GetByEstablishmentID(ctx, updated.ID, false)
	if productsErr != nil {
		return nil, productsErr //nolint:wrapcheck
	}
	return &EstablishmentDetails{
		Establishment: *updated,
		Products:      products,
	}, nil
}

type CreateProductArgs struct {
	Name        string
	Description string
	Price       decimal.Decimal
	IsActive    bool
}

func (s *EstablishmentService) CreateProduct(
	ctx context.Context,
	ownerClientID int64,
	args CreateProductArgs,
) (*domain.Product, error) {
	establishment, estErr := s.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	product, createErr := s.productRepo.Create(ctx, repoargs.CreateProduct{
		EstablishmentID: establishment.ID,
		Name:            args.Name,
		Description:     args.Description,
		Price:           args.Price,
		IsActive:        args.IsActive,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating product: %w", createErr)
	}
	return product, nil
}

// UpdateProduct обновляет товар заведения владельца. Изменение цены не влияет на
// unit_price уже созданных заказов - там цена зафиксирована на момент заказа.
func (s *EstablishmentService) UpdateProduct(
	ctx context.Context,
	ownerClientID int64,
	productID int64,
	args repoargs.UpdateProduct,
) (*domain.Product, error) {
	establishment, estErr := s.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return nil, estErr //nolint:wrapcheck
	}
	product, updateErr := s.productRepo.Update(ctx, productID, establishment.ID, args)
	if updateErr != nil {
		return nil, fmt.Errorf("updating product: %w", updateErr)
	}
	return product, nil
}

func (s *EstablishmentService) DeleteProduct(ctx context.Context, ownerClientID int64, productID int64) error {
	establishment, estErr := s.establishmentRepo.FindByOwnerClientID(ctx, ownerClientID)
	if estErr != nil {
		return estErr //nolint:wrapcheck
	}
	if deleteErr := s.productRepo.Delete(ctx, productID, establishment.ID); deleteErr != nil {
		return fmt.Errorf("deleting product: %w", deleteErr)
	}
	return nil
}
