package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/internal/service"
)

// ClientServicer интерфейс исключительно для моков.
type ClientServicer interface {
	Register(ctx context.Context, args service.RegisterClientArgs) (*domain.Client, string, error)
	Login(ctx context.Context, args service.LoginClientArgs) (*domain.Client, string, error)
	GetByID(ctx context.Context, clientID int64) (*domain.Client, error)
	Update(ctx context.Context, clientID int64, args service.UpdateClientArgs) (*domain.Client, error)
}

type EstablishmentServicer interface {
	Create(
		ctx context.Context,
		ownerClientID int64,
		args service.CreateEstablishmentArgs,
	) (*domain.Establishment, error)
	List(ctx context.Context, filter repoargs.EstablishmentFilter) ([]domain.Establishment, error)
	GetWithProducts(ctx context.Context, id int64) (*service.EstablishmentDetails, error)
	MyStore(ctx context.Context, ownerClientID int64) (*service.EstablishmentDetails, error)
	UpdateMyStore(
		ctx context.Context,
		ownerClientID int64,
		args repoargs.UpdateEstablishment,
	) (*service.EstablishmentDetails, error)
	CreateProduct(ctx context.Context, ownerClientID int64, args service.CreateProductArgs) (*domain.Product, error)
	UpdateProduct(
		ctx context.Context,
		ownerClientID int64,
		productID int64,
		args repoargs.UpdateProduct,
	) (*domain.Product, error)
	DeleteProduct(ctx context.Context, ownerClientID int64, productID int64) error
}

type OrderServicer interface {
	Create(
		ctx context.Context,
		clientID int64,
		establishmentID int64,
		items []service.OrderItemInput,
	) (*service.OrderDetails, error)
	GetByClientID(ctx context.Context, clientID int64) ([]service.OrderDetails, error)
	GetStoreOrders(ctx context.Context, ownerClientID int64) ([]service.OrderDetails, error)
	SetStatus(
		ctx context.Context,
		ownerClientID int64,
		orderID int64,
		status domain.OrderStatusType,
	) (*service.OrderDetails, error)
	Complete(ctx context.Context, ownerClientID int64, orderID int64) (*service.OrderDetails, error)
	CreatePayment(
		ctx context.Context,
		clientID int64,
		orderID int64,
		amount decimal.Decimal,
		method string,
	) (*domain.Payment, error)
}

type PointsServicer interface {
	EstablishmentPoints(ctx context.Context, clientID int64, establishmentID int64) (int64, error)
	PointsFromOrders(
		ctx context.Context,
		clientID int64,
		establishmentID int64,
	) (*repoargs.OrdersPointsSum, error)
	AllUserPoints(ctx context.Context, clientID int64) (int64, error)
}
