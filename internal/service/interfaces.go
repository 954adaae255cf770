package service

import (
	"context"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type ClientRepository interface {
	CreateClient(ctx context.Context, args repoargs.CreateClient) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	UpdateClient(ctx context.Context, id int64, args repoargs.UpdateClient) (*domain.Client, error)
	AddPointsBalance(ctx context.Context, clientID int64, points int64) error
	GetSummariesByIDs(ctx context.Context, ids []int64) (map[int64]repoargs.ClientSummary, error)
}

type EstablishmentRepository interface {
	Create(ctx context.Context, args repoargs.CreateEstablishment) (*domain.Establishment, error)
	FindByID(ctx context.Context, id int64) (*domain.Establishment, error)
	FindByOwnerClientID(ctx context.Context, ownerClientID int64) (*domain.Establishment, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateEstablishment) (*domain.Establishment, error)
	List(ctx context.Context, filter repoargs.EstablishmentFilter) ([]domain.Establishment, error)
	GetSummariesByIDs(ctx context.Context, ids []int64) (map[int64]repoargs.EstablishmentSummary, error)
}

type ProductRepository interface {
	Create(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error)
	Update(ctx context.Context, id int64, establishmentID int64, args repoargs.UpdateProduct) (*domain.Product, error)
	Delete(ctx context.Context, id int64, establishmentID int64) error
	GetByEstablishmentID(ctx context.Context, establishmentID int64, onlyActive bool) ([]domain.Product, error)
	GetActiveByIDs(ctx context.Context, establishmentID int64, ids []int64) ([]domain.Product, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindClientOrder(ctx context.Context, id int64, clientID int64) (*domain.Order, error)
	FindEstablishmentOrder(ctx context.Context, id int64, establishmentID int64) (*domain.Order, error)
	GetByClientID(ctx context.Context, clientID int64) ([]domain.Order, error)
	GetByEstablishmentID(ctx context.Context, establishmentID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) (*domain.Order, error)
	CompleteIfReady(ctx context.Context, id int64) (*domain.Order, error)
	SumPointsGenerated(ctx context.Context, clientID int64, establishmentID int64) (*repoargs.OrdersPointsSum, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error)
	GetByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]domain.Payment, error)
}

type PointsTransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreatePointsTransaction) (*domain.PointsTransaction, error)
	LedgerForEstablishment(
		ctx context.Context,
		clientID int64,
		establishmentID int64,
	) (*repoargs.LedgerAggregation, error)
}
