package service

import (
	"context"

	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/pkg/uow"
)

// PointsService отдает три намеренно разных среза баллов. Они не сверяются между собой:
//   - EstablishmentPoints - бухгалтерский срез по журналу, только завершенные заказы;
//   - PointsFromOrders - сырая сумма points_generated по всем заказам вне зависимости
//     от статуса, операционный/отладочный срез;
//   - AllUserPoints - кешированный глобальный баланс с записи клиента.
//
// Выбор среза - ответственность вызывающего.
type PointsService struct {
	uow        uow.UOW
	pointsRepo PointsTransactionRepository
	orderRepo  OrderRepository
	clientRepo ClientRepository
}

func NewPointsService(u uow.UOW) (*PointsService, error) {
	pointsRepo, pointsRepoErr :=
		uow.GetRepositoryAs[PointsTransactionRepository](u, uow.RepositoryName(repoargs.PointsTransactionRepoName))
	if pointsRepoErr != nil {
		return nil, pointsRepoErr
	}
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	clientRepo, clientRepoErr :=
		uow.GetRepositoryAs[ClientRepository](u, uow.RepositoryName(repoargs.ClientRepoName))
	if clientRepoErr != nil {
		return nil, clientRepoErr
	}
	return &PointsService{
		uow:        u,
		pointsRepo: pointsRepo,
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
	}, nil
}

// EstablishmentPoints - баланс клиента в заведении по журналу баллов:
// сумма начислений минус сумма списаний, отрицательный итог прижимается к нулю.
func (s *PointsService) EstablishmentPoints(
	ctx context.Context,
	clientID int64,
	establishmentID int64,
) (int64, error) {
	ledger, err := s.pointsRepo.LedgerForEstablishment(ctx, clientID, establishmentID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	points := ledger.GainPoints - ledger.LossPoints
	if points < 0 {
		points = 0
	}
	return points, nil
}

// PointsFromOrders - сумма points_generated по всем заказам клиента в заведении,
// включая незавершенные и отмененные, плюс количество заказов.
func (s *PointsService) PointsFromOrders(
	ctx context.Context,
	clientID int64,
	establishmentID int64,
) (*repoargs.OrdersPointsSum, error) {
	sum, err := s.orderRepo.SumPointsGenerated(ctx, clientID, establishmentID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return sum, nil
}

// AllUserPoints - кешированный глобальный баланс клиента по всем заведениям.
func (s *PointsService) AllUserPoints(ctx context.Context, clientID int64) (int64, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return client.PointsBalance, nil
}
