package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/internal/service/mocks"
	"github.com/fsdevblog/fidelize/pkg/uow"
	uowmocks "github.com/fsdevblog/fidelize/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PointsServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockPointsRepo *mocks.MockPointsTransactionRepository
	mockOrderRepo  *mocks.MockOrderRepository
	mockClientRepo *mocks.MockClientRepository
	pointsService  *PointsService
}

func TestPointsServiceSuite(t *testing.T) {
	suite.Run(t, new(PointsServiceTestSuite))
}

func (s *PointsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockPointsRepo = mocks.NewMockPointsTransactionRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockClientRepo = mocks.NewMockClientRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PointsTransactionRepoName)).
		Return(s.mockPointsRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ClientRepoName)).
		Return(s.mockClientRepo, nil).AnyTimes()

	pointsService, servErr := NewPointsService(s.mockUOW)
	s.Require().NoError(servErr)
	s.pointsService = pointsService
}

func (s *PointsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PointsServiceTestSuite) TestEstablishmentPoints() {
	cases := []struct {
		name   string
		ledger repoargs.LedgerAggregation
		want   int64
	}{
		{name: "gain only", ledger: repoargs.LedgerAggregation{GainPoints: 30}, want: 30},
		{name: "gain minus loss", ledger: repoargs.LedgerAggregation{GainPoints: 30, LossPoints: 12}, want: 18},
		{name: "empty ledger", ledger: repoargs.LedgerAggregation{}, want: 0},
		// Отрицательный итог прижимается к нулю.
		{name: "negative clamped", ledger: repoargs.LedgerAggregation{GainPoints: 5, LossPoints: 9}, want: 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			ledger := tc.ledger
			s.mockPointsRepo.EXPECT().
				LedgerForEstablishment(gomock.Any(), int64(10), int64(7)).
				Return(&ledger, nil)

			points, err := s.pointsService.EstablishmentPoints(context.Background(), 10, 7)
			s.Require().NoError(err)
			s.Equal(tc.want, points)
		})
	}
}

func (s *PointsServiceTestSuite) TestPointsFromOrders() {
	// Срез по заказам отдается как есть, статусы заказов здесь не учитываются.
	s.mockOrderRepo.EXPECT().
		SumPointsGenerated(gomock.Any(), int64(10), int64(7)).
		Return(&repoargs.OrdersPointsSum{Points: 42, OrdersCount: 5}, nil)

	sum, err := s.pointsService.PointsFromOrders(context.Background(), 10, 7)
	s.Require().NoError(err)
	s.Equal(int64(42), sum.Points)
	s.Equal(int64(5), sum.OrdersCount)
}

func (s *PointsServiceTestSuite) TestAllUserPoints() {
	s.mockClientRepo.EXPECT().
		FindByID(gomock.Any(), int64(10)).
		Return(&domain.Client{ID: 10, PointsBalance: 77}, nil)

	points, err := s.pointsService.AllUserPoints(context.Background(), 10)
	s.Require().NoError(err)
	s.Equal(int64(77), points)
}

func (s *PointsServiceTestSuite) TestAllUserPointsUnknownClient() {
	s.mockClientRepo.EXPECT().
		FindByID(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.pointsService.AllUserPoints(context.Background(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
