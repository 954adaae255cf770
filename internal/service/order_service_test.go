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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl              *gomock.Controller
	mockUOW               *uowmocks.MockUOW
	mockTX                *uowmocks.MockTX
	mockOrderRepo         *mocks.MockOrderRepository
	mockEstablishmentRepo *mocks.MockEstablishmentRepository
	mockProductRepo       *mocks.MockProductRepository
	mockPaymentRepo       *mocks.MockPaymentRepository
	mockClientRepo        *mocks.MockClientRepository
	mockPointsRepo        *mocks.MockPointsTransactionRepository
	orderService          *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockEstablishmentRepo = mocks.NewMockEstablishmentRepository(s.mockCtrl)
	s.mockProductRepo = mocks.NewMockProductRepository(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)
	s.mockClientRepo = mocks.NewMockClientRepository(s.mockCtrl)
	s.mockPointsRepo = mocks.NewMockPointsTransactionRepository(s.mockCtrl)

	// Моки получения репозиториев из uow. Выполняются в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.EstablishmentRepoName)).
		Return(s.mockEstablishmentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ProductRepoName)).
		Return(s.mockProductRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ClientRepoName)).
		Return(s.mockClientRepo, nil).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTransaction - uow.Do прозрачно выполняет колбек на замоканой транзакции.
func (s *OrderServiceTestSuite) expectTransaction() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *OrderServiceTestSuite) TestCreate() {
	var clientID int64 = 10
	var establishmentID int64 = 1

	s.mockEstablishmentRepo.EXPECT().
		FindByID(gomock.Any(), establishmentID).
		Return(&domain.Establishment{ID: establishmentID, Name: "Cafe Aurora"}, nil)

	products := []domain.Product{
		{ID: 100, EstablishmentID: establishmentID, Price: decimal.RequireFromString("25.50"), IsActive: true},
		{ID: 101, EstablishmentID: establishmentID, Price: decimal.RequireFromString("8.00"), IsActive: true},
	}
	s.mockProductRepo.EXPECT().
		GetActiveByIDs(gomock.Any(), establishmentID, []int64{100, 101}).
		Return(products, nil)

	s.expectTransaction()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil)

	s.mockOrderRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
			s.Equal(clientID, args.ClientID)
			s.Equal(establishmentID, args.EstablishmentID)
			// 25.50*2 + 8.00*1 = 59.00, floor(59.00 / 10) = 5
			s.True(args.TotalAmount.Equal(decimal.RequireFromString("59.00")))
			s.Equal(int64(5), args.PointsGenerated)
			s.Require().Len(args.Items, 2)
			s.True(args.Items[0].UnitPrice.Equal(products[0].Price))
			s.True(args.Items[0].TotalPrice.Equal(decimal.RequireFromString("51.00")))

			return &domain.Order{
				ID:              55,
				ClientID:        args.ClientID,
				EstablishmentID: args.EstablishmentID,
				Status:          domain.OrderStatusPending,
				TotalAmount:     args.TotalAmount,
				PointsGenerated: args.PointsGenerated,
			}, nil
		})

	details, err := s.orderService.Create(context.Background(), clientID, establishmentID, []OrderItemInput{
		{ProductID: 100, Quantity: 2},
		{ProductID: 101, Quantity: 1},
	})
	s.Require().NoError(err)
	s.Equal(int64(55), details.Order.ID)
	s.Equal(domain.OrderStatusPending, details.Order.Status)
	s.Require().NotNil(details.Establishment)
	s.Equal("Cafe Aurora", details.Establishment.Name)
}

func (s *OrderServiceTestSuite) TestCreatePointsPolicy() {
	// 1 балл за каждые полные 10 денежных единиц, дробная часть отбрасывается.
	cases := []struct {
		name       string
		price      string
		wantPoints int64
	}{
		{name: "just below threshold", price: "99.00", wantPoints: 9},
		{name: "exact threshold", price: "100.00", wantPoints: 10},
		{name: "fraction dropped", price: "36.90", wantPoints: 3},
		{name: "below single point", price: "9.99", wantPoints: 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			var establishmentID int64 = 1

			s.mockEstablishmentRepo.EXPECT().
				FindByID(gomock.Any(), establishmentID).
				Return(&domain.Establishment{ID: establishmentID}, nil)
			s.mockProductRepo.EXPECT().
				GetActiveByIDs(gomock.Any(), establishmentID, []int64{100}).
				Return([]domain.Product{
					{ID: 100, Price: decimal.RequireFromString(tc.price), IsActive: true},
				}, nil)

			s.expectTransaction()
			s.mockTX.EXPECT().
				Get(uow.RepositoryName(repoargs.OrderRepoName)).
				Return(s.mockOrderRepo, nil)
			s.mockOrderRepo.EXPECT().
				CreateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
					s.Equal(tc.wantPoints, args.PointsGenerated)
					return &domain.Order{ID: 1, PointsGenerated: args.PointsGenerated}, nil
				})

			_, err := s.orderService.Create(context.Background(), 10, establishmentID, []OrderItemInput{
				{ProductID: 100, Quantity: 1},
			})
			s.Require().NoError(err)
		})
	}
}

func (s *OrderServiceTestSuite) TestCreateEstablishmentMissing() {
	s.mockEstablishmentRepo.EXPECT().
		FindByID(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.orderService.Create(context.Background(), 10, 404, []OrderItemInput{
		{ProductID: 100, Quantity: 1},
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *OrderServiceTestSuite) TestCreateProductsUnavailable() {
	var establishmentID int64 = 1

	cases := []struct {
		name     string
		items    []OrderItemInput
		returned []domain.Product
	}{
		{
			name:     "unknown product",
			items:    []OrderItemInput{{ProductID: 100, Quantity: 1}, {ProductID: 999, Quantity: 1}},
			returned: []domain.Product{{ID: 100, Price: decimal.NewFromInt(5), IsActive: true}},
		}, {
			name:     "duplicate product in cart",
			items:    []OrderItemInput{{ProductID: 100, Quantity: 1}, {ProductID: 100, Quantity: 2}},
			returned: []domain.Product{{ID: 100, Price: decimal.NewFromInt(5), IsActive: true}},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockEstablishmentRepo.EXPECT().
				FindByID(gomock.Any(), establishmentID).
				Return(&domain.Establishment{ID: establishmentID}, nil)
			s.mockProductRepo.EXPECT().
				GetActiveByIDs(gomock.Any(), establishmentID, gomock.Any()).
				Return(tc.returned, nil)

			_, err := s.orderService.Create(context.Background(), 10, establishmentID, tc.items)
			s.Require().ErrorIs(err, domain.ErrProductsUnavailable)
		})
	}
}

func (s *OrderServiceTestSuite) TestComplete() {
	var ownerClientID int64 = 1
	var buyerClientID int64 = 10
	var establishmentID int64 = 7
	var orderID int64 = 55

	s.mockEstablishmentRepo.EXPECT().
		FindByOwnerClientID(gomock.Any(), ownerClientID).
		Return(&domain.Establishment{ID: establishmentID, OwnerClientID: ownerClientID}, nil)
	s.mockOrderRepo.EXPECT().
		FindEstablishmentOrder(gomock.Any(), orderID, establishmentID).
		Return(&domain.Order{ID: orderID, ClientID: buyerClientID, Status: domain.OrderStatusReady}, nil)

	completed := &domain.Order{
		ID:              orderID,
		ClientID:        buyerClientID,
		EstablishmentID: establishmentID,
		Status:          domain.OrderStatusCompleted,
		PointsGenerated: 12,
	}

	s.expectTransaction()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.ClientRepoName)).
		Return(s.mockClientRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PointsTransactionRepoName)).
		Return(s.mockPointsRepo, nil)

	s.mockOrderRepo.EXPECT().
		CompleteIfReady(gomock.Any(), orderID).
		Return(completed, nil).Times(1)
	// Баланс инкрементируется ровно на points_generated заказа и ровно один раз.
	s.mockClientRepo.EXPECT().
		AddPointsBalance(gomock.Any(), buyerClientID, int64(12)).
		Return(nil).Times(1)
	s.mockPointsRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreatePointsTransaction) (*domain.PointsTransaction, error) {
			s.Equal(buyerClientID, args.ClientID)
			s.Equal(orderID, args.OrderID)
			s.Equal(int64(12), args.Points)
			s.Equal(domain.PointsTransactionGain, args.Type)
			return &domain.PointsTransaction{ID: 1}, nil
		}).Times(1)

	// Обогащение результата.
	s.mockPaymentRepo.EXPECT().
		GetByOrderIDs(gomock.Any(), []int64{orderID}).
		Return(map[int64][]domain.Payment{}, nil)
	s.mockClientRepo.EXPECT().
		GetSummariesByIDs(gomock.Any(), []int64{buyerClientID}).
		Return(map[int64]repoargs.ClientSummary{
			buyerClientID: {ID: buyerClientID, Name: "Maria"},
		}, nil)

	details, err := s.orderService.Complete(context.Background(), ownerClientID, orderID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCompleted, details.Order.Status)
	s.Require().NotNil(details.Client)
	s.Equal("Maria", details.Client.Name)
}

func (s *OrderServiceTestSuite) TestCompleteZeroPoints() {
	// Заказ дешевле 10 единиц валюты завершается как любой другой: запись в журнале
	// создается с points = 0, баланс инкрементируется на 0.
	var ownerClientID int64 = 1
	var buyerClientID int64 = 10
	var establishmentID int64 = 7
	var orderID int64 = 56

	s.mockEstablishmentRepo.EXPECT().
		FindByOwnerClientID(gomock.Any(), ownerClientID).
		Return(&domain.Establishment{ID: establishmentID, OwnerClientID: ownerClientID}, nil)
	s.mockOrderRepo.EXPECT().
		FindEstablishmentOrder(gomock.Any(), orderID, establishmentID).
		Return(&domain.Order{ID: orderID, ClientID: buyerClientID, Status: domain.OrderStatusReady}, nil)

	completed := &domain.Order{
		ID:              orderID,
		ClientID:        buyerClientID,
		EstablishmentID: establishmentID,
		Status:          domain.OrderStatusCompleted,
		PointsGenerated: 0,
	}

	s.expectTransaction()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.ClientRepoName)).
		Return(s.mockClientRepo, nil)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PointsTransactionRepoName)).
		Return(s.mockPointsRepo, nil)

	s.mockOrderRepo.EXPECT().
		CompleteIfReady(gomock.Any(), orderID).
		Return(completed, nil).Times(1)
	s.mockClientRepo.EXPECT().
		AddPointsBalance(gomock.Any(), buyerClientID, int64(0)).
		Return(nil).Times(1)
	s.mockPointsRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreatePointsTransaction) (*domain.PointsTransaction, error) {
			s.Equal(int64(0), args.Points)
			s.Equal(domain.PointsTransactionGain, args.Type)
			return &domain.PointsTransaction{ID: 2}, nil
		}).Times(1)

	s.mockPaymentRepo.EXPECT().
		GetByOrderIDs(gomock.Any(), []int64{orderID}).
		Return(map[int64][]domain.Payment{}, nil)
	s.mockClientRepo.EXPECT().
		GetSummariesByIDs(gomock.Any(), []int64{buyerClientID}).
		Return(map[int64]repoargs.ClientSummary{}, nil)

	details, err := s.orderService.Complete(context.Background(), ownerClientID, orderID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCompleted, details.Order.Status)
	s.Equal(int64(0), details.Order.PointsGenerated)
}

func (s *OrderServiceTestSuite) TestCompleteNotReady() {
	var ownerClientID int64 = 1
	var orderID int64 = 55

	s.mockEstablishmentRepo.EXPECT().
		FindByOwnerClientID(gomock.Any(), ownerClientID).
		Return(&domain.Establishment{ID: 7, OwnerClientID: ownerClientID}, nil)
	s.mockOrderRepo.EXPECT().
		FindEstablishmentOrder(gomock.Any(), orderID, int64(7)).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPreparing}, nil)

	s.expectTransaction()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil)

	// Условное обновление не нашло строку в статусе ready.
	s.mockOrderRepo.EXPECT().
		CompleteIfReady(gomock.Any(), orderID).
		Return(nil, domain.ErrRecordNotFound)
	// Ни баланс, ни журнал не трогаются.
	s.mockClientRepo.EXPECT().AddPointsBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockPointsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.orderService.Complete(context.Background(), ownerClientID, orderID)

	var stateErr *domain.OrderStateError
	s.Require().ErrorAs(err, &stateErr)
	s.Equal(orderID, stateErr.OrderID)
	s.Equal(domain.OrderStatusPreparing, stateErr.Status)
}

func (s *OrderServiceTestSuite) TestCompleteNotOwner() {
	s.mockEstablishmentRepo.EXPECT().
		FindByOwnerClientID(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.orderService.Complete(context.Background(), 99, 55)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *OrderServiceTestSuite) TestSetStatus() {
	var ownerClientID int64 = 1
	var establishmentID int64 = 7
	var orderID int64 = 55

	s.mockEstablishmentRepo.EXPECT().
		FindByOwnerClientID(gomock.Any(), ownerClientID).
		Return(&domain.Establishment{ID: establishmentID}, nil)
	s.mockOrderRepo.EXPECT().
		FindEstablishmentOrder(gomock.Any(), orderID, establishmentID).
		Return(&domain.Order{ID: orderID, ClientID: 10, Status: domain.OrderStatusPending}, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, domain.OrderStatusConfirmed).
		Return(&domain.Order{ID: orderID, ClientID: 10, Status: domain.OrderStatusConfirmed}, nil)

	s.mockPaymentRepo.EXPECT().
		GetByOrderIDs(gomock.Any(), []int64{orderID}).
		Return(map[int64][]domain.Payment{}, nil)
	s.mockClientRepo.EXPECT().
		GetSummariesByIDs(gomock.Any(), []int64{10}).
		Return(map[int64]repoargs.ClientSummary{}, nil)

	details, err := s.orderService.SetStatus(context.Background(), ownerClientID, orderID, domain.OrderStatusConfirmed)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusConfirmed, details.Order.Status)
}

func (s *OrderServiceTestSuite) TestSetStatusUnsupported() {
	// completed напрямую не выставляется, только через Complete.
	for _, status := range []domain.OrderStatusType{domain.OrderStatusCompleted, "shipped", ""} {
		_, err := s.orderService.SetStatus(context.Background(), 1, 55, status)
		s.Require().ErrorIs(err, domain.ErrUnsupportedStatus)
	}
}

func (s *OrderServiceTestSuite) TestSetStatusTerminal() {
	var establishmentID int64 = 7
	var orderID int64 = 55

	for _, status := range []domain.OrderStatusType{domain.OrderStatusCompleted, domain.OrderStatusCancelled} {
		s.mockEstablishmentRepo.EXPECT().
			FindByOwnerClientID(gomock.Any(), int64(1)).
			Return(&domain.Establishment{ID: establishmentID}, nil)
		s.mockOrderRepo.EXPECT().
			FindEstablishmentOrder(gomock.Any(), orderID, establishmentID).
			Return(&domain.Order{ID: orderID, Status: status}, nil)

		_, err := s.orderService.SetStatus(context.Background(), 1, orderID, domain.OrderStatusCancelled)

		var stateErr *domain.OrderStateError
		s.Require().ErrorAs(err, &stateErr)
		s.Equal(status, stateErr.Status)
	}
}

func (s *OrderServiceTestSuite) TestSetStatusConcurrentComplete() {
	// Между чтением заказа и UPDATE статус успел стать конечным (конкурентный
	// Complete). Условное обновление не находит строку, completed не перезаписывается.
	var establishmentID int64 = 7
	var orderID int64 = 55

	s.mockEstablishmentRepo.EXPECT().
		FindByOwnerClientID(gomock.Any(), int64(1)).
		Return(&domain.Establishment{ID: establishmentID}, nil)
	s.mockOrderRepo.EXPECT().
		FindEstablishmentOrder(gomock.Any(), orderID, establishmentID).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusReady}, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, domain.OrderStatusPreparing).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.orderService.SetStatus(context.Background(), 1, orderID, domain.OrderStatusPreparing)

	var stateErr *domain.OrderStateError
	s.Require().ErrorAs(err, &stateErr)
	s.Equal(orderID, stateErr.OrderID)
}

func (s *OrderServiceTestSuite) TestCreatePayment() {
	var clientID int64 = 10
	var orderID int64 = 55
	amount := decimal.RequireFromString("59.00")

	s.mockOrderRepo.EXPECT().
		FindClientOrder(gomock.Any(), orderID, clientID).
		Return(&domain.Order{ID: orderID, ClientID: clientID, Status: domain.OrderStatusPending}, nil)

	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
			s.Equal(orderID, args.OrderID)
			s.Equal(clientID, args.ClientID)
			s.True(args.Amount.Equal(amount))
			s.Equal(domain.PaymentStatusPending, args.Status)
			s.Regexp(`^tx_\d+_[0-9a-z]{9}$`, args.TransactionID)
			return &domain.Payment{ID: 1, TransactionID: args.TransactionID}, nil
		})

	payment, err := s.orderService.CreatePayment(context.Background(), clientID, orderID, amount, "credit_card")
	s.Require().NoError(err)
	s.NotEmpty(payment.TransactionID)
}

func (s *OrderServiceTestSuite) TestCreatePaymentCancelledOrder() {
	s.mockOrderRepo.EXPECT().
		FindClientOrder(gomock.Any(), int64(55), int64(10)).
		Return(&domain.Order{ID: 55, Status: domain.OrderStatusCancelled}, nil)

	_, err := s.orderService.CreatePayment(context.Background(), 10, 55, decimal.NewFromInt(10), "pix")

	var stateErr *domain.OrderStateError
	s.Require().ErrorAs(err, &stateErr)
	s.Equal(domain.OrderStatusCancelled, stateErr.Status)
}

func (s *OrderServiceTestSuite) TestCreatePaymentNotOwnOrder() {
	s.mockOrderRepo.EXPECT().
		FindClientOrder(gomock.Any(), int64(55), int64(10)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.orderService.CreatePayment(context.Background(), 10, 55, decimal.NewFromInt(10), "pix")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
