package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/logger"
	"github.com/fsdevblog/fidelize/internal/service"
	"github.com/fsdevblog/fidelize/internal/transport/api/mocks"
	"github.com/fsdevblog/fidelize/internal/transport/api/testutils"
	"github.com/fsdevblog/fidelize/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrdersHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *OrdersHandlerTestSuite) clientToken(clientID int64) string {
	token, err := tokens.GenerateClientJWT(clientID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *OrdersHandlerTestSuite) TestCreateOrder() {
	var currentClientID int64 = 1
	currentClientToken := s.clientToken(currentClientID)

	validPayload := []byte(`{"establishment_id": 7, "items": [{"product_id": 100, "quantity": 2}]}`)
	unknownProductPayload := []byte(`{"establishment_id": 7, "items": [{"product_id": 999, "quantity": 1}]}`)
	emptyItemsPayload := []byte(`{"establishment_id": 7, "items": []}`)
	brokenPayload := []byte(`{"establishment_id":`)

	// Моки
	// Валидный запрос.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), currentClientID, int64(7), []service.OrderItemInput{{ProductID: 100, Quantity: 2}}).
		Return(&service.OrderDetails{
			Order: domain.Order{
				ID:              55,
				ClientID:        currentClientID,
				EstablishmentID: 7,
				Status:          domain.OrderStatusPending,
				TotalAmount:     decimal.RequireFromString("51.00"),
				PointsGenerated: 5,
			},
		}, nil).Times(1)
	// Товар недоступен.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), currentClientID, int64(7), []service.OrderItemInput{{ProductID: 999, Quantity: 1}}).
		Return(nil, domain.ErrProductsUnavailable).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
		jwtToken   string
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			wantStatus: http.StatusCreated,
			jwtToken:   currentClientToken,
		}, {
			name:       "products unavailable",
			payload:    unknownProductPayload,
			wantStatus: http.StatusUnprocessableEntity,
			jwtToken:   currentClientToken,
		}, {
			name:       "empty items",
			payload:    emptyItemsPayload,
			wantStatus: http.StatusUnprocessableEntity,
			jwtToken:   currentClientToken,
		}, {
			name:       "broken json",
			payload:    brokenPayload,
			wantStatus: http.StatusBadRequest,
			jwtToken:   currentClientToken,
		}, {
			name:       "not authorized",
			payload:    validPayload,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   bytes.NewReader(tc.payload),
			}, testutils.WithHeader("Authorization", "Bearer "+tc.jwtToken))
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == http.StatusCreated {
				var body struct {
					Order OrderResponse `json:"order"`
				}
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
				s.Equal(int64(55), body.Order.ID)
				s.Equal(string(domain.OrderStatusPending), body.Order.Status)
				s.Equal(int64(5), body.Order.PointsGenerated)
			}
		})
	}
}

func (s *OrdersHandlerTestSuite) TestSetStatus() {
	var ownerClientID int64 = 1
	ownerToken := s.clientToken(ownerClientID)

	// Заказ двигается по промежуточному статусу.
	s.mockOrderService.EXPECT().
		SetStatus(gomock.Any(), ownerClientID, int64(55), domain.OrderStatusReady).
		Return(&service.OrderDetails{
			Order: domain.Order{ID: 55, Status: domain.OrderStatusReady},
		}, nil).Times(1)
	// Конечный статус, переходов нет.
	s.mockOrderService.EXPECT().
		SetStatus(gomock.Any(), ownerClientID, int64(56), domain.OrderStatusCancelled).
		Return(nil, domain.NewOrderStateError(56, domain.OrderStatusCompleted, "status is terminal")).Times(1)
	// Чужой заказ неотличим от несуществующего.
	s.mockOrderService.EXPECT().
		SetStatus(gomock.Any(), ownerClientID, int64(57), domain.OrderStatusReady).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		orderID    string
		status     string
		wantStatus int
	}{
		{name: "ok", orderID: "55", status: "ready", wantStatus: http.StatusOK},
		{name: "terminal order", orderID: "56", status: "cancelled", wantStatus: http.StatusBadRequest},
		{name: "not owned order", orderID: "57", status: "ready", wantStatus: http.StatusNotFound},
		// completed не входит в допустимые значения, отсекается валидатором.
		{name: "completed directly", orderID: "55", status: "completed", wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown status", orderID: "55", status: "shipped", wantStatus: http.StatusUnprocessableEntity},
		{name: "bad order id", orderID: "abc", status: "ready", wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			payload := fmt.Sprintf(`{"status": %q}`, tc.status)
			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    RouteGroup + "/orders/" + tc.orderID + "/status",
				Body:   bytes.NewReader([]byte(payload)),
			}, testutils.WithHeader("Authorization", "Bearer "+ownerToken))
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestComplete() {
	var ownerClientID int64 = 1
	ownerToken := s.clientToken(ownerClientID)

	s.mockOrderService.EXPECT().
		Complete(gomock.Any(), ownerClientID, int64(55)).
		Return(&service.OrderDetails{
			Order: domain.Order{ID: 55, Status: domain.OrderStatusCompleted, PointsGenerated: 12},
		}, nil).Times(1)
	s.mockOrderService.EXPECT().
		Complete(gomock.Any(), ownerClientID, int64(56)).
		Return(nil, domain.NewOrderStateError(56, domain.OrderStatusPreparing,
			"order must be ready to be completed")).Times(1)
	s.mockOrderService.EXPECT().
		Complete(gomock.Any(), ownerClientID, int64(57)).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		orderID    string
		wantStatus int
	}{
		{name: "ok", orderID: "55", wantStatus: http.StatusOK},
		{name: "not ready", orderID: "56", wantStatus: http.StatusBadRequest},
		{name: "not owned order", orderID: "57", wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/orders/" + tc.orderID + "/complete",
				Body:   nil,
			}, testutils.WithHeader("Authorization", "Bearer "+ownerToken))
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == http.StatusOK {
				var body struct {
					Order OrderResponse `json:"order"`
				}
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
				s.Equal(string(domain.OrderStatusCompleted), body.Order.Status)
				s.Equal(int64(12), body.Order.PointsGenerated)
			}
		})
	}
}

func (s *OrdersHandlerTestSuite) TestCreatePayment() {
	var clientID int64 = 10
	clientToken := s.clientToken(clientID)

	s.mockOrderService.EXPECT().
		CreatePayment(gomock.Any(), clientID, int64(55), gomock.Any(), "credit_card").
		DoAndReturn(func(
			_ any, _ int64, orderID int64, amount decimal.Decimal, method string,
		) (*domain.Payment, error) {
			s.True(amount.Equal(decimal.RequireFromString("59.00")))
			return &domain.Payment{
				ID:            1,
				OrderID:       orderID,
				ClientID:      clientID,
				Amount:        amount,
				Method:        method,
				Status:        domain.PaymentStatusPending,
				TransactionID: "tx_1735000000000_a1b2c3d4e",
			}, nil
		}).Times(1)
	s.mockOrderService.EXPECT().
		CreatePayment(gomock.Any(), clientID, int64(56), gomock.Any(), "pix").
		Return(nil, domain.NewOrderStateError(56, domain.OrderStatusCancelled,
			"cannot create payment for cancelled order")).Times(1)

	cases := []struct {
		name       string
		orderID    string
		payload    string
		wantStatus int
	}{
		{
			name:       "ok",
			orderID:    "55",
			payload:    `{"amount": "59.00", "method": "credit_card"}`,
			wantStatus: http.StatusCreated,
		}, {
			name:       "cancelled order",
			orderID:    "56",
			payload:    `{"amount": "10.00", "method": "pix"}`,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "non positive amount",
			orderID:    "55",
			payload:    `{"amount": "-5.00", "method": "pix"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing method",
			orderID:    "55",
			payload:    `{"amount": "10.00"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/orders/" + tc.orderID + "/payments",
				Body:   bytes.NewReader([]byte(tc.payload)),
			}, testutils.WithHeader("Authorization", "Bearer "+clientToken))
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == http.StatusCreated {
				var body struct {
					Payment PaymentResponse `json:"payment"`
				}
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
				s.Equal(string(domain.PaymentStatusPending), body.Payment.Status)
				s.Regexp(`^tx_\d+_[0-9a-z]{9}$`, body.Payment.TransactionID)
			}
		})
	}
}

func (s *OrdersHandlerTestSuite) TestMyOrders() {
	var clientID int64 = 10
	clientToken := s.clientToken(clientID)

	s.mockOrderService.EXPECT().
		GetByClientID(gomock.Any(), clientID).
		Return([]service.OrderDetails{
			{Order: domain.Order{ID: 2, Status: domain.OrderStatusCompleted}},
			{Order: domain.Order{ID: 1, Status: domain.OrderStatusCancelled}},
		}, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + OrdersRoute,
	}, testutils.WithHeader("Authorization", "Bearer "+clientToken))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Orders []OrderResponse `json:"orders"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body.Orders, 2)
	s.Equal(int64(2), body.Orders[0].ID)
}
