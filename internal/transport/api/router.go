package api

import (
	"time"

	"github.com/fsdevblog/fidelize/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute = "/auth/register"
	LoginRoute    = "/auth/login"

	MeRoute                  = "/clients/me"
	AllPointsRoute           = "/clients/me/points"
	EstablishmentsRoute      = "/establishments"
	EstablishmentRoute       = "/establishments/:establishmentID"
	EstablishmentPointsRoute = "/establishments/:establishmentID/points"
	PointsFromOrdersRoute    = "/establishments/:establishmentID/points/orders"

	MyStoreRoute         = "/my-store"
	MyStoreProductsRoute = "/my-store/products"
	MyStoreProductRoute  = "/my-store/products/:productID"
	StoreOrdersRoute     = "/my-store/orders"

	OrdersRoute        = "/orders"
	OrderStatusRoute   = "/orders/:orderID/status"
	OrderCompleteRoute = "/orders/:orderID/complete"
	OrderPaymentsRoute = "/orders/:orderID/payments"
)

type RouterArgs struct {
	Logger               *logrus.Logger
	ClientService        ClientServicer
	EstablishmentService EstablishmentServicer
	OrderService         OrderServicer
	PointsService        PointsServicer
	JWTSecretKey         []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.ClientService)
	clientsHandler := NewClientsHandler(args.ClientService, args.PointsService)
	establishmentsHandler := NewEstablishmentsHandler(args.EstablishmentService)
	ordersHandler := NewOrdersHandler(args.OrderService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// каталог заведений публичный.
	api.GET(EstablishmentsRoute, establishmentsHandler.List)
	api.GET(EstablishmentRoute, establishmentsHandler.Show)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного клиента.
	api.GET(MeRoute, clientsHandler.Me)
	api.PUT(MeRoute, clientsHandler.UpdateMe)
	api.GET(AllPointsRoute, clientsHandler.AllPoints)
	api.GET(EstablishmentPointsRoute, clientsHandler.EstablishmentPoints)
	api.GET(PointsFromOrdersRoute, clientsHandler.PointsFromOrders)

	api.POST(EstablishmentsRoute, establishmentsHandler.Create)
	api.GET(MyStoreRoute, establishmentsHandler.MyStore)
	api.PUT(MyStoreRoute, establishmentsHandler.UpdateMyStore)
	api.POST(MyStoreProductsRoute, establishmentsHandler.CreateProduct)
	api.PUT(MyStoreProductRoute, establishmentsHandler.UpdateProduct)
	api.DELETE(MyStoreProductRoute, establishmentsHandler.DeleteProduct)
	api.GET(StoreOrdersRoute, ordersHandler.StoreOrders)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.MyOrders)
	api.PUT(OrderStatusRoute, ordersHandler.SetStatus)
	api.POST(OrderCompleteRoute, ordersHandler.Complete)
	api.POST(OrderPaymentsRoute, ordersHandler.CreatePayment)

	return r, nil
}
