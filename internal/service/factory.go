package service

import (
	"fmt"

	"github.com/fsdevblog/fidelize/pkg/uow"
)

type AppServices struct {
	ClientService        *ClientService
	EstablishmentService *EstablishmentService
	OrderService         *OrderService
	PointsService        *PointsService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, hasher PasswordHasher) (*AppServices, error) {
	clientService, clientServiceErr := NewClientService(unitOfWork, jwtSecret, hasher)
	if clientServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", clientServiceErr.Error())
	}

	establishmentService, establishmentServiceErr := NewEstablishmentService(unitOfWork)
	if establishmentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", establishmentServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	pointsService, pointsServiceErr := NewPointsService(unitOfWork)
	if pointsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", pointsServiceErr.Error())
	}

	return &AppServices{
		ClientService:        clientService,
		EstablishmentService: establishmentService,
		OrderService:         orderService,
		PointsService:        pointsService,
	}, nil
}
