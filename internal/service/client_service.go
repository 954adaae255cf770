package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/internal/transport/api/tokens"
	"github.com/fsdevblog/fidelize/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type ClientService struct {
	uow            uow.UOW
	clientRepo     ClientRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewClientService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*ClientService, error) {
	clientRepo, clientRepoErr := uow.GetRepositoryAs[ClientRepository](u, uow.RepositoryName(repoargs.ClientRepoName))
	if clientRepoErr != nil {
		return nil, clientRepoErr
	}
	return &ClientService{
		uow:            u,
		clientRepo:     clientRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterClientArgs struct {
	Name        string
	Email       string
	CPF         string
	DateOfBirth time.Time
	Password    string
}

// Register создает клиента и аутентифицирует его. Возвращает 3 значения: созданный
// клиент, jwt-токен и ошибку. Занятые email или CPF дают domain.ErrDuplicateKey
// (уникальные индексы в БД).
func (s *ClientService) Register(ctx context.Context, args RegisterClientArgs) (*domain.Client, string, error) {
	passwordHash, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering client: %s", hashErr.Error())
	}

	var client *domain.Client
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		clientRepo, clientRepoErr := uow.GetAs[ClientRepository](tx, uow.RepositoryName(repoargs.ClientRepoName))
		if clientRepoErr != nil {
			return clientRepoErr //nolint:wrapcheck
		}

		var clientErr, tokenErr error
		client, clientErr = clientRepo.CreateClient(c, repoargs.CreateClient{
			Name:         args.Name,
			Email:        args.Email,
			CPF:          args.CPF,
			DateOfBirth:  args.DateOfBirth,
			PasswordHash: passwordHash,
		})
		if clientErr != nil {
			return clientErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateClientJWT(client.ID, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering client: %w", txErr)
	}
	return client, token, nil
}

type LoginClientArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует клиента по паре email/пароль. Неизвестный email дает
// domain.ErrRecordNotFound, неверный пароль - domain.ErrPasswordMissMatch.
func (s *ClientService) Login(ctx context.Context, args LoginClientArgs) (*domain.Client, string, error) {
	client, findErr := s.clientRepo.FindByEmail(ctx, args.Email)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in client: %w", findErr)
	}

	if !s.hasher.ComparePassword(args.Password, client.PasswordHash) {
		return nil, "", fmt.Errorf("logging in client: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateClientJWT(client.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in client: %s", tokenErr.Error())
	}
	return client, token, nil
}

func (s *ClientService) GetByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return client, nil
}

type UpdateClientArgs struct {
	Name        *string
	Email       *string
	DateOfBirth *time.Time
	Password    *string
}

// Update частично обновляет профиль клиента. Новый пароль хешируется, смена email
// на занятый дает domain.ErrDuplicateKey.
func (s *ClientService) Update(ctx context.Context, clientID int64, args UpdateClientArgs) (*domain.Client, error) {
	repoUpdate := repoargs.UpdateClient{
		Name:        args.Name,
		Email:       args.Email,
		DateOfBirth: args.DateOfBirth,
	}
	if args.Password != nil {
		passwordHash, hashErr := s.hasher.HashPassword(*args.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("updating client: %s", hashErr.Error())
		}
		repoUpdate.PasswordHash = &passwordHash
	}

	client, err := s.clientRepo.UpdateClient(ctx, clientID, repoUpdate)
	if err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}
	return client, nil
}
