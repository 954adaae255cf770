package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/repository/repoargs"
	"github.com/fsdevblog/fidelize/internal/service/mocks"
	"github.com/fsdevblog/fidelize/internal/transport/api/tokens"
	"github.com/fsdevblog/fidelize/pkg/uow"
	uowmocks "github.com/fsdevblog/fidelize/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockClientRepo *mocks.MockClientRepository
	mockPsswd      *mocks.MockPasswordHasher
	jwtSecret      []byte
	clientService  *ClientService
}

func TestClientServiceSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}

func (s *ClientServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockClientRepo = mocks.NewMockClientRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ClientRepoName)).
		Return(s.mockClientRepo, nil).AnyTimes()

	clientService, servErr := NewClientService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.clientService = clientService
}

func (s *ClientServiceTestSuite) TestRegister() {
	args := RegisterClientArgs{
		Name:        gofakeit.Name(),
		Email:       gofakeit.Email(),
		CPF:         "52998224725",
		DateOfBirth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Password:    gofakeit.Password(true, true, true, false, false, 12),
	}
	passwordHash := "hashed password"

	s.mockPsswd.EXPECT().HashPassword(args.Password).Return(passwordHash, nil)

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.ClientRepoName)).
		Return(s.mockClientRepo, nil)

	s.mockClientRepo.EXPECT().
		CreateClient(gomock.Any(), repoargs.CreateClient{
			Name:         args.Name,
			Email:        args.Email,
			CPF:          args.CPF,
			DateOfBirth:  args.DateOfBirth,
			PasswordHash: passwordHash,
		}).
		Return(&domain.Client{ID: 1, Name: args.Name, Email: args.Email, PasswordHash: passwordHash}, nil)

	client, token, err := s.clientService.Register(context.Background(), args)
	s.Require().NoError(err)
	s.Equal(int64(1), client.ID)

	// Токен сразу пригоден для аутентификации созданного клиента.
	parsed, parseErr := tokens.ValidateClientJWT(token, s.jwtSecret)
	s.Require().NoError(parseErr)
	claims, ok := parsed.Claims.(*tokens.ClientClaims)
	s.Require().True(ok)
	s.Equal(int64(1), claims.ID)
}

func (s *ClientServiceTestSuite) TestRegisterDuplicate() {
	args := RegisterClientArgs{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		CPF:      "52998224725",
		Password: "password",
	}

	s.mockPsswd.EXPECT().HashPassword(args.Password).Return("hash", nil)
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.ClientRepoName)).
		Return(s.mockClientRepo, nil)
	s.mockClientRepo.EXPECT().
		CreateClient(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	_, _, err := s.clientService.Register(context.Background(), args)
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *ClientServiceTestSuite) TestLogin() {
	savedEmail := gofakeit.Email()
	validHash := "hash ok"
	savedClient := domain.Client{
		ID:           7,
		Email:        savedEmail,
		PasswordHash: validHash,
	}

	argsOk := LoginClientArgs{Email: savedEmail, Password: "correct pass"}
	argsWrongEmail := LoginClientArgs{Email: "nobody@example.com", Password: "correct pass"}
	argsWrongPass := LoginClientArgs{Email: savedEmail, Password: "wrong pass"}

	s.mockClientRepo.EXPECT().FindByEmail(gomock.Any(), savedEmail).Return(&savedClient, nil).Times(2)
	s.mockClientRepo.EXPECT().
		FindByEmail(gomock.Any(), argsWrongEmail.Email).
		Return(nil, domain.ErrRecordNotFound)

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHash).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHash).Return(false)

	cases := []struct {
		name    string
		args    LoginClientArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		{name: "unknown email", args: argsWrongEmail, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			client, token, err := s.clientService.Login(context.Background(), tc.args)
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(savedClient.ID, client.ID)

			parsed, parseErr := tokens.ValidateClientJWT(token, s.jwtSecret)
			s.Require().NoError(parseErr)
			claims, ok := parsed.Claims.(*tokens.ClientClaims)
			s.Require().True(ok)
			s.Equal(savedClient.ID, claims.ID)
		})
	}
}

func (s *ClientServiceTestSuite) TestUpdate() {
	newName := gofakeit.Name()
	newPassword := "new password"
	newHash := "new hash"

	s.mockPsswd.EXPECT().HashPassword(newPassword).Return(newHash, nil)
	s.mockClientRepo.EXPECT().
		UpdateClient(gomock.Any(), int64(7), repoargs.UpdateClient{
			Name:         &newName,
			PasswordHash: &newHash,
		}).
		Return(&domain.Client{ID: 7, Name: newName}, nil)

	client, err := s.clientService.Update(context.Background(), 7, UpdateClientArgs{
		Name:     &newName,
		Password: &newPassword,
	})
	s.Require().NoError(err)
	s.Equal(newName, client.Name)
}
