package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/fidelize/internal/domain"
	"github.com/fsdevblog/fidelize/internal/logger"
	"github.com/fsdevblog/fidelize/internal/service"
	"github.com/fsdevblog/fidelize/internal/transport/api/mocks"
	"github.com/fsdevblog/fidelize/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockClientService *mocks.MockClientServicer
	jwtSecret         []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockClientService = mocks.NewMockClientServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		ClientService: s.mockClientService,
		JWTSecretKey:  s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *AuthHandlerTestSuite) TestRegister() {
	savedClient := &domain.Client{
		ID:          1,
		Name:        gofakeit.Name(),
		Email:       gofakeit.Email(),
		CPF:         "52998224725",
		DateOfBirth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
	}

	validPayload, marshalErr := json.Marshal(gin.H{
		"name":          savedClient.Name,
		"email":         savedClient.Email,
		"cpf":           savedClient.CPF,
		"date_of_birth": "1990-05-20",
		"password":      "secret password",
	})
	s.Require().NoError(marshalErr)

	duplicatePayload := []byte(`{
		"name": "Dup", "email": "dup@example.com", "cpf": "52998224725",
		"date_of_birth": "1990-05-20", "password": "secret password"
	}`)
	shortPasswordPayload := []byte(`{
		"name": "Ann", "email": "ann@example.com", "cpf": "52998224725",
		"date_of_birth": "1990-05-20", "password": "123"
	}`)
	badDatePayload := []byte(`{
		"name": "Ann", "email": "ann@example.com", "cpf": "52998224725",
		"date_of_birth": "20.05.1990", "password": "secret password"
	}`)

	s.mockClientService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.RegisterClientArgs) (*domain.Client, string, error) {
			s.Equal(savedClient.Email, args.Email)
			s.Equal(savedClient.DateOfBirth, args.DateOfBirth)
			return savedClient, "jwt token", nil
		}).Times(1)
	s.mockClientService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.RegisterClientArgs) (*domain.Client, string, error) {
			s.Equal("dup@example.com", args.Email)
			return nil, "", domain.ErrDuplicateKey
		}).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{name: "all ok", payload: validPayload, wantStatus: http.StatusCreated},
		{name: "duplicate", payload: duplicatePayload, wantStatus: http.StatusConflict},
		{name: "short password", payload: shortPasswordPayload, wantStatus: http.StatusUnprocessableEntity},
		{name: "bad date format", payload: badDatePayload, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   bytes.NewReader(tc.payload),
			})
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == http.StatusCreated {
				s.Equal("Bearer jwt token", resp.Header.Get("Authorization"))

				var body struct {
					Client ClientResponse `json:"client"`
				}
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
				s.Equal(savedClient.Email, body.Client.Email)
				s.Equal("1990-05-20", body.Client.DateOfBirth)
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	savedClient := &domain.Client{ID: 7, Email: "maria@example.com"}

	s.mockClientService.EXPECT().
		Login(gomock.Any(), service.LoginClientArgs{Email: savedClient.Email, Password: "correct pass"}).
		Return(savedClient, "jwt token", nil).Times(1)
	s.mockClientService.EXPECT().
		Login(gomock.Any(), service.LoginClientArgs{Email: savedClient.Email, Password: "wrong pass!"}).
		Return(nil, "", domain.ErrPasswordMissMatch).Times(1)
	s.mockClientService.EXPECT().
		Login(gomock.Any(), service.LoginClientArgs{Email: "nobody@example.com", Password: "correct pass"}).
		Return(nil, "", domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{name: "ok", email: savedClient.Email, password: "correct pass", wantStatus: http.StatusOK},
		// Неверный пароль и неизвестный email снаружи неразличимы.
		{name: "wrong password", email: savedClient.Email, password: "wrong pass!", wantStatus: http.StatusUnauthorized},
		{name: "unknown email", email: "nobody@example.com", password: "correct pass", wantStatus: http.StatusUnauthorized},
		{name: "not an email", email: "nobody", password: "correct pass", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			payload, marshalErr := json.Marshal(gin.H{"email": tc.email, "password": tc.password})
			s.Require().NoError(marshalErr)

			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader(payload),
			})
			s.Require().NoError(err)
			defer resp.Body.Close() //nolint:errcheck

			s.Equal(tc.wantStatus, resp.StatusCode)
			if tc.wantStatus == http.StatusOK {
				s.True(strings.HasPrefix(resp.Header.Get("Authorization"), "Bearer "))
			}
		})
	}
}
