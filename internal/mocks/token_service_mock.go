package mocks

import (
	"time"

	"todosapp/internal/token"

	"github.com/stretchr/testify/mock"
)

type TokenService struct{ mock.Mock }

func (m *TokenService) GenerateAccessToken(username string, userID uint, ttl time.Duration) (string, error) {
	args := m.Called(username, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *TokenService) ValidateAccessToken(raw string) (token.Identity, error) {
	args := m.Called(raw)
	var id token.Identity
	if v := args.Get(0); v != nil {
		id = v.(token.Identity)
	}
	return id, args.Error(1)
}
