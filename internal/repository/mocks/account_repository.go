package mocks

import (
	"context"

	"social-media/internal/domain/account"

	"github.com/stretchr/testify/mock"
)

// AccountRepository is a testify mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AccountRepository) GetByUsername(ctx context.Context, username string) (account.Account, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *AccountRepository) GetByCredentials(ctx context.Context, username, password string) (account.Account, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *AccountRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
