package services_test

import (
	"context"
	"errors"
	"testing"

	"social-media/internal/domain/account"
	"social-media/internal/repository/mocks"
	"social-media/internal/services"
	social_errors "social-media/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_Success(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := services.NewAccountService(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "bob").Return(account.Account{}, social_errors.ErrNotFound).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(a *account.Account) bool {
		return a.ID == 0 && a.Username == "bob" && a.Password == "pass"
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*account.Account).ID = 5
		}).
		Return(nil).
		Once()

	got, err := svc.Register(ctx, account.Account{ID: 99, Username: "bob", Password: "pass"})

	require.NoError(t, err)
	assert.Equal(t, account.Account{ID: 5, Username: "bob", Password: "pass"}, got)
	repo.AssertExpectations(t)
}

func TestAccountService_Register_InvalidInput(t *testing.T) {
	cases := map[string]account.Account{
		"empty username":  {Username: "", Password: "pass"},
		"blank username":  {Username: "  \t", Password: "pass"},
		"empty password":  {Username: "bob", Password: ""},
		"short password":  {Username: "bob", Password: "abc"},
		"both invalid":    {Username: " ", Password: "a"},
		"multibyte short": {Username: "bob", Password: "äöü"},
	}
	for name, candidate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(mocks.AccountRepository)
			svc := services.NewAccountService(repo)

			_, err := svc.Register(context.Background(), candidate)

			require.Error(t, err)
			assert.ErrorIs(t, err, social_errors.ErrInvalidInput)
			repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_Register_MinimumPasswordLength(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := services.NewAccountService(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "bob").Return(account.Account{}, social_errors.ErrNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once()

	_, err := svc.Register(ctx, account.Account{Username: "bob", Password: "four"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := services.NewAccountService(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "bob").Return(account.Account{ID: 1, Username: "bob", Password: "pass"}, nil).Once()

	_, err := svc.Register(ctx, account.Account{Username: "bob", Password: "other"})

	assert.ErrorIs(t, err, social_errors.ErrConflict)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_DuplicateOnInsert(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := services.NewAccountService(repo)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "bob").Return(account.Account{}, social_errors.ErrNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*account.Account")).Return(social_errors.ErrAlreadyExists).Once()

	_, err := svc.Register(ctx, account.Account{Username: "bob", Password: "pass"})

	assert.ErrorIs(t, err, social_errors.ErrConflict)
	repo.AssertExpectations(t)
}

func TestAccountService_Register_StorageFailure(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := services.NewAccountService(repo)
	ctx := context.Background()
	boom := errors.New("db down")

	repo.On("GetByUsername", ctx, "bob").Return(account.Account{}, boom).Once()

	_, err := svc.Register(ctx, account.Account{Username: "bob", Password: "pass"})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, social_errors.ErrConflict)
}

func TestAccountService_Login(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := services.NewAccountService(repo)
	ctx := context.Background()
	bob := account.Account{ID: 1, Username: "bob", Password: "pass"}

	repo.On("GetByCredentials", ctx, "bob", "pass").Return(bob, nil).Once()
	repo.On("GetByCredentials", ctx, "bob", "wrong").Return(account.Account{}, social_errors.ErrNotFound).Once()
	repo.On("GetByCredentials", ctx, "BOB", "pass").Return(account.Account{}, social_errors.ErrNotFound).Once()

	got, err := svc.Login(ctx, "bob", "pass")
	require.NoError(t, err)
	assert.Equal(t, bob, got)

	_, err = svc.Login(ctx, "bob", "wrong")
	assert.ErrorIs(t, err, social_errors.ErrUnauthorized)

	_, err = svc.Login(ctx, "BOB", "pass")
	assert.ErrorIs(t, err, social_errors.ErrUnauthorized)

	repo.AssertExpectations(t)
}

func TestAccountService_ExistsByID(t *testing.T) {
	repo := new(mocks.AccountRepository)
	svc := services.NewAccountService(repo)
	ctx := context.Background()

	repo.On("ExistsByID", ctx, 1).Return(true, nil).Once()
	repo.On("ExistsByID", ctx, 2).Return(false, nil).Once()

	ok, err := svc.ExistsByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ExistsByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
