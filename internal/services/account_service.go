package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"social-media/internal/domain/account"
	"social-media/internal/repository"
	social_errors "social-media/pkg/errors"
)

// AccountService registers accounts and checks credentials. Passwords are
// stored and compared as plain strings.
type AccountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) Register(ctx context.Context, candidate account.Account) (account.Account, error) {
	if err := validateRegister(candidate); err != nil {
		return account.Account{}, err
	}

	_, err := s.accountRepo.GetByUsername(ctx, candidate.Username)
	switch {
	case err == nil:
		return account.Account{}, fmt.Errorf("%w: username already exists", social_errors.ErrConflict)
	case !errors.Is(err, social_errors.ErrNotFound):
		return account.Account{}, err
	}

	stored := account.Account{Username: candidate.Username, Password: candidate.Password}
	if err := s.accountRepo.Create(ctx, &stored); err != nil {
		if errors.Is(err, social_errors.ErrAlreadyExists) {
			return account.Account{}, fmt.Errorf("%w: username already exists", social_errors.ErrConflict)
		}
		return account.Account{}, err
	}
	return stored, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (account.Account, error) {
	a, err := s.accountRepo.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, social_errors.ErrNotFound) {
			return account.Account{}, fmt.Errorf("%w: invalid credentials", social_errors.ErrUnauthorized)
		}
		return account.Account{}, err
	}
	return a, nil
}

func (s *AccountService) ExistsByID(ctx context.Context, id int) (bool, error) {
	return s.accountRepo.ExistsByID(ctx, id)
}

func validateRegister(a account.Account) error {
	if isBlank(a.Username) {
		return fmt.Errorf("%w: username is required", social_errors.ErrInvalidInput)
	}
	if utf8.RuneCountInString(a.Password) < account.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", social_errors.ErrInvalidInput, account.MinPasswordLength)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
