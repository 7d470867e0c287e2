package repository

import (
	"context"
	"errors"
	"fmt"

	"social-media/internal/domain/account"
	social_errors "social-media/pkg/errors"

	"gorm.io/gorm"
)

type PostgresAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a *account.Account) error {
	res := r.db.WithContext(ctx).Create(a)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return social_errors.ErrAlreadyExists
		}
		return fmt.Errorf("create account %q: %w", a.Username, res.Error)
	}
	return nil
}

func (r *PostgresAccountRepository) GetByUsername(ctx context.Context, username string) (account.Account, error) {
	var a account.Account
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, social_errors.ErrNotFound
		}
		return account.Account{}, fmt.Errorf("get account by username: %w", err)
	}
	return a, nil
}

func (r *PostgresAccountRepository) GetByCredentials(ctx context.Context, username, password string) (account.Account, error) {
	var a account.Account
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Account{}, social_errors.ErrNotFound
		}
		return account.Account{}, fmt.Errorf("get account by credentials: %w", err)
	}
	return a, nil
}

func (r *PostgresAccountRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&account.Account{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count account %d: %w", id, err)
	}
	return count > 0, nil
}
