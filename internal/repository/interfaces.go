package repository

import (
	"context"

	"social-media/internal/domain/account"
	"social-media/internal/domain/message"
)

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	GetByUsername(ctx context.Context, username string) (account.Account, error)
	GetByCredentials(ctx context.Context, username, password string) (account.Account, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	GetAll(ctx context.Context) ([]message.Message, error)
	GetByID(ctx context.Context, id int) (message.Message, error)
	GetByPostedBy(ctx context.Context, accountID int) ([]message.Message, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	UpdateText(ctx context.Context, id int, text string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
