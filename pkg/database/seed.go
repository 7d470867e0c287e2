package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-media/internal/domain/account"
	"social-media/internal/domain/message"
	"social-media/internal/services"
	social_errors "social-media/pkg/errors"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	Usernames       []string
	Password        string
	MessagesPerUser int
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		Usernames:       []string{"testuser1", "testuser2", "testuser3"},
		Password:        "password",
		MessagesPerUser: 2,
	}
}

// SeedResult holds the result of the seeding operation
type SeedResult struct {
	Accounts []account.Account
	Messages []message.Message
}

// SeedDevelopment registers demo accounts and posts a few messages for each.
// It goes through the services so seeded rows obey the same rules as API
// traffic. Accounts that already exist are logged in instead.
func SeedDevelopment(ctx context.Context, cfg *SeedConfig, accounts *services.AccountService, messages *services.MessageService) (*SeedResult, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	result := &SeedResult{}
	now := time.Now().Unix()

	for _, username := range cfg.Usernames {
		a, err := accounts.Register(ctx, account.Account{Username: username, Password: cfg.Password})
		if errors.Is(err, social_errors.ErrConflict) {
			a, err = accounts.Login(ctx, username, cfg.Password)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to seed account %s: %w", username, err)
		}
		result.Accounts = append(result.Accounts, a)

		for i := 1; i <= cfg.MessagesPerUser; i++ {
			m, err := messages.Create(ctx, message.Message{
				PostedBy:    a.ID,
				MessageText: fmt.Sprintf("message %d from %s", i, username),
				TimePosted:  now,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to seed message for %s: %w", username, err)
			}
			result.Messages = append(result.Messages, m)
		}
	}

	return result, nil
}
