package database

import (
	"context"
	"testing"

	"social-media/internal/repository/memory"
	"social-media/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDevelopment_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	accountStore := memory.NewAccountStore()
	messageStore := memory.NewMessageStore()
	accounts := services.NewAccountService(accountStore)
	messages := services.NewMessageService(messageStore, accountStore)

	first, err := SeedDevelopment(ctx, nil, accounts, messages)
	require.NoError(t, err)
	assert.Len(t, first.Accounts, 3)
	assert.Len(t, first.Messages, 6)

	second, err := SeedDevelopment(ctx, nil, accounts, messages)
	require.NoError(t, err)
	assert.Equal(t, first.Accounts, second.Accounts)

	owned, err := messages.ListByOwner(ctx, first.Accounts[0].ID)
	require.NoError(t, err)
	assert.Len(t, owned, 4)
}

func TestSeedDevelopment_RejectsShortPassword(t *testing.T) {
	ctx := context.Background()
	accountStore := memory.NewAccountStore()
	accounts := services.NewAccountService(accountStore)
	messages := services.NewMessageService(memory.NewMessageStore(), accountStore)

	_, err := SeedDevelopment(ctx, &SeedConfig{Usernames: []string{"x"}, Password: "abc"}, accounts, messages)
	assert.Error(t, err)
}
