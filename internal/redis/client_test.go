package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing_UnreachableServer(t *testing.T) {
	client := NewClient(Config{Host: "127.0.0.1", Port: "1"})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := Ping(ctx, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}
