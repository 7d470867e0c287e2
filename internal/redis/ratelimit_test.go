package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimitResult(t *testing.T) {
	res, err := parseLimitResult([]interface{}{int64(1), int64(3), int64(42)}, 5)
	require.NoError(t, err)
	assert.Equal(t, &RateLimitResult{Allowed: true, Remaining: 3, ResetIn: 42 * time.Second, Limit: 5}, res)

	res, err = parseLimitResult([]interface{}{int64(0), int64(0), int64(10)}, 5)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestParseLimitResult_RejectsMalformed(t *testing.T) {
	_, err := parseLimitResult("OK", 5)
	assert.Error(t, err)

	_, err = parseLimitResult([]interface{}{int64(1)}, 5)
	assert.Error(t, err)

	_, err = parseLimitResult([]interface{}{int64(1), "3", int64(1)}, 5)
	assert.Error(t, err)
}

func TestAuthKey(t *testing.T) {
	assert.Equal(t, "ratelimit:10.0.0.1:auth", authKey("10.0.0.1"))
}

func TestNewRateLimiter_FallsBackToDefaults(t *testing.T) {
	defaults := DefaultRateLimitConfig()

	assert.Equal(t, defaults, NewRateLimiter(nil, RateLimitConfig{}).Config())
	assert.Equal(t, defaults, NewRateLimiter(nil, RateLimitConfig{AuthLimit: -1, AuthWindow: -time.Second}).Config())

	cfg := NewRateLimiter(nil, RateLimitConfig{AuthLimit: 10}).Config()
	assert.Equal(t, 10, cfg.AuthLimit)
	assert.Equal(t, defaults.AuthWindow, cfg.AuthWindow)

	cfg = NewRateLimiter(nil, RateLimitConfig{AuthWindow: 5 * time.Minute}).Config()
	assert.Equal(t, defaults.AuthLimit, cfg.AuthLimit)
	assert.Equal(t, 5*time.Minute, cfg.AuthWindow)
}
