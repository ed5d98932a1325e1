package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCheckRateLimit(t *testing.T) {
	_, rdb := newTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "posts", "viewer:1", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "posts", "viewer:1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = CheckRateLimit(ctx, rdb, "posts", "viewer:2", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "other viewers keep their own budget")
}

func TestCheckRateLimit_WindowExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	ctx := context.Background()

	_, err := CheckRateLimit(ctx, rdb, "posts", "ip:1", 1, time.Minute)
	require.NoError(t, err)
	allowed, _ := CheckRateLimit(ctx, rdb, "posts", "ip:1", 1, time.Minute)
	assert.False(t, allowed)

	mr.FastForward(2 * time.Minute)

	allowed, err = CheckRateLimit(ctx, rdb, "posts", "ip:1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_NilClient(t *testing.T) {
	_, err := CheckRateLimit(context.Background(), nil, "posts", "ip:1", 1, time.Minute)
	assert.Error(t, err)
}

func TestRateLimit_Middleware(t *testing.T) {
	tests := []struct {
		name      string
		withRedis bool
	}{
		{"redis backed", true},
		{"in process", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rdb *redis.Client
			if tt.withRedis {
				_, rdb = newTestRedis(t)
			}

			app := fiber.New()
			app.Post("/posts", RateLimit(rdb, 1, time.Minute, "posts"), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusAccepted)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

			resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/posts", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		})
	}
}

func TestRateLimitWithPolicy_RedisDown(t *testing.T) {
	tests := []struct {
		name     string
		policy   FailPolicy
		expected int
	}{
		{"fail open", FailOpen, fiber.StatusOK},
		{"fail closed", FailClosed, fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, rdb := newTestRedis(t)
			mr.Close()

			app := fiber.New()
			app.Get("/", RateLimitWithPolicy(rdb, 1, time.Minute, tt.policy, "root"), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), 5000)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}
