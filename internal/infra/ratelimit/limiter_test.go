//go:build unit

package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ranch-booking/internal/infra/ratelimit"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter counts EVALSHA calls per key the way the fixed window script
// does, so the limiter can be tested without a server.
type fakeScripter struct {
	counts map[string]int64
	ttl    map[string]any
	err    error
}

func newFakeScripter() *fakeScripter {
	return &fakeScripter{counts: map[string]int64{}, ttl: map[string]any{}}
}

func (f *fakeScripter) run(ctx context.Context, keys []string, args ...any) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[keys[0]]++
	if f.counts[keys[0]] == 1 {
		f.ttl[keys[0]] = args[0]
	}
	cmd.SetVal(f.counts[keys[0]])
	return cmd
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalRO(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.run(ctx, keys, args...)
}

func (f *fakeScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	cmd := redis.NewBoolSliceCmd(ctx)
	cmd.SetVal(make([]bool, len(hashes)))
	return cmd
}

func (f *fakeScripter) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetVal("sha")
	return cmd
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit within a window", func(t *testing.T) {
		rdb := newFakeScripter()
		limiter := ratelimit.NewRedisLimiter(rdb, 2, 30*time.Second, "rl:test")

		for i := 0; i < 2; i++ {
			ok, err := limiter.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.Equal(t, int64(3), rdb.counts["rl:test:10.0.0.1"])
		assert.Equal(t, int64(30000), rdb.ttl["rl:test:10.0.0.1"])
	})

	t.Run("keys are counted separately", func(t *testing.T) {
		limiter := ratelimit.NewRedisLimiter(newFakeScripter(), 1, time.Minute, "rl:test")

		ok, err := limiter.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = limiter.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("blank prefix falls back to rl", func(t *testing.T) {
		rdb := newFakeScripter()
		limiter := ratelimit.NewRedisLimiter(rdb, 0, 0, "  ")

		_, err := limiter.Allow(ctx, "a")
		require.NoError(t, err)
		assert.Contains(t, rdb.counts, "rl:a")
	})

	t.Run("redis errors are returned", func(t *testing.T) {
		rdb := newFakeScripter()
		rdb.err = errors.New("connection refused")
		limiter := ratelimit.NewRedisLimiter(rdb, 5, time.Minute, "rl")

		ok, err := limiter.Allow(ctx, "a")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	limiter := ratelimit.NewMemoryLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}
	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)
}
