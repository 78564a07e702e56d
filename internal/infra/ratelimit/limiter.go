// Package ratelimit counts requests per client key. RedisLimiter shares a
// fixed window across instances; MemoryLimiter is the single-process fallback.
package ratelimit

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/ratelimit/limiter.go -package=ratelimitmock

import "context"

type Limiter interface {
	// Allow records one request for key and reports whether it is within the
	// limit.
	Allow(ctx context.Context, key string) (bool, error)
}
