package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/lock.go -package=repositorymock

import (
	"context"
	"sort"

	"ranch-booking/internal/infra"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
)

type LockQueries interface {
	AcquireXactLock(ctx context.Context, db sqlc.DBTX, key string) error
}

// LockRepository serializes admissions on capacity keys with Postgres
// transaction-scoped advisory locks.
type LockRepository struct {
	queries LockQueries
}

func NewLockRepository(queries LockQueries) *LockRepository {
	return &LockRepository{queries: queries}
}

func (r *LockRepository) Acquire(ctx context.Context, tx sqlc.DBTX, keys []string) error {
	ordered := append([]string(nil), keys...)
	sort.Strings(ordered)

	var prev string
	for i, key := range ordered {
		if i > 0 && key == prev {
			continue
		}
		prev = key
		if err := r.queries.AcquireXactLock(ctx, tx, key); err != nil {
			return infra.WrapRepoErr("failed to acquire capacity lock "+key, err)
		}
	}
	return nil
}
