// source: locks.sql

package sqlc

import (
	"context"
)

const acquireXactLock = `-- name: AcquireXactLock :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

// AcquireXactLock blocks until the advisory lock for key is held. The lock is
// released when the surrounding transaction ends.
func (q *Queries) AcquireXactLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, acquireXactLock, key)
	return err
}
