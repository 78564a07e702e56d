// source: notification_jobs.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const notificationJobColumns = `id, kind, topic, payload, status, attempts, last_error, run_at, created_at, updated_at`

const createNotificationJob = `-- name: CreateNotificationJob :one
INSERT INTO notification_jobs (kind, topic, payload, status, run_at, created_at, updated_at)
VALUES ($1, $2, $3, 'queued', $4, $4, $4)
RETURNING id
`

type CreateNotificationJobParams struct {
	Kind    string             `json:"kind"`
	Topic   string             `json:"topic"`
	Payload []byte             `json:"payload"`
	RunAt   pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt).Scan(&id)
	return id, err
}

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
SELECT ` + notificationJobColumns + `
FROM notification_jobs
WHERE status = 'queued'
  AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimDueNotificationJobsParams struct {
	Now   pgtype.Timestamptz `json:"now"`
	Limit int32              `json:"limit"`
}

// ClaimDueNotificationJobs must run inside a transaction; the row locks keep
// concurrent relays from picking up the same jobs.
func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []NotificationJobs{}
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.RunAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const recordNotificationAttempt = `-- name: RecordNotificationAttempt :exec
UPDATE notification_jobs
SET status = $2,
    attempts = attempts + 1,
    last_error = $3,
    run_at = $4,
    updated_at = $5
WHERE id = $1
`

type RecordNotificationAttemptParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) RecordNotificationAttempt(ctx context.Context, db DBTX, arg RecordNotificationAttemptParams) error {
	_, err := db.Exec(ctx, recordNotificationAttempt,
		arg.ID,
		arg.Status,
		arg.LastError,
		arg.RunAt,
		arg.UpdatedAt,
	)
	return err
}

const countNotificationJobsByStatus = `-- name: CountNotificationJobsByStatus :one
SELECT count(*) FROM notification_jobs WHERE status = $1
`

func (q *Queries) CountNotificationJobsByStatus(ctx context.Context, db DBTX, status string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countNotificationJobsByStatus, status).Scan(&count)
	return count, err
}
