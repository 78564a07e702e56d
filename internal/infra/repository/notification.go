package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/notification.go -package=repositorymock

import (
	"context"
	"time"

	"ranch-booking/internal/infra"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/pgconv"
	"ranch-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) (uuid.UUID, error)
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	RecordNotificationAttempt(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordNotificationAttemptParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.queries.CreateNotificationJob(ctx, tx, sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	return r.record(ctx, tx, id, jobStatusSent, "", now, now)
}

func (r *NotificationRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt, now time.Time) error {
	return r.record(ctx, tx, id, jobStatusQueued, lastErr, runAt, now)
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error {
	return r.record(ctx, tx, id, jobStatusFailed, lastErr, now, now)
}

func (r *NotificationRepository) record(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, lastErr string, runAt, now time.Time) error {
	params := sqlc.RecordNotificationAttemptParams{
		ID:        id,
		Status:    status,
		RunAt:     pgconv.TimeToPgtype(runAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
	if lastErr != "" {
		params.LastError = pgtype.Text{String: lastErr, Valid: true}
	}

	if err := r.queries.RecordNotificationAttempt(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record notification attempt", err)
	}
	return nil
}
