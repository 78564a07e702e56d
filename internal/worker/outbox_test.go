//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/usecase/shared"
	"ranch-booking/internal/worker"
	sharedmock "ranch-booking/tests/mock/shared"
	workermock "ranch-booking/tests/mock/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type relayMocks struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	notes     *sharedmock.MockNotificationRepository
	publisher *workermock.MockPublisher
}

func newRelay(t *testing.T, mutate func(*config.OutboxConfig)) (*worker.OutboxRelay, *relayMocks) {
	ctrl := gomock.NewController(t)
	m := &relayMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		notes:     sharedmock.NewMockNotificationRepository(ctrl),
		publisher: workermock.NewMockPublisher(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notes).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	cfg := config.NewTestConfig()
	cfg.Outbox = config.OutboxConfig{PollInterval: 10 * time.Second, BatchSize: 10, MaxAttempts: 3}
	if mutate != nil {
		mutate(&cfg.Outbox)
	}
	return worker.NewOutboxRelay(m.uow, m.publisher, clock.NewMockClock(relayNow), cfg), m
}

func job(attempts int) shared.NotificationJob {
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     shared.NotificationKindReservation,
		Topic:    "reservation.created",
		Payload:  []byte(`{"id":"x"}`),
		Attempts: attempts,
		RunAt:    relayNow,
	}
}

func TestOutboxRelay_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("published jobs are marked sent", func(t *testing.T) {
		relay, m := newRelay(t, nil)
		jobs := []shared.NotificationJob{job(0), job(0)}

		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, int32(10)).Return(jobs, nil)
		for _, j := range jobs {
			m.publisher.EXPECT().Publish(gomock.Any(), "reservation.created", j.ID.String(), j.Payload).Return(nil)
			m.notes.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j.ID, relayNow).Return(nil)
		}

		n, err := relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("failed publish is retried with backoff", func(t *testing.T) {
		relay, m := newRelay(t, nil)
		j := job(1)

		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, int32(10)).Return([]shared.NotificationJob{j}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		m.notes.EXPECT().MarkRetry(gomock.Any(), gomock.Any(), j.ID, "broker down", relayNow.Add(20*time.Second), relayNow).Return(nil)

		n, err := relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("backoff is capped at five minutes", func(t *testing.T) {
		relay, m := newRelay(t, func(c *config.OutboxConfig) {
			c.PollInterval = 2 * time.Minute
			c.MaxAttempts = 10
		})
		j := job(3)

		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{j}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
		m.notes.EXPECT().MarkRetry(gomock.Any(), gomock.Any(), j.ID, "timeout", relayNow.Add(5*time.Minute), relayNow).Return(nil)

		_, err := relay.RunOnce(ctx)
		require.NoError(t, err)
	})

	t.Run("job is failed after the last attempt", func(t *testing.T) {
		relay, m := newRelay(t, nil)
		j := job(2)

		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{j}, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		m.notes.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), j.ID, "broker down", relayNow).Return(nil)

		_, err := relay.RunOnce(ctx)
		require.NoError(t, err)
	})

	t.Run("claim error is returned", func(t *testing.T) {
		relay, m := newRelay(t, nil)
		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		n, err := relay.RunOnce(ctx)

		assert.Error(t, err)
		assert.Zero(t, n)
	})

	t.Run("bookkeeping error aborts the batch", func(t *testing.T) {
		relay, m := newRelay(t, nil)
		jobs := []shared.NotificationJob{job(0), job(0)}

		m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(jobs, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), jobs[0].ID.String(), gomock.Any()).Return(nil)
		m.notes.EXPECT().MarkSent(gomock.Any(), gomock.Any(), jobs[0].ID, relayNow).Return(errors.New("conn reset"))

		_, err := relay.RunOnce(ctx)
		assert.Error(t, err)
	})
}

func TestOutboxRelay_StartStop(t *testing.T) {
	relay, m := newRelay(t, func(c *config.OutboxConfig) {
		c.PollInterval = 5 * time.Millisecond
	})

	polled := make(chan struct{}, 1)
	m.notes.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any, time.Time, int32) ([]shared.NotificationJob, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return nil, nil
		}).MinTimes(1)

	relay.Start()
	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not poll")
	}
	relay.Stop()
}
