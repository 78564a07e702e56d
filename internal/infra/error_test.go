//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"ranch-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.Classify(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}
	err := infra.WrapRepoErr("failed to create slot", cause)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Contains(t, err.Error(), "failed to create slot")
}

func TestNotFound(t *testing.T) {
	err := infra.NotFound("reservation not found")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: reservation not found", err.Error())
}
