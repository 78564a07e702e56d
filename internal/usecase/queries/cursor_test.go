//go:build unit

package queries_test

import (
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	"ranch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 2, 1, 12, 30, 15, 123456789, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(createdAt, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, createdAt.Truncate(time.Microsecond), gotAt)
}

func TestDecodeAfterCursor_Rejects(t *testing.T) {
	id := uuid.New()
	b64 := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "###"},
		{name: "bare micros and id", cursor: strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + id.String()},
		{name: "unknown version", cursor: b64("v2:1700000000000000-" + id.String())},
		{name: "missing separator", cursor: b64("v1:1700000000000000")},
		{name: "bad timestamp", cursor: b64("v1:soon-" + id.String())},
		{name: "bad id", cursor: b64("v1:1700000000000000-not-a-uuid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
