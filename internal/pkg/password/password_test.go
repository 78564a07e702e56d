//go:build unit

package password_test

import (
	"testing"

	"ranch-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("ranc850")
	require.NoError(t, err)
	assert.NotEqual(t, "ranc850", hash)

	assert.NoError(t, password.ComparePassword(hash, "ranc850"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrMismatch)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrEmpty)
	assert.ErrorIs(t, password.ComparePassword("", "ranc850"), password.ErrEmpty)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrEmpty)
}
