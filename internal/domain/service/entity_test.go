//go:build unit

package service_test

import (
	"testing"
	"time"

	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	testCases := []struct {
		name   string
		svcNam string
		price  int64
		mode   service.CapacityMode
		poolID *string
		errIs  error
	}{
		{name: "slot service OK", svcNam: "Rekreativno jahanje", price: 50, mode: service.ModeSlot},
		{name: "pool service OK", svcNam: "Prenoćište u bungalovu", price: 100, mode: service.ModePool, poolID: ptr.Of("bungalow")},
		{name: "open service OK", svcNam: "Škola jahanja", price: 0, mode: service.ModeOpen},
		{name: "blank name NG", svcNam: "   ", price: 50, mode: service.ModeSlot, errIs: service.ErrEmptyName},
		{name: "negative price NG", svcNam: "X", price: -1, mode: service.ModeSlot, errIs: service.ErrNegativePrice},
		{name: "unknown mode NG", svcNam: "X", price: 1, mode: "hourly", errIs: service.ErrInvalidMode},
		{name: "pool without id NG", svcNam: "X", price: 1, mode: service.ModePool, errIs: service.ErrPoolRequired},
		{name: "pool id on slot service NG", svcNam: "X", price: 1, mode: service.ModeSlot, poolID: ptr.Of("bungalow"), errIs: service.ErrPoolNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := service.NewService(tc.svcNam, "", "", tc.price, tc.mode, tc.poolID, true)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mode, svc.Mode())
			assert.True(t, svc.IsActive())
		})
	}
}

func TestService_Apply(t *testing.T) {
	base := service.ReconstructService(3, "Prenoćište u bungalovu", "", "1 noć", 100, service.ModePool, ptr.Of("bungalow"), true, time.Time{}, time.Time{})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		got, err := base.Apply(service.Changes{Price: ptr.Of(int64(120)), Active: ptr.Of(false)})
		require.NoError(t, err)
		assert.Equal(t, int64(120), got.Price())
		assert.False(t, got.IsActive())
		assert.Equal(t, "Prenoćište u bungalovu", got.Name())
		assert.Equal(t, "bungalow", *got.PoolID())
		assert.Equal(t, int64(100), base.Price(), "receiver must not change")
	})

	t.Run("switching to open mode drops pool", func(t *testing.T) {
		got, err := base.Apply(service.Changes{Mode: ptr.Of(service.ModeOpen)})
		require.NoError(t, err)
		assert.Nil(t, got.PoolID())
		assert.Equal(t, service.ModeOpen, got.Mode())
	})

	t.Run("invalid result is rejected", func(t *testing.T) {
		_, err := base.Apply(service.Changes{Name: ptr.Of("")})
		assert.ErrorIs(t, err, service.ErrEmptyName)
	})
}
