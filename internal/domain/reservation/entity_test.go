//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"ranch-booking/internal/domain/reservation"
	"ranch-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(reservation.Reservation{}, reservation.Contact{}, reservation.Guests{}, reservation.Stay{}),
	cmpopts.IgnoreFields(reservation.Reservation{}, "id"),
}

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFactory_NewPending(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		contact, _ := reservation.NewContact(b.Name, b.Email, b.Phone)
		guests, _ := reservation.NewGuests(b.Guests)
		stay, _ := reservation.NewStay(b.Date, nil)
		expected, err := reservation.NewReservation(contact, guests, b.Message, b.ServiceRef(), stay, b.SlotRef(), reservation.StatusPending, b.Now)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.ConsumesCapacity())
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank name NG", mutate: func(b *builder.ReservationBuilder) { b.Name = "  " }, errIs: reservation.ErrMissingName},
			{name: "bad email NG", mutate: func(b *builder.ReservationBuilder) { b.Email = "not-an-email" }, errIs: reservation.ErrInvalidEmail},
			{name: "display-name email NG", mutate: func(b *builder.ReservationBuilder) { b.Email = "Ana <ana@example.com>" }, errIs: reservation.ErrInvalidEmail},
			{name: "missing phone NG", mutate: func(b *builder.ReservationBuilder) { b.Phone = "" }, errIs: reservation.ErrMissingPhone},
		})
	})

	t.Run("guest validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "one guest OK", mutate: func(b *builder.ReservationBuilder) { b.Guests = 1 }},
			{name: "zero guests NG", mutate: func(b *builder.ReservationBuilder) { b.Guests = 0 }, errIs: reservation.ErrInvalidGuests},
			{name: "negative guests NG", mutate: func(b *builder.ReservationBuilder) { b.Guests = -2 }, errIs: reservation.ErrInvalidGuests},
		})
	})

	t.Run("missing date NG", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero date", mutate: func(b *builder.ReservationBuilder) { b.Date = time.Time{} }, errIs: reservation.ErrMissingDate},
		})
	})
}

func TestNewStay(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	stay, err := reservation.NewStay(start, nil)
	require.NoError(t, err)
	assert.Len(t, stay.Nights(), 1)
	assert.Equal(t, 1, stay.NightCount())

	end := start.AddDate(0, 0, 2)
	stay, err = reservation.NewStay(start, &end)
	require.NoError(t, err)
	assert.Len(t, stay.Nights(), 2)
	assert.Equal(t, 2, stay.NightCount())

	far := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	stay, err = reservation.NewStay(start, &far)
	require.NoError(t, err)
	assert.Equal(t, 2912383, stay.NightCount())

	_, err = reservation.NewStay(start, &start)
	assert.ErrorIs(t, err, reservation.ErrInvalidStayEnd)

	_, err = reservation.NewStay(time.Time{}, nil)
	assert.ErrorIs(t, err, reservation.ErrMissingDate)
}

func TestReservation_TransitionTo(t *testing.T) {
	later := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		from        reservation.Status
		to          reservation.Status
		wantChanged bool
		errIs       error
	}{
		{from: reservation.StatusPending, to: reservation.StatusConfirmed, wantChanged: true},
		{from: reservation.StatusPending, to: reservation.StatusCancelled, wantChanged: true},
		{from: reservation.StatusConfirmed, to: reservation.StatusCancelled, wantChanged: true},
		{from: reservation.StatusCancelled, to: reservation.StatusCancelled, wantChanged: false},
		{from: reservation.StatusConfirmed, to: reservation.StatusPending, errIs: reservation.ErrInvalidTransition},
		{from: reservation.StatusCancelled, to: reservation.StatusConfirmed, errIs: reservation.ErrInvalidTransition},
		{from: reservation.StatusCancelled, to: reservation.StatusPending, errIs: reservation.ErrInvalidTransition},
		{from: reservation.StatusPending, to: reservation.StatusPending, errIs: reservation.ErrInvalidTransition},
		{from: reservation.StatusConfirmed, to: reservation.StatusConfirmed, errIs: reservation.ErrInvalidTransition},
		{from: reservation.StatusPending, to: "archived", errIs: reservation.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			r := builder.NewReservationBuilder().WithStatus(tc.from).BuildReconstructed()
			before := r.UpdatedAt()

			changed, err := r.TransitionTo(tc.to, later)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, r.Status(), "record must stay unchanged")
				assert.Equal(t, before, r.UpdatedAt())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.to, r.Status())
			if changed {
				assert.Equal(t, later, r.UpdatedAt())
			} else {
				assert.Equal(t, before, r.UpdatedAt())
			}
		})
	}
}

func TestStatus_ConsumesCapacity(t *testing.T) {
	assert.True(t, reservation.StatusPending.ConsumesCapacity())
	assert.True(t, reservation.StatusConfirmed.ConsumesCapacity())
	assert.False(t, reservation.StatusCancelled.ConsumesCapacity())
}
