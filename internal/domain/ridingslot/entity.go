package ridingslot

import (
	"errors"
	"regexp"
	"time"

	"ranch-booking/internal/pkg/dates"
)

var (
	ErrMissingDate      = errors.New("slot date is required")
	ErrInvalidTime      = errors.New("slot time must be HH:MM")
	ErrNegativeCapacity = errors.New("slot capacity cannot be negative")
)

var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// DefaultCapacity matches the number of horses available per ride.
const DefaultCapacity = 3

type Slot struct {
	id        int64
	date      time.Time
	time      string
	capacity  int
	createdAt time.Time
}

func NewSlot(date time.Time, timeOfDay string, capacity int) (*Slot, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if err := ValidateTime(timeOfDay); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Slot{
		date:     dates.Normalize(date),
		time:     timeOfDay,
		capacity: capacity,
	}, nil
}

func ReconstructSlot(id int64, date time.Time, timeOfDay string, capacity int, createdAt time.Time) *Slot {
	return &Slot{
		id:        id,
		date:      dates.Normalize(date),
		time:      timeOfDay,
		capacity:  capacity,
		createdAt: createdAt,
	}
}

func ValidateTime(s string) error {
	if !timeOfDay.MatchString(s) {
		return ErrInvalidTime
	}
	return nil
}

// IsOn reports whether the slot belongs to the given calendar date.
func (s *Slot) IsOn(date time.Time) bool {
	return s.date.Equal(dates.Normalize(date))
}

func (s *Slot) ID() int64            { return s.id }
func (s *Slot) Date() time.Time      { return s.date }
func (s *Slot) Time() string         { return s.time }
func (s *Slot) Capacity() int        { return s.capacity }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
