package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/slot.go -package=commandsmock

import (
	"context"
	"time"

	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/usecase/shared"
)

var ErrSlotExists = errs.New("a slot already exists at this date and time")

type GenerateSlotsInput struct {
	From     time.Time
	To       time.Time
	Times    []string
	Capacity int
}

type GenerateSlotsResult struct {
	Created int
	Skipped int
}

type SlotCommands interface {
	Create(ctx context.Context, date time.Time, timeOfDay string, capacity int) (*ridingslot.Slot, error)
	// Generate creates a slot for every (date, time) pair in the range and
	// skips pairs that already exist.
	Generate(ctx context.Context, in GenerateSlotsInput) (*GenerateSlotsResult, error)
	// Delete removes the slot. Reservations that referenced it keep their
	// copied slot time.
	Delete(ctx context.Context, id int64) error
}

type slotCommandsImpl struct {
	uow     shared.UnitOfWork
	maxDays int
}

func NewSlotCommands(uow shared.UnitOfWork, cfg config.Config) SlotCommands {
	return &slotCommandsImpl{uow: uow, maxDays: cfg.Booking.MaxCalendarDays}
}

func (c *slotCommandsImpl) Create(ctx context.Context, date time.Time, timeOfDay string, capacity int) (*ridingslot.Slot, error) {
	slot, err := ridingslot.NewSlot(date, timeOfDay, capacity)
	if err != nil {
		return nil, classify(err)
	}

	var created *ridingslot.Slot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Slots().Create(ctx, tx.DB(), slot)
		return err
	})
	if err != nil {
		err = classify(err)
		if errs.Is(err, errs.ErrConflict) {
			return nil, errs.Mark(ErrSlotExists, errs.ErrConflict)
		}
		return nil, err
	}
	return created, nil
}

func (c *slotCommandsImpl) Generate(ctx context.Context, in GenerateSlotsInput) (*GenerateSlotsResult, error) {
	if len(in.Times) == 0 {
		return nil, classify(ErrEmptyTimes)
	}
	days := dates.Span(in.From, in.To)
	if len(days) == 0 {
		return nil, classify(dates.ErrInvalidRange)
	}
	if c.maxDays > 0 && len(days) > c.maxDays {
		return nil, classify(ErrRangeTooLong)
	}

	slots := make([]*ridingslot.Slot, 0, len(days)*len(in.Times))
	for _, day := range days {
		for _, tod := range in.Times {
			slot, err := ridingslot.NewSlot(day, tod, in.Capacity)
			if err != nil {
				return nil, classify(err)
			}
			slots = append(slots, slot)
		}
	}

	result := &GenerateSlotsResult{}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// reset on retry
		*result = GenerateSlotsResult{}
		for _, slot := range slots {
			created, err := tx.Slots().CreateIfAbsent(ctx, tx.DB(), slot)
			if err != nil {
				return err
			}
			if created {
				result.Created++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (c *slotCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Delete(ctx, tx.DB(), id)
	})
	return classify(err)
}
