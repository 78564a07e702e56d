package request

import (
	"time"

	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/pkg/patch"
	"ranch-booking/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Duration     string  `json:"duration"`
	Price        int64   `json:"price"`
	CapacityMode string  `json:"capacityMode"`
	PoolID       *string `json:"poolId,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

func (r CreateServiceRequest) ToInput() commands.ServiceInput {
	return commands.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		Mode:        service.CapacityMode(r.CapacityMode),
		PoolID:      r.PoolID,
		Active:      patch.Coalesce(r.Active, true),
	}
}

type UpdateServiceRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	Price        *int64  `json:"price,omitempty"`
	CapacityMode *string `json:"capacityMode,omitempty"`
	PoolID       *string `json:"poolId,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

func (r UpdateServiceRequest) ToChanges() service.Changes {
	ch := service.Changes{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		PoolID:      r.PoolID,
		Active:      r.Active,
	}
	if r.CapacityMode != nil {
		mode := service.CapacityMode(*r.CapacityMode)
		ch.Mode = &mode
	}
	return ch
}

type CreateSlotRequest struct {
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Slots *int   `json:"slots,omitempty"`
}

func (r CreateSlotRequest) Parse() (time.Time, string, int, error) {
	date, err := dates.Parse(r.Date)
	if err != nil {
		return time.Time{}, "", 0, err
	}
	return date, r.Time, patch.Coalesce(r.Slots, ridingslot.DefaultCapacity), nil
}

type GenerateSlotsRequest struct {
	From  string   `json:"from" binding:"required"`
	To    string   `json:"to" binding:"required"`
	Times []string `json:"times"`
	Slots *int     `json:"slots,omitempty"`
}

func (r GenerateSlotsRequest) ToInput() (commands.GenerateSlotsInput, error) {
	from, err := dates.Parse(r.From)
	if err != nil {
		return commands.GenerateSlotsInput{}, err
	}
	to, err := dates.Parse(r.To)
	if err != nil {
		return commands.GenerateSlotsInput{}, err
	}
	return commands.GenerateSlotsInput{
		From:     from,
		To:       to,
		Times:    r.Times,
		Capacity: patch.Coalesce(r.Slots, ridingslot.DefaultCapacity),
	}, nil
}

type ListSlotsQuery struct {
	Date string `form:"date"`
	From string `form:"from"`
	To   string `form:"to"`
}

// Range resolves the query to inclusive bounds. date wins over from/to.
func (q ListSlotsQuery) Range() (*time.Time, *time.Time, error) {
	if q.Date != "" {
		d, err := dates.Parse(q.Date)
		if err != nil {
			return nil, nil, err
		}
		return &d, &d, nil
	}
	from, err := optionalDate(q.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := optionalDate(q.To)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

type UpdateImageRequest struct {
	Title     *string `json:"title,omitempty"`
	Alt       *string `json:"alt,omitempty"`
	Category  *string `json:"category,omitempty"`
	Visible   *bool   `json:"visible,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}

func (r UpdateImageRequest) ToChanges() gallery.Changes {
	return gallery.Changes{
		Title:     r.Title,
		Alt:       r.Alt,
		Category:  r.Category,
		Visible:   r.Visible,
		SortOrder: r.SortOrder,
	}
}

type AvailabilityQuery struct {
	Date      string `form:"date" binding:"required"`
	ServiceID int64  `form:"serviceId" binding:"required"`
	SlotID    *int64 `form:"slotId"`
}

type CalendarQuery struct {
	ServiceID int64  `form:"serviceId" binding:"required"`
	From      string `form:"from" binding:"required"`
	To        string `form:"to" binding:"required"`
}
