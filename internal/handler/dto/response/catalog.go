package response

import (
	"time"

	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/internal/usecase/queries"
)

type ServiceResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Duration     string  `json:"duration"`
	Price        int64   `json:"price"`
	CapacityMode string  `json:"capacityMode"`
	PoolID       *string `json:"poolId,omitempty"`
	Active       bool    `json:"active"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		Duration:     v.Duration,
		Price:        v.Price,
		CapacityMode: v.CapacityMode,
		PoolID:       v.PoolID,
		Active:       v.Active,
	}
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(vs))
	for i, v := range vs {
		res[i] = FromServiceView(v)
	}
	return res
}

func FromService(s *service.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:           s.ID(),
		Name:         s.Name(),
		Description:  s.Description(),
		Duration:     s.Duration(),
		Price:        s.Price(),
		CapacityMode: s.Mode().String(),
		PoolID:       s.PoolID(),
		Active:       s.IsActive(),
	}
}

type SlotResponse struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Slots int    `json:"slots"`
}

func FromSlotViews(vs []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(vs))
	for i, v := range vs {
		res[i] = &SlotResponse{ID: v.ID, Date: dates.Format(v.Date), Time: v.Time, Slots: v.Capacity}
	}
	return res
}

func FromSlot(s *ridingslot.Slot) *SlotResponse {
	return &SlotResponse{ID: s.ID(), Date: dates.Format(s.Date()), Time: s.Time(), Slots: s.Capacity()}
}

type GenerateSlotsResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

func FromGenerateResult(r *commands.GenerateSlotsResult) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{Created: r.Created, Skipped: r.Skipped}
}

type ImageResponse struct {
	ID        int64     `json:"id"`
	Src       string    `json:"src"`
	Title     string    `json:"title"`
	Alt       string    `json:"alt"`
	Category  string    `json:"category"`
	Visible   bool      `json:"visible"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromImageViews(vs []*queries.ImageView) []*ImageResponse {
	res := make([]*ImageResponse, len(vs))
	for i, v := range vs {
		res[i] = &ImageResponse{
			ID:        v.ID,
			Src:       v.Src,
			Title:     v.Title,
			Alt:       v.Alt,
			Category:  v.Category,
			Visible:   v.Visible,
			SortOrder: v.SortOrder,
			CreatedAt: v.CreatedAt,
		}
	}
	return res
}

func FromImage(img *gallery.Image) *ImageResponse {
	return &ImageResponse{
		ID:        img.ID(),
		Src:       img.Src(),
		Title:     img.Title(),
		Alt:       img.Alt(),
		Category:  img.Category(),
		Visible:   img.Visible(),
		SortOrder: img.SortOrder(),
		CreatedAt: img.CreatedAt(),
	}
}
