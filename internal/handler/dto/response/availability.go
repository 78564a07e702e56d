package response

import (
	"ranch-booking/internal/pkg/dates"
	"ranch-booking/internal/usecase/queries"
)

type AvailabilityResponse struct {
	Date        string `json:"date"`
	ServiceID   int64  `json:"serviceId"`
	SlotID      *int64 `json:"slotId,omitempty"`
	Mode        string `json:"mode"`
	Capacity    int    `json:"capacity"`
	Consumed    int    `json:"consumed"`
	Available   int    `json:"available"`
	HasSlots    bool   `json:"hasSlots"`
	FullyBooked bool   `json:"fullyBooked"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:        dates.Format(v.Date),
		ServiceID:   v.ServiceID,
		SlotID:      v.SlotID,
		Mode:        v.Mode,
		Capacity:    v.Capacity,
		Consumed:    v.Consumed,
		Available:   v.Available,
		HasSlots:    v.HasSlots,
		FullyBooked: v.FullyBooked,
	}
}

func FromAvailabilityViews(vs []*queries.AvailabilityView) []*AvailabilityResponse {
	res := make([]*AvailabilityResponse, len(vs))
	for i, v := range vs {
		res[i] = FromAvailabilityView(v)
	}
	return res
}

type SlotAvailabilityResponse struct {
	SlotID      int64  `json:"slotId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Capacity    int    `json:"capacity"`
	Booked      int    `json:"booked"`
	Available   int    `json:"available"`
	FullyBooked bool   `json:"fullyBooked"`
}

func FromSlotAvailabilityViews(vs []*queries.SlotAvailabilityView) []*SlotAvailabilityResponse {
	res := make([]*SlotAvailabilityResponse, len(vs))
	for i, v := range vs {
		res[i] = &SlotAvailabilityResponse{
			SlotID:      v.SlotID,
			Date:        dates.Format(v.Date),
			Time:        v.Time,
			Capacity:    v.Capacity,
			Booked:      v.Booked,
			Available:   v.Available,
			FullyBooked: v.FullyBooked,
		}
	}
	return res
}

type DashboardResponse struct {
	TotalReservations   int64 `json:"totalReservations"`
	PendingReservations int64 `json:"pendingReservations"`
	ActiveServices      int64 `json:"activeServices"`
	MonthlyRevenue      int64 `json:"monthlyRevenue"`
}

func FromDashboardView(v *queries.DashboardView) *DashboardResponse {
	return &DashboardResponse{
		TotalReservations:   v.TotalReservations,
		PendingReservations: v.PendingReservations,
		ActiveServices:      v.ActiveServices,
		MonthlyRevenue:      v.MonthlyRevenue,
	}
}
