package converter

import (
	"ranch-booking/internal/domain/gallery"
	"ranch-booking/internal/domain/resourcepool"
	"ranch-booking/internal/domain/ridingslot"
	"ranch-booking/internal/domain/service"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/pgconv"
)

func ServiceFromRow(row sqlc.Services) *service.Service {
	return service.ReconstructService(
		row.ID,
		row.Name,
		row.Description,
		row.Duration,
		row.Price,
		service.CapacityMode(row.CapacityMode),
		pgconv.StringPtrFromPgtype(row.PoolID),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PoolFromRow(row sqlc.ResourcePools) *resourcepool.Pool {
	return resourcepool.ReconstructPool(row.ID, row.Name, int(row.Capacity))
}

func SlotFromRow(row sqlc.RidingSlots) *ridingslot.Slot {
	return ridingslot.ReconstructSlot(
		row.ID,
		pgconv.DateFromPgtype(row.Date),
		row.Time,
		int(row.Capacity),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func SlotsFromRows(rows []sqlc.RidingSlots) []*ridingslot.Slot {
	out := make([]*ridingslot.Slot, 0, len(rows))
	for _, row := range rows {
		out = append(out, SlotFromRow(row))
	}
	return out
}

func ImageFromRow(row sqlc.Images) *gallery.Image {
	return gallery.ReconstructImage(
		row.ID,
		row.Src,
		row.Title,
		row.Alt,
		row.Category,
		row.Visible,
		int(row.SortOrder),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
