package service

// CapacityMode decides which capacity model governs bookings of a service.
type CapacityMode string

const (
	// ModeSlot services draw guest-units from the riding slots of a date.
	ModeSlot CapacityMode = "slot"
	// ModePool services occupy a whole unit of a shared resource pool per night.
	ModePool CapacityMode = "pool"
	// ModeOpen services have no capacity model.
	ModeOpen CapacityMode = "open"
)

func (m CapacityMode) String() string {
	return string(m)
}

func (m CapacityMode) IsValid() bool {
	switch m {
	case ModeSlot, ModePool, ModeOpen:
		return true
	default:
		return false
	}
}
