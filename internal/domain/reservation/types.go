package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ConsumesCapacity is true for every status that holds guest-units or a
// pool unit. Cancelled reservations never count.
func (s Status) ConsumesCapacity() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ConsumingStatuses lists the statuses storage filters on when summing usage.
func ConsumingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
