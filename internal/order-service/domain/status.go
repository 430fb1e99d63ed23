package domain

// Status is the lifecycle label of an order. The domain is open: any
// string is a legal status, but only the two named states below have
// predicates. A status is fixed at construction; there are no transitions.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) IsPending() bool   { return s == StatusPending }
func (s Status) IsCompleted() bool { return s == StatusCompleted }
