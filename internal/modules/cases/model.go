// README: Assistance case aggregate and status definitions.
package cases

import (
	"time"

	"roadside/internal/modules/dispatch"
	"roadside/internal/types"
)

type Status string

const (
	StatusNone       Status = "none"
	StatusOpen       Status = "open"
	StatusDispatched Status = "dispatched"
	StatusClosed     Status = "closed"
	StatusHeld       Status = "held" // no garage could be dispatched; manual follow-up
)

// Case records one customer's assistance request and, once issued, the
// dispatch decision snapshot. The snapshot is stored verbatim: registry
// changes after the fact never alter it.
type Case struct {
	ID           types.ID
	SessionID    types.ID
	CustomerName string
	Vehicle      string
	Location     string
	Issue        string
	PolicyLevel  string
	IsCovered    bool
	Status       Status
	Decision     *dispatch.Decision
	CreatedAt    time.Time
	DispatchedAt *time.Time
	ClosedAt     *time.Time
}

// AllowedTransitions represents the case state flow as code.
var AllowedTransitions = map[Status][]Status{
	StatusOpen:       {StatusDispatched, StatusHeld, StatusClosed},
	StatusDispatched: {StatusClosed},
	StatusHeld:       {StatusDispatched, StatusClosed},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
