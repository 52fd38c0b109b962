package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──┬──> Cancelled
//	          └──> Finalized
//
// Cancelled and Finalized are terminal. Re-entering the current terminal
// state is allowed and changes nothing; moving between terminal states is a
// conflict.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// Cancelled is terminal.
	Cancelled

	// Finalized is terminal.
	Finalized
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Cancelled: "CANCELLED",
		Finalized: "FINALIZED",
	}
}

// Validate rejects Unknown and out-of-range values read from storage.
func (s Status) Validate() error {
	if s < Pending || s > Finalized {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name: PENDING, CANCELLED or FINALIZED.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Finalized
}

// Cancel returns the status after a cancel request.
//
// Transitions:
//   - Pending -> Cancelled
//   - Cancelled -> Cancelled (no-op)
//   - Finalized -> conflict
func (s Status) Cancel() (Status, error) {
	return s.transition(Cancelled, "cancel")
}

// Finalize returns the status after a finalize request.
//
// Transitions:
//   - Pending -> Finalized
//   - Finalized -> Finalized (no-op)
//   - Cancelled -> conflict
func (s Status) Finalize() (Status, error) {
	return s.transition(Finalized, "finalize")
}

func (s Status) transition(target Status, action string) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	if s == Pending || s == target {
		return target, nil
	}

	return Unknown, errs.NewConflictError("order", fmt.Sprintf("cannot %s an order in status %s", action, s))
}
