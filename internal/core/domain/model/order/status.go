package order

import (
	"fmt"

	"jelantah/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup order.
// It implements a linear state machine matching the physical handoff
// sequence between the four actors:
//
//	Pending → Assigned → InProgress → Completed → Verified → Paid
//
// There are no backward edges. Paid is terminal; Verified is a stable
// intermediate state that unlocks billing. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a pickup request is created.
	// Orders in this status are waiting for a courier.
	Pending

	// Assigned indicates a courier has been assigned to the pickup.
	Assigned

	// InProgress indicates the assigned courier has started the pickup.
	InProgress

	// Completed indicates the courier collected the oil and recorded the
	// actual liters with pickup evidence.
	Completed

	// Verified indicates the warehouse confirmed the collected volume.
	// Verification gates billing eligibility.
	Verified

	// Paid indicates the office settled the payment. Terminal state.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Assigned:      "Assigned",
		InProgress:    "InProgress",
		Completed:     "Completed",
		Verified:      "Verified",
		Paid:          "Paid",
	}
}

// StatusFromString parses a status from its string name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, InProgress, Completed, Verified, Paid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
}

// Assign transitions the status to Assigned.
// Valid only from Pending.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, s.mismatch("assign", Pending)
	}
	return Assigned, nil
}

// Start transitions the status to InProgress.
// Valid only from Assigned.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, s.mismatch("start", Assigned)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
// Valid only from InProgress.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, s.mismatch("complete", InProgress)
	}
	return Completed, nil
}

// Verify transitions the status to Verified.
// Valid only from Completed.
func (s Status) Verify() (Status, error) {
	if s != Completed {
		return 0, s.mismatch("verify", Completed)
	}
	return Verified, nil
}

// MarkPaid transitions the status to Paid.
// Valid only from Verified.
func (s Status) MarkPaid() (Status, error) {
	if s != Verified {
		return 0, s.mismatch("mark paid", Verified)
	}
	return Paid, nil
}

// ValidateCanHaveCourier validates the consistency between order status
// and courier assignment: a courier is present if and only if the order
// has reached Assigned.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s < Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}
	if !courier && s >= Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveActualLiters validates the consistency between order
// status and the recorded actual volume: actual liters are present if
// and only if the order has reached Completed.
func (s Status) ValidateCanHaveActualLiters(actualLiters bool) error {
	if actualLiters && s < Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have actual liters", s.String()),
		)
	}
	if !actualLiters && s >= Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no actual liters", s.String()),
		)
	}
	return nil
}

func (s Status) mismatch(action string, expected Status) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status to %s, expected %s", s.String(), action, expected.String()),
	)
}
