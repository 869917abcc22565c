package order

import (
	"errors"
	"fmt"

	"jelantah/internal/pkg/errs"
)

// Transition identifies one of the five lifecycle transitions an actor
// can apply to an order. Creation is construction, not a transition.
type Transition int

const (
	// TransitionUnknown represents an invalid or undefined transition.
	TransitionUnknown Transition = iota

	// TransitionAssign assigns a courier to a Pending order.
	TransitionAssign

	// TransitionStart moves an Assigned order to InProgress.
	TransitionStart

	// TransitionComplete records the collected volume and pickup evidence.
	TransitionComplete

	// TransitionVerify confirms the collected volume at the warehouse.
	TransitionVerify

	// TransitionMarkPaid records the payment evidence and settles the order.
	TransitionMarkPaid
)

func getTransitionStrings() map[Transition]string {
	return map[Transition]string{
		TransitionUnknown:  "Unknown",
		TransitionAssign:   "Assign",
		TransitionStart:    "Start",
		TransitionComplete: "Complete",
		TransitionVerify:   "Verify",
		TransitionMarkPaid: "MarkPaid",
	}
}

// TransitionFromString parses a transition from its string name.
func TransitionFromString(s string) (Transition, error) {
	for transition, name := range getTransitionStrings() {
		if transition != TransitionUnknown && name == s {
			return transition, nil
		}
	}
	return TransitionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transition", fmt.Errorf("%q is not a valid transition", s))
}

// String returns the transition name. Implements fmt.Stringer.
func (t Transition) String() string {
	if str, ok := getTransitionStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Transition is one of the five defined transitions.
func (t Transition) Validate() error {
	switch t {
	case TransitionAssign, TransitionStart, TransitionComplete, TransitionVerify, TransitionMarkPaid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"transition", fmt.Errorf("%d is not a valid transition", t))
	}
}

// RejectReason classifies why a transition was rejected. Callers need
// the distinction for user-facing messaging: a state mismatch signals a
// stale view and is safe to retry after re-fetching the order; role and
// payload failures require actor intervention.
type RejectReason int

const (
	// ReasonStateMismatch means the order's current status does not match
	// the transition's required source state.
	ReasonStateMismatch RejectReason = iota + 1

	// ReasonRoleDenied means the acting role or courier ownership check failed.
	ReasonRoleDenied

	// ReasonPayloadInvalid means a required payload field is missing or malformed.
	ReasonPayloadInvalid
)

// String returns the reject reason name. Implements fmt.Stringer.
func (r RejectReason) String() string {
	switch r {
	case ReasonStateMismatch:
		return "StateMismatch"
	case ReasonRoleDenied:
		return "RoleDenied"
	case ReasonPayloadInvalid:
		return "PayloadInvalid"
	default:
		return "Unknown"
	}
}

// Sentinel errors per reject reason, for classification with errors.Is.
var (
	ErrStateMismatch  = errors.New("state mismatch")
	ErrRoleDenied     = errors.New("role denied")
	ErrPayloadInvalid = errors.New("payload invalid")
)

// TransitionRejectedError reports a rejected lifecycle transition along
// with which of the three guard checks failed. Unwraps to the sentinel
// matching its reason.
type TransitionRejectedError struct {
	Transition Transition
	Reason     RejectReason
	Cause      error
}

// NewStateMismatchError creates a rejection for a source-state mismatch.
func NewStateMismatchError(transition Transition, cause error) *TransitionRejectedError {
	return &TransitionRejectedError{Transition: transition, Reason: ReasonStateMismatch, Cause: cause}
}

// NewRoleDeniedError creates a rejection for a failed role or ownership check.
func NewRoleDeniedError(transition Transition, cause error) *TransitionRejectedError {
	return &TransitionRejectedError{Transition: transition, Reason: ReasonRoleDenied, Cause: cause}
}

// NewPayloadInvalidError creates a rejection for missing or malformed payload.
func NewPayloadInvalidError(transition Transition, cause error) *TransitionRejectedError {
	return &TransitionRejectedError{Transition: transition, Reason: ReasonPayloadInvalid, Cause: cause}
}

func (e *TransitionRejectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transition %s rejected: %s (cause: %s)", e.Transition, e.Reason, e.Cause)
	}
	return fmt.Sprintf("transition %s rejected: %s", e.Transition, e.Reason)
}

func (e *TransitionRejectedError) Unwrap() error {
	switch e.Reason {
	case ReasonStateMismatch:
		return ErrStateMismatch
	case ReasonRoleDenied:
		return ErrRoleDenied
	case ReasonPayloadInvalid:
		return ErrPayloadInvalid
	default:
		return nil
	}
}

// Retryable reports whether the caller may retry the transition after
// refreshing the order. Only state mismatches are retryable: they signal
// a race with a concurrent transition, not an actor error.
func (e *TransitionRejectedError) Retryable() bool {
	return e.Reason == ReasonStateMismatch
}
