package order

import (
	"errors"
	"fmt"
	"time"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents one pickup request and its fulfillment record. It is
// the aggregate root that manages the order lifecycle from the customer
// request through courier collection, warehouse verification, and
// payment settlement.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Estimated liters must be positive
//   - Actual liters are present if and only if status is Completed or later
//   - A courier is present if and only if status is Assigned or later
//   - Status only advances forward along the lifecycle chain
//   - Can only be created through NewOrder or RestoreOrder
//
// Every mutation goes through a transition method guarded by the role
// authorization table; orders are never deleted, they only reach the
// terminal Paid state.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer that requested the pickup
	customerID kernel.UUID

	// customer is the denormalized contact/location snapshot taken at creation
	customer CustomerSnapshot

	// estimatedLiters is the volume the customer expects to hand over
	estimatedLiters int

	// actualLiters is the measured volume, set only on completion
	actualLiters *int

	// status is the current state in the order lifecycle
	status Status

	// courierID is the assigned courier (nil until assignment)
	courierID *kernel.UUID

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// pickupPhotoRef is the opaque pickup evidence reference, set on completion
	pickupPhotoRef string

	// paymentProofRef is the opaque payment evidence reference, set on payment
	paymentProofRef string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new pickup order in Pending status. This is the
// only way to create a fresh order; persistence reconstruction goes
// through RestoreOrder.
//
// The constructor validates that the identifiers are constructed, the
// snapshot is complete, and the estimated volume is positive. The
// creation timestamp is taken once and never changes.
func NewOrder(id kernel.UUID, customerID kernel.UUID, customer CustomerSnapshot, estimatedLiters int) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerSnapshot(customer),
		o.setEstimatedLiters(estimatedLiters),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with full state.
// It re-validates the cross-field invariants so a corrupted row cannot
// produce an aggregate that violates them.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customer CustomerSnapshot,
	estimatedLiters int,
	actualLiters *int,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	pickupPhotoRef string,
	paymentProofRef string,
) (*Order, error) {
	o := &Order{
		createdAt:       createdAt,
		pickupPhotoRef:  pickupPhotoRef,
		paymentProofRef: paymentProofRef,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerSnapshot(customer),
		o.setEstimatedLiters(estimatedLiters),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	if err := status.ValidateCanHaveActualLiters(actualLiters != nil); err != nil {
		return nil, err
	}
	if actualLiters != nil {
		if *actualLiters <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("actualLiters",
				fmt.Errorf("%d is not greater than 0", *actualLiters))
		}
		liters := *actualLiters
		o.actualLiters = &liters
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the requesting customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Customer returns the denormalized customer snapshot taken at creation.
func (o *Order) Customer() CustomerSnapshot {
	return o.customer
}

// EstimatedLiters returns the volume estimated at creation.
func (o *Order) EstimatedLiters() int {
	return o.estimatedLiters
}

// ActualLiters returns the measured volume, or nil before completion.
func (o *Order) ActualLiters() *int {
	return o.actualLiters
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, or nil before assignment.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickupPhotoRef returns the opaque pickup evidence reference, empty
// before completion.
func (o *Order) PickupPhotoRef() string {
	return o.pickupPhotoRef
}

// PaymentProofRef returns the opaque payment evidence reference, empty
// before payment.
func (o *Order) PaymentProofRef() string {
	return o.paymentProofRef
}

// Assign assigns the order to a courier and advances the status to
// Assigned.
//
// Guards, checked in order:
//   - state: the order must be Pending
//   - role: Admin may assign any courier; a Courier may only claim the
//     order for themselves (identity equality with the payload courier)
//   - payload: the courier identity must be constructed
//
// Returns a *TransitionRejectedError identifying the failed check.
func (o *Order) Assign(actor kernel.Actor, courierID kernel.UUID) error {
	newStatus, err := o.status.Assign()
	if err != nil {
		return NewStateMismatchError(TransitionAssign, err)
	}

	if err = o.checkRole(actor, TransitionAssign); err != nil {
		return err
	}
	if actor.Role() == kernel.RoleCourier && !actor.ID().IsEqual(courierID) {
		return NewRoleDeniedError(TransitionAssign,
			fmt.Errorf("courier %s may only claim an order for themselves", actor.ID()))
	}

	if err = courierID.Validate(); err != nil {
		return NewPayloadInvalidError(TransitionAssign, err)
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Start marks the pickup as started by the assigned courier and advances
// the status to InProgress. Only the courier the order is assigned to
// may start it.
func (o *Order) Start(actor kernel.Actor) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return NewStateMismatchError(TransitionStart, err)
	}

	if err = o.checkRole(actor, TransitionStart); err != nil {
		return err
	}
	if err = o.checkOwnership(actor, TransitionStart); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete records the measured volume and pickup evidence, advancing
// the status to Completed. Only the assigned courier may complete, and
// the payload requires a positive actual volume and a non-empty pickup
// evidence reference.
func (o *Order) Complete(actor kernel.Actor, actualLiters int, pickupPhotoRef string) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return NewStateMismatchError(TransitionComplete, err)
	}

	if err = o.checkRole(actor, TransitionComplete); err != nil {
		return err
	}
	if err = o.checkOwnership(actor, TransitionComplete); err != nil {
		return err
	}

	if actualLiters <= 0 {
		return NewPayloadInvalidError(TransitionComplete,
			errs.NewValueIsInvalidErrorWithCause("actualLiters",
				fmt.Errorf("%d is not greater than 0", actualLiters)))
	}
	if pickupPhotoRef == "" {
		return NewPayloadInvalidError(TransitionComplete, errs.NewValueIsRequiredError("pickupPhotoRef"))
	}

	o.status = newStatus
	o.actualLiters = &actualLiters
	o.pickupPhotoRef = pickupPhotoRef
	return nil
}

// Verify confirms the collected volume, advancing the status to
// Verified. Warehouse or Admin only. Verification unlocks billing; the
// caller is responsible for crediting the customer's cumulative liters
// in the same business transaction.
func (o *Order) Verify(actor kernel.Actor) error {
	newStatus, err := o.status.Verify()
	if err != nil {
		return NewStateMismatchError(TransitionVerify, err)
	}

	if err = o.checkRole(actor, TransitionVerify); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPaid records the payment evidence and advances the status to the
// terminal Paid state. Admin only; requires a non-empty payment evidence
// reference.
func (o *Order) MarkPaid(actor kernel.Actor, paymentProofRef string) error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return NewStateMismatchError(TransitionMarkPaid, err)
	}

	if err = o.checkRole(actor, TransitionMarkPaid); err != nil {
		return err
	}

	if paymentProofRef == "" {
		return NewPayloadInvalidError(TransitionMarkPaid, errs.NewValueIsRequiredError("paymentProofRef"))
	}

	o.status = newStatus
	o.paymentProofRef = paymentProofRef
	return nil
}

// TransitionPayload carries the optional payload fields a transition may
// require. Fields irrelevant to the applied transition are ignored;
// missing required fields are rejected as PayloadInvalid by the
// transition itself.
type TransitionPayload struct {
	CourierID       *kernel.UUID
	ActualLiters    *int
	PickupPhotoRef  *string
	PaymentProofRef *string
}

// Apply dispatches a named transition with its payload to the matching
// transition method. It is the generic entry point for transport layers
// that receive the transition name over the wire; domain callers use the
// explicit methods directly.
func (o *Order) Apply(actor kernel.Actor, transition Transition, payload TransitionPayload) error {
	switch transition {
	case TransitionAssign:
		var courierID kernel.UUID
		if payload.CourierID != nil {
			courierID = *payload.CourierID
		}
		return o.Assign(actor, courierID)

	case TransitionStart:
		return o.Start(actor)

	case TransitionComplete:
		var liters int
		if payload.ActualLiters != nil {
			liters = *payload.ActualLiters
		}
		var photoRef string
		if payload.PickupPhotoRef != nil {
			photoRef = *payload.PickupPhotoRef
		}
		return o.Complete(actor, liters, photoRef)

	case TransitionVerify:
		return o.Verify(actor)

	case TransitionMarkPaid:
		var proofRef string
		if payload.PaymentProofRef != nil {
			proofRef = *payload.PaymentProofRef
		}
		return o.MarkPaid(actor, proofRef)

	default:
		return transition.Validate()
	}
}

// checkRole rejects the transition when the actor's role is not in the
// authorization table's allowed set, or when the actor itself is invalid.
func (o *Order) checkRole(actor kernel.Actor, transition Transition) error {
	if err := actor.Validate(); err != nil {
		return NewRoleDeniedError(transition, err)
	}
	if !RoleAllowed(actor.Role(), transition) {
		return NewRoleDeniedError(transition,
			fmt.Errorf("role %s is not allowed to %s", actor.Role(), transition))
	}
	return nil
}

// checkOwnership rejects courier-gated transitions applied by a courier
// other than the one assigned to the order.
func (o *Order) checkOwnership(actor kernel.Actor, transition Transition) error {
	if o.courierID == nil || !actor.ID().IsEqual(*o.courierID) {
		return NewRoleDeniedError(transition,
			fmt.Errorf("actor %s is not the assigned courier", actor.ID()))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCustomerSnapshot(customer CustomerSnapshot) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setEstimatedLiters(estimatedLiters int) error {
	if estimatedLiters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedLiters",
			fmt.Errorf("%d is not greater than 0", estimatedLiters))
	}
	o.estimatedLiters = estimatedLiters
	return nil
}
