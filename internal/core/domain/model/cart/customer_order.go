package cart

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrCustomerOrderIsNotConstructed is returned when a CustomerOrder was
	// not created through NewCustomerOrder or RestoreCustomerOrder.
	ErrCustomerOrderIsNotConstructed = errors.New(
		"CustomerOrder must be created via NewCustomerOrder or RestoreCustomerOrder")

	// ErrWrongDeliverer is returned when a deliverer tries to progress an
	// order that is assigned to somebody else.
	ErrWrongDeliverer = errors.New("order is assigned to a different deliverer")
)

// CustomerOrder is the aggregate root of the ordering domain.
// While in NOT_CONFIRMED status it is the user's open cart for one branch;
// at most one such order may exist per user at any time. Once confirmed it
// travels through the delivery status machine and is never deleted, ending
// in DELIVERED or FAILED_DELIVERY.
//
// Address, payment type, and total price are unset until confirmation.
// The deliverer is unset until a claim, and the failure description is unset
// unless the delivery failed.
type CustomerOrder struct {
	id            kernel.UUID
	createdAt     time.Time
	isDeleted     bool
	userID        kernel.UUID
	branchID      kernel.UUID
	addressID     *kernel.UUID
	status        Status
	price         *kernel.Price
	paymentType   *PaymentType
	delivererID   *kernel.UUID
	descriptionID *kernel.UUID

	isConstructed bool
}

// NewCustomerOrder opens a cart for the given user and branch.
// The order starts in NOT_CONFIRMED status with no address, payment, price,
// or deliverer.
func NewCustomerOrder(id, userID, branchID kernel.UUID) (*CustomerOrder, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		branchID.Validate(),
	); err != nil {
		return nil, err
	}

	return &CustomerOrder{
		id:            id,
		createdAt:     time.Now().UTC(),
		userID:        userID,
		branchID:      branchID,
		status:        NotConfirmed,
		isConstructed: true,
	}, nil
}

// RestoreCustomerOrder rehydrates a customer order from persistence.
// Beyond field validation it checks the consistency between status and the
// optional fields: confirmed orders must carry address, payment, and price;
// claimed orders must carry a deliverer; failed orders must carry a
// description.
func RestoreCustomerOrder(
	id kernel.UUID,
	createdAt time.Time,
	isDeleted bool,
	userID kernel.UUID,
	branchID kernel.UUID,
	addressID *kernel.UUID,
	status Status,
	price *kernel.Price,
	paymentType *PaymentType,
	delivererID *kernel.UUID,
	descriptionID *kernel.UUID,
) (*CustomerOrder, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		branchID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order := &CustomerOrder{
		id:            id,
		createdAt:     createdAt,
		isDeleted:     isDeleted,
		userID:        userID,
		branchID:      branchID,
		addressID:     addressID,
		status:        status,
		price:         price,
		paymentType:   paymentType,
		delivererID:   delivererID,
		descriptionID: descriptionID,
		isConstructed: true,
	}

	if err := order.validateConsistency(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the CustomerOrder was created through a constructor.
func (o *CustomerOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrCustomerOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two customer orders by their unique identifiers.
func (o *CustomerOrder) IsEqual(other *CustomerOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsOpen reports whether the order is still the user's mutable cart.
func (o *CustomerOrder) IsOpen() bool {
	return o.status == NotConfirmed
}

// Confirm promotes the cart into the delivery workflow.
// Requires a delivery address, a payment type, and the computed order total
// (the sum over all line items). Transitions NOT_CONFIRMED to
// LOOKING_FOR_A_DELIVERER; any other starting status is rejected.
func (o *CustomerOrder) Confirm(addressID kernel.UUID, paymentType PaymentType, total kernel.Price) error {
	if err := errors.Join(
		addressID.Validate(),
		paymentType.Validate(),
		total.Validate(),
	); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.addressID = &addressID
	o.paymentType = &paymentType
	o.price = &total
	return nil
}

// Claim assigns the order to a deliverer.
// Transitions LOOKING_FOR_A_DELIVERER to YOUR_ORDER_RECEIVED. A second claim
// is a conflict, not a reassignment: the first deliverer keeps the order.
func (o *CustomerOrder) Claim(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}

	if o.delivererID != nil {
		return errs.NewConflictErrorWithCause("customerOrderID", o.id.String(),
			fmt.Errorf("already claimed by deliverer %s", o.delivererID))
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.delivererID = &delivererID
	return nil
}

// ConfirmPickup records that the assigned deliverer picked the order up.
// Transitions YOUR_ORDER_RECEIVED to IN_TRANSIT.
func (o *CustomerOrder) ConfirmPickup(by kernel.UUID) error {
	if err := o.validateDeliverer(by); err != nil {
		return err
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteDelivery records a successful drop-off.
// Transitions IN_TRANSIT to DELIVERED; the order becomes part of the user's
// archive.
func (o *CustomerOrder) CompleteDelivery(by kernel.UUID) error {
	if err := o.validateDeliverer(by); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// FailDelivery records a cancelled delivery with a persisted reason.
// Transitions YOUR_ORDER_RECEIVED or IN_TRANSIT to FAILED_DELIVERY and links
// the Description carrying the deliverer's free-text reason.
func (o *CustomerOrder) FailDelivery(by, descriptionID kernel.UUID) error {
	if err := o.validateDeliverer(by); err != nil {
		return err
	}
	if err := descriptionID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.descriptionID = &descriptionID
	return nil
}

// ID returns the order's unique identifier.
func (o *CustomerOrder) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns the construction timestamp.
func (o *CustomerOrder) CreatedAt() time.Time {
	return o.createdAt
}

// IsDeleted returns the soft-delete flag.
func (o *CustomerOrder) IsDeleted() bool {
	return o.isDeleted
}

// UserID returns the owning user's identifier.
func (o *CustomerOrder) UserID() kernel.UUID {
	return o.userID
}

// BranchID returns the branch the cart is scoped to.
func (o *CustomerOrder) BranchID() kernel.UUID {
	return o.branchID
}

// AddressID returns the delivery address, or nil before confirmation.
func (o *CustomerOrder) AddressID() *kernel.UUID {
	return o.addressID
}

// Status returns the current status of the order.
func (o *CustomerOrder) Status() Status {
	return o.status
}

// Price returns the confirmed order total, or nil before confirmation.
func (o *CustomerOrder) Price() *kernel.Price {
	return o.price
}

// PaymentType returns the payment type, or nil before confirmation.
func (o *CustomerOrder) PaymentType() *PaymentType {
	return o.paymentType
}

// DelivererID returns the assigned deliverer, or nil before a claim.
func (o *CustomerOrder) DelivererID() *kernel.UUID {
	return o.delivererID
}

// DescriptionID returns the failure reason reference, or nil.
func (o *CustomerOrder) DescriptionID() *kernel.UUID {
	return o.descriptionID
}

func (o *CustomerOrder) validateDeliverer(by kernel.UUID) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if o.delivererID == nil || !o.delivererID.IsEqual(by) {
		return ErrWrongDeliverer
	}
	return nil
}

func (o *CustomerOrder) validateConsistency() error {
	confirmed := o.status != NotConfirmed
	if confirmed && (o.addressID == nil || o.paymentType == nil || o.price == nil) {
		return errs.NewValueIsInvalidErrorWithCause("customerOrder",
			fmt.Errorf("%s order must have address, payment type, and price", o.status))
	}

	claimed := o.status == OrderReceived || o.status == InTransit ||
		o.status == Delivered || o.status == FailedDelivery
	if claimed && o.delivererID == nil {
		return errs.NewValueIsInvalidErrorWithCause("customerOrder",
			fmt.Errorf("%s order must have a deliverer", o.status))
	}
	if o.status == NotConfirmed && o.delivererID != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerOrder",
			fmt.Errorf("%s order must not have a deliverer", o.status))
	}

	if o.status == FailedDelivery && o.descriptionID == nil {
		return errs.NewValueIsInvalidErrorWithCause("customerOrder",
			fmt.Errorf("%s order must have a failure description", o.status))
	}

	return nil
}
