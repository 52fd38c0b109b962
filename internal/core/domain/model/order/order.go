package order

import (
	"errors"
	"fmt"
	"slices"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrTotalPriceMismatch is returned by RestoreOrder when the stored total
	// disagrees with the stored items.
	ErrTotalPriceMismatch = errors.New("stored total price does not match order items")
)

// Order is the aggregate root. It owns its items and keeps totalPrice equal to
// the sum of item line totals after every mutation. Items are never shared
// between orders and are only reachable through the aggregate.
//
// Example:
//
//	o, _ := order.NewOrder(kernel.NewUUID(), ownerID)
//	first, _ := o.AddItem(kernel.NewUUID(), 2, kernel.MustMoney("5.0"), "pepperoni", "large")
//	_, _ = o.AddItem(kernel.NewUUID(), 1, kernel.MustMoney("3.5"), "margherita", "small")
//	_ = o.RemoveItem(first.ID())
//	fmt.Println(o.TotalPrice()) // 3.5
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID is the user the order belongs to; set once at creation
	ownerID kernel.UUID

	// status is the current lifecycle state
	status Status

	// totalPrice is derived from items and never set directly
	totalPrice kernel.Money

	// items are the line items, in insertion order
	items []*Item

	// events recorded since the aggregate was loaded
	events []Event

	isConstructed bool
}

// NewOrder creates a Pending order with no items and a zero total for the
// given owner. An order.created event is recorded.
func NewOrder(id kernel.UUID, ownerID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        Pending,
		totalPrice:    kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	o.record(EventCreated, nil)
	return o, nil
}

// RestoreOrder rebuilds an order from storage. Every item must reference this
// order, and totalPrice must equal the recomputed sum of the items.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	status Status,
	totalPrice kernel.Money,
	items []*Item,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setStatus(status),
		totalPrice.Validate(),
	); err != nil {
		return nil, err
	}

	if err := o.setItems(items); err != nil {
		return nil, err
	}

	o.recalculateTotal()
	if !o.totalPrice.IsEqual(totalPrice) {
		return nil, fmt.Errorf("%w: order %s stores %s, items sum to %s",
			ErrTotalPriceMismatch, id, totalPrice, o.totalPrice)
	}

	return o, nil
}

// Validate reports whether the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the id of the user who owns the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the derived sum of all line totals.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Items returns the line items in insertion order. The slice is a copy.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// ItemCount returns the number of line items.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Item looks up a line item by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	idx := o.itemIndex(itemID)
	if idx < 0 {
		return nil, false
	}
	return o.items[idx], true
}

// AddItem appends a line item and recomputes the total. The order status is
// not consulted.
//
// Parameters:
//   - itemID: identifier of the new line
//   - quantity: must be greater than 0
//   - unitPrice: constructed, non-negative amount
//   - flavor, size: descriptive, stored as given
//
// Returns:
//   - *Item: the added line
//   - error: validation error, or a conflict if itemID is already in the order
func (o *Order) AddItem(itemID kernel.UUID, quantity int, unitPrice kernel.Money, flavor, size string) (*Item, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.itemIndex(itemID) >= 0 {
		return nil, errs.NewConflictError("order", fmt.Sprintf("item %s is already in order %s", itemID, o.id))
	}

	item, err := RestoreItem(itemID, o.id, quantity, unitPrice, flavor, size)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.recalculateTotal()
	o.record(EventItemAdded, &itemID)

	return item, nil
}

// RemoveItem deletes a line item and recomputes the total.
// Returns an ObjectNotFoundError if the item is not part of this order.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}

	idx := o.itemIndex(itemID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("item", itemID.String())
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	o.recalculateTotal()
	o.record(EventItemRemoved, &itemID)

	return nil
}

// Cancel moves the order to Cancelled. Cancelling a cancelled order succeeds
// without recording an event; cancelling a finalized order is a conflict.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	o.status = newStatus
	o.record(EventCancelled, nil)
	return nil
}

// Finalize moves the order to Finalized. Finalizing a finalized order succeeds
// without recording an event; finalizing a cancelled order is a conflict.
func (o *Order) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	o.status = newStatus
	o.record(EventFinalized, nil)
	return nil
}

// recalculateTotal sums every line from scratch.
func (o *Order) recalculateTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	o.totalPrice = total
}

func (o *Order) itemIndex(itemID kernel.UUID) int {
	return slices.IndexFunc(o.items, func(item *Item) bool {
		return item.id.IsEqual(itemID)
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	o.items = make([]*Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.orderID.IsEqual(o.id) {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %s belongs to order %s, not %s", item.id, item.orderID, o.id))
		}
		if o.itemIndex(item.id) >= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %s is listed twice", item.id))
		}
		o.items = append(o.items, item)
	}
	return nil
}
