package order

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not built by its constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via Order.AddItem or RestoreItem")

// Item is one line of an order. Flavor and size are descriptive only; the
// price invariant depends on quantity and unit price alone.
type Item struct {
	id        kernel.UUID
	orderID   kernel.UUID
	quantity  int
	unitPrice kernel.Money
	flavor    string
	size      string

	isConstructed bool
}

// RestoreItem rebuilds a line item read from storage. New items are created
// through Order.AddItem so the order total stays in step.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	flavor string,
	size string,
) (*Item, error) {
	item := &Item{
		flavor:        flavor,
		size:          size,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate reports ErrItemIsNotConstructed for a nil or zero-value Item.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the owning order. It never changes.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// Quantity is always at least one.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
//
// Example:
//
//	item.UnitPrice().MulQuantity(item.Quantity()) // same as item.LineTotal()
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Flavor may be empty.
func (i *Item) Flavor() string {
	return i.flavor
}

// Size may be empty.
func (i *Item) Size() string {
	return i.size
}

// LineTotal returns quantity × unit price.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	i.unitPrice = unitPrice
	return nil
}
