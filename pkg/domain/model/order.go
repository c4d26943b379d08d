package model

import (
	"slices"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrIncorrectItem = errors.New("incorrect item")
	ErrNilItem       = errors.New("item must not be nil")
	ErrNilOrder      = errors.New("order must not be nil")
)

// Order keeps at most one line per (product, price) pair. It is not safe for concurrent use.
type Order struct {
	id     uuid.UUID
	items  []*Item
	events []Event
}

func NewOrder() *Order {
	return &Order{
		id:    uuid.New(),
		items: make([]*Item, 0),
	}
}

func (o *Order) ID() uuid.UUID {
	return o.id
}

// Items returns the lines in insertion order. The slice is a copy, the items are shared.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// AddItem merges item into the line with the same product and an equal price,
// or appends it as a new line. A rejected item leaves the order unchanged.
func (o *Order) AddItem(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	if item.Price.IsNegative() {
		return errors.Wrapf(ErrIncorrectItem, "negative price %s", item.Price)
	}
	if item.Quantity <= 0 {
		return errors.Wrapf(ErrIncorrectItem, "non-positive quantity %d", item.Quantity)
	}

	for _, line := range o.items {
		if !line.Product.Equal(item.Product) {
			continue
		}
		// same product at another price is a separate offer
		if !line.Price.Equal(item.Price) {
			continue
		}

		line.Quantity += item.Quantity
		o.record(ItemQuantityIncreased{
			OrderID:     o.id,
			ProductID:   line.Product.ID,
			Price:       line.Price,
			Added:       item.Quantity,
			NewQuantity: line.Quantity,
		})
		return nil
	}

	o.items = append(o.items, item)
	o.record(ItemAddedToOrder{
		OrderID:   o.id,
		ProductID: item.Product.ID,
		Price:     item.Price,
		Quantity:  item.Quantity,
	})
	return nil
}

// Events returns the events recorded since the previous call and forgets them.
func (o *Order) Events() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(event Event) {
	o.events = append(o.events, event)
}
