package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event interface {
	Type() string
}

type ItemAddedToOrder struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Price     decimal.Decimal
	Quantity  int
}

func (e ItemAddedToOrder) Type() string { return "ItemAddedToOrder" }

type ItemQuantityIncreased struct {
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	Price       decimal.Decimal
	Added       int
	NewQuantity int
}

func (e ItemQuantityIncreased) Type() string { return "ItemQuantityIncreased" }
