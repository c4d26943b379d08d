package model

import "github.com/shopspring/decimal"

// Item is a single order line. Order may increase Quantity of an item it already holds.
type Item struct {
	Product  Product
	Price    decimal.Decimal
	Quantity int
}

func NewItem(product Product, price decimal.Decimal, quantity int) *Item {
	return &Item{
		Product:  product,
		Price:    price,
		Quantity: quantity,
	}
}

// NewItemFromFloat keeps the shortest decimal that round-trips the float, so 10.1 stays 10.1.
func NewItemFromFloat(product Product, price float64, quantity int) *Item {
	return NewItem(product, decimal.NewFromFloat(price), quantity)
}
