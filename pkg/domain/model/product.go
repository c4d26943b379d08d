package model

import "github.com/google/uuid"

type Product struct {
	ID   uuid.UUID
	Name string
}

// Equal reports whether both values identify the same product. Name is not part of the identity.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID
}
