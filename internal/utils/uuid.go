package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for local records such as download
// ledger entries. Time-ordered V7 IDs keep the ledger naturally sorted.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
