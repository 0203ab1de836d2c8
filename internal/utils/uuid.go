package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new rows. Version 7 ids are time
// ordered, which keeps the primary key index compact.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new version 7 UUID, falling back to version 4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
