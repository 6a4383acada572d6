// Package utils provides general-purpose helper utilities used across
// different parts of the application, currently identifier generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers for activity-log
// entries, case-scoped providers, and request tracing.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
