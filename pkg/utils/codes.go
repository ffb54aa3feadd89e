package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateBarcode generates a unique barcode for items created without one
func GenerateBarcode() string {
	return "ITM-" + strings.ToUpper(uuid.New().String()[:8])
}
