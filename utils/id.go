package utils

import "github.com/google/uuid"

// GenerateID returns a new entity id.
func GenerateID() string {
	return uuid.New().String()
}
