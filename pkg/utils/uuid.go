package utils

import "github.com/google/uuid"

// GenerateID returns a random ID for user and system-log rows.
func GenerateID() string {
	return uuid.New().String()
}
