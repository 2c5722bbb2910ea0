package pkg

import "github.com/google/uuid"

const matchIDLength = 6

// GenerateMatchID - generates a short identifier for a match.
func GenerateMatchID() string {
	return uuid.NewString()[:matchIDLength]
}
