package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for one played game.
func GenerateGameID() string {
	return uuid.NewString()
}
