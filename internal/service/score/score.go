package score

import (
	"context"
	"fmt"
	"regexp"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const DefaultStandingsLimit = 10

type Standing struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	Wins       int    `json:"wins"`
}

// Store keeps a win counter per player name.
type Store interface {
	RecordWin(ctx context.Context, playerName string) error
	Standings(ctx context.Context, limit int) ([]Standing, error)
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateName accepts letters, digits and underscores only.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPlayerName, name)
	}
	return nil
}

// NopStore is used when no database is configured: wins are dropped and
// the standings are always empty.
type NopStore struct{}

func (NopStore) RecordWin(context.Context, string) error { return nil }

func (NopStore) Standings(context.Context, int) ([]Standing, error) { return []Standing{}, nil }
