package bot

import (
	"context"
	"math/rand"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// RandomOpponent picks uniformly among the columns that still have room.
// It is not safe for concurrent use; each game owns its own opponent.
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent uses rng when given, otherwise a time-seeded source.
func NewRandomOpponent(rng *rand.Rand) *RandomOpponent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomOpponent{rng: rng}
}

// ChooseColumn draws columns until one is not full. The board must not be
// full; on a full board it returns -1 instead of spinning forever.
func (o *RandomOpponent) ChooseColumn(board *domain.Grid) int {
	if board.IsFull() {
		return -1
	}
	for {
		col := o.rng.Intn(board.Columns())
		if !board.IsColumnFull(col) {
			return col
		}
	}
}

// NextMove lets the opponent act as the automated side's move source.
func (o *RandomOpponent) NextMove(ctx context.Context, board *domain.Grid, _ domain.PlayerID) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	if board.IsFull() {
		return -1, domain.ErrBoardFull
	}
	return o.ChooseColumn(board), nil
}
