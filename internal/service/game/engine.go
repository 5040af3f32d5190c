package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

// MoveSource supplies the column a side wants to play. Human sources absorb
// malformed input themselves; the engine still re-checks legality.
type MoveSource interface {
	NextMove(ctx context.Context, board *domain.Grid, player domain.PlayerID) (int, error)
}

type Side struct {
	Name   string
	Marker domain.PlayerID
	Source MoveSource
	// RecordWins sends this side's wins to the score store.
	RecordWins bool
}

type BoardSaver interface {
	SaveBoard(board *domain.Grid) error
}

type ScoreRecorder interface {
	RecordWin(ctx context.Context, playerName string) error
}

type Publisher interface {
	PublishGameOver(ctx context.Context, result Result) error
}

// Observer is told about every state transition, usually to render it.
type Observer interface {
	GameStarted(board *domain.Grid, first, second Side)
	MoveApplied(board *domain.Grid, side Side, row, column int)
	MoveRejected(side Side, column int, err error)
	GameOver(board *domain.Grid, result Result)
}

type Result struct {
	GameID     string
	Status     domain.GameStatus
	Winner     domain.PlayerID
	WinnerName string
	Moves      int
	StartedAt  time.Time
	Duration   time.Duration
	// Predecided is set when the starting board was already won or full,
	// so no move was played.
	Predecided bool
}

func (r Result) IsDraw() bool {
	return r.Status == domain.StatusDraw
}

// Dependencies are the collaborators invoked at the end of a game. Any of
// them may be nil.
type Dependencies struct {
	Saver     BoardSaver
	Scores    ScoreRecorder
	Publisher Publisher
	Observer  Observer
	Logger    *log.Logger
}

// Engine runs one game at a time on a board it exclusively owns.
type Engine struct {
	board     *domain.Grid
	sides     [2]Side
	saver     BoardSaver
	scores    ScoreRecorder
	publisher Publisher
	observer  Observer
	logger    *log.Logger
	now       func() time.Time
}

// NewEngine wires a game between first (who moves first) and second.
func NewEngine(board *domain.Grid, first, second Side, deps Dependencies) (*Engine, error) {
	if board == nil {
		return nil, errors.New("board is required")
	}
	if !first.Marker.IsPlayer() || !second.Marker.IsPlayer() || first.Marker == second.Marker {
		return nil, fmt.Errorf("%w: sides must use distinct player markers", domain.ErrInvalidMarker)
	}
	if first.Source == nil || second.Source == nil {
		return nil, errors.New("both sides need a move source")
	}

	e := &Engine{
		board:     board,
		sides:     [2]Side{first, second},
		saver:     deps.Saver,
		scores:    deps.Scores,
		publisher: deps.Publisher,
		observer:  deps.Observer,
		logger:    deps.Logger,
		now:       time.Now,
	}
	if e.saver == nil {
		e.saver = nopSaver{}
	}
	if e.scores == nil {
		e.scores = nopScores{}
	}
	if e.publisher == nil {
		e.publisher = nopPublisher{}
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e, nil
}

func (e *Engine) sideFor(player domain.PlayerID) Side {
	if e.sides[0].Marker == player {
		return e.sides[0]
	}
	return e.sides[1]
}

// Play runs turns until the game is won or drawn. The board may already
// hold a loaded position. An error is returned only when a move source
// fails; the game is then abandoned without a result.
func (e *Engine) Play(ctx context.Context) (Result, error) {
	game := domain.NewGame(e.board, e.sides[0].Marker)
	result := Result{GameID: uid.GenerateGameID(), StartedAt: e.now()}

	e.logger.Printf("[ENGINE] Game %s started: %s (%c) vs %s (%c)", result.GameID,
		e.sides[0].Name, e.sides[0].Marker.Symbol(), e.sides[1].Name, e.sides[1].Marker.Symbol())
	e.observer.GameStarted(e.board, e.sides[0], e.sides[1])
	result.Predecided = game.IsFinished()

	for !game.IsFinished() {
		side := e.sideFor(game.CurrentPlayer)

		column, err := side.Source.NextMove(ctx, e.board, side.Marker)
		if err != nil {
			e.logger.Printf("[ENGINE] Game %s abandoned: move source for %s failed: %v", result.GameID, side.Name, err)
			return Result{}, fmt.Errorf("move source for %s: %w", side.Name, err)
		}

		row, err := game.MakeMove(side.Marker, column)
		if err != nil {
			if errors.Is(err, domain.ErrColumnFull) || errors.Is(err, domain.ErrInvalidColumn) {
				// same side goes again
				e.observer.MoveRejected(side, column, err)
				continue
			}
			return Result{}, fmt.Errorf("apply move for %s: %w", side.Name, err)
		}
		e.observer.MoveApplied(e.board, side, row, column)
	}

	result.Status = game.Status
	result.Winner = game.Winner
	result.Moves = game.MoveCount
	result.Duration = e.now().Sub(result.StartedAt)
	if game.Status == domain.StatusWon {
		result.WinnerName = e.sideFor(game.Winner).Name
	}

	e.finish(ctx, result)
	return result, nil
}

// finish runs the end-of-game collaborators. Their failures are logged and
// never change the result.
func (e *Engine) finish(ctx context.Context, result Result) {
	if result.IsDraw() {
		e.logger.Printf("[ENGINE] Game %s drawn after %d moves", result.GameID, result.Moves)
	} else {
		e.logger.Printf("[ENGINE] Game %s won by %s after %d moves", result.GameID, result.WinnerName, result.Moves)
	}

	// nothing was played on a board that came in decided
	if result.Predecided {
		e.logger.Printf("[ENGINE] Game %s started from a decided board, nothing recorded", result.GameID)
		e.observer.GameOver(e.board, result)
		return
	}

	if err := e.saver.SaveBoard(e.board); err != nil {
		e.logger.Printf("[ENGINE] Failed to save final board for game %s: %v", result.GameID, err)
	}

	if result.Status == domain.StatusWon && e.sideFor(result.Winner).RecordWins {
		if err := e.scores.RecordWin(ctx, result.WinnerName); err != nil {
			e.logger.Printf("[ENGINE] Failed to record win for %s: %v", result.WinnerName, err)
		}
	}

	if err := e.publisher.PublishGameOver(ctx, result); err != nil {
		e.logger.Printf("[ENGINE] Failed to publish game over for %s: %v", result.GameID, err)
	}

	e.observer.GameOver(e.board, result)
}
