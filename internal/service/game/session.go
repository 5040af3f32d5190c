package game

import (
	"context"
	"log"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type BoardLoader interface {
	LoadBoard(board *domain.Grid) error
}

// Session replays games between the same two sides on one board. Every
// game starts from a reset board, optionally filled by Loader.
type Session struct {
	Board  *domain.Grid
	Loader BoardLoader
	First  Side
	Second Side
	Deps   Dependencies
}

func (s *Session) PlayOnce(ctx context.Context) (Result, error) {
	logger := s.Deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	s.Board.Reset()
	if s.Loader != nil {
		if err := s.Loader.LoadBoard(s.Board); err != nil {
			logger.Printf("[ENGINE] Could not load starting board, using an empty one: %v", err)
			s.Board.Reset()
		}
	}

	engine, err := NewEngine(s.Board, s.First, s.Second, s.Deps)
	if err != nil {
		return Result{}, err
	}
	return engine.Play(ctx)
}
