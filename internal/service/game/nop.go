package game

import (
	"context"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type nopSaver struct{}

func (nopSaver) SaveBoard(*domain.Grid) error { return nil }

type nopScores struct{}

func (nopScores) RecordWin(context.Context, string) error { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishGameOver(context.Context, Result) error { return nil }

type nopObserver struct{}

func (nopObserver) GameStarted(*domain.Grid, Side, Side) {}
func (nopObserver) MoveApplied(*domain.Grid, Side, int, int) {}
func (nopObserver) MoveRejected(Side, int, error) {}
func (nopObserver) GameOver(*domain.Grid, Result) {}
