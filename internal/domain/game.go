package domain

import "fmt"

type Game struct {
	Board         *Grid
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
}

// NewGame starts a game on board with first to move. A board loaded from a
// snapshot may already be decided, in which case the game starts terminal.
func NewGame(board *Grid, first PlayerID) *Game {
	if !first.IsPlayer() {
		first = Player1
	}
	g := &Game{
		Board:         board,
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
	}
	g.evaluate()
	return g
}

func (g *Game) evaluate() {
	for _, p := range []PlayerID{Player1, Player2} {
		if HasWin(g.Board, p) {
			g.Status = StatusWon
			g.Winner = p
			return
		}
	}
	if g.Board.IsFull() {
		g.Status = StatusDraw
	}
}

// MakeMove applies a drop for player. A rejected move leaves the board, the
// turn and the status unchanged.
func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}
	if player != g.CurrentPlayer {
		return -1, fmt.Errorf("%w: %d", ErrNotYourTurn, player)
	}

	row, err := g.Board.DropMarker(column, player)
	if err != nil {
		return -1, err
	}
	g.MoveCount++

	if HasWin(g.Board, player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

// Reset clears the board and starts over with first to move.
func (g *Game) Reset(first PlayerID) {
	g.Board.Reset()
	if !first.IsPlayer() {
		first = Player1
	}
	g.CurrentPlayer = first
	g.Status = StatusActive
	g.Winner = Empty
	g.MoveCount = 0
}
