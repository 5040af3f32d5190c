package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// symbols used by the text snapshot format and the console renderer
const (
	EmptySymbol   = '-'
	Player1Symbol = 'R'
	Player2Symbol = 'Y'
)

func (p PlayerID) Symbol() rune {
	switch p {
	case Player1:
		return Player1Symbol
	case Player2:
		return Player2Symbol
	default:
		return EmptySymbol
	}
}

func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) IsPlayer() bool {
	return p == Player1 || p == Player2
}

// PlayerFromSymbol maps a snapshot character back to a cell value.
func PlayerFromSymbol(r rune) (PlayerID, bool) {
	switch r {
	case EmptySymbol:
		return Empty, true
	case Player1Symbol:
		return Player1, true
	case Player2Symbol:
		return Player2, true
	}
	return Empty, false
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn     Error = "invalid column"
	ErrColumnFull        Error = "column is full"
	ErrOutOfBounds       Error = "cell index out of bounds"
	ErrInvalidMarker     Error = "invalid marker"
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrBoardFull         Error = "board is full"
	ErrGameOver          Error = "game is already over"
	ErrNotYourTurn       Error = "not this player's turn"
	ErrPersistence       Error = "persistence failure"
	ErrScoreStore        Error = "score store failure"
	ErrInvalidPlayerName Error = "invalid player name"
)
