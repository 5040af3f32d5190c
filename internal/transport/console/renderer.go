package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
	"github.com/mattn/go-runewidth"
)

const (
	ANSIRed    = "\u001B[31m"
	ANSIYellow = "\u001B[33m"
	ANSIReset  = "\u001B[0m"
)

const nameWidth = 20

func Colorize(color, message string) string {
	return color + message + ANSIReset
}

// Renderer draws boards and game events as text. It implements game.Observer.
type Renderer struct {
	out   io.Writer
	color bool
}

func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color}
}

func (r *Renderer) cell(p domain.PlayerID) string {
	symbol := string(p.Symbol())
	if !r.color {
		return symbol
	}
	switch p {
	case domain.Player1:
		return Colorize(ANSIRed, symbol)
	case domain.Player2:
		return Colorize(ANSIYellow, symbol)
	}
	return symbol
}

func (r *Renderer) RenderBoard(board *domain.Grid) {
	var sb strings.Builder
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Columns(); col++ {
			p, _ := board.CellAt(row, col)
			sb.WriteString(r.cell(p))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("--", board.Columns()))
	sb.WriteByte('\n')
	for col := 0; col < board.Columns(); col++ {
		fmt.Fprintf(&sb, "%d ", col)
	}
	sb.WriteByte('\n')
	io.WriteString(r.out, sb.String())
}

func (r *Renderer) GameStarted(board *domain.Grid, first, second game.Side) {
	fmt.Fprintf(r.out, "%s (%s) vs %s (%s)\n", first.Name, r.cell(first.Marker), second.Name, r.cell(second.Marker))
	r.RenderBoard(board)
	fmt.Fprintln(r.out)
}

func (r *Renderer) MoveApplied(board *domain.Grid, side game.Side, _, column int) {
	fmt.Fprintf(r.out, "%s dropped into column %d\n", side.Name, column)
	r.RenderBoard(board)
	fmt.Fprintln(r.out)
}

func (r *Renderer) MoveRejected(side game.Side, column int, err error) {
	switch {
	case errors.Is(err, domain.ErrColumnFull):
		fmt.Fprintf(r.out, "Column %d is full. %s, choose another column.\n", column, side.Name)
	default:
		fmt.Fprintf(r.out, "Column %d is not on the board. %s, choose another column.\n", column, side.Name)
	}
}

func (r *Renderer) GameOver(_ *domain.Grid, result game.Result) {
	if result.Predecided {
		fmt.Fprintln(r.out, "The loaded board is already decided. Nothing was played.")
	}
	if result.IsDraw() {
		fmt.Fprintln(r.out, "The game is a draw!")
		return
	}
	fmt.Fprintf(r.out, "%s wins!\n", result.WinnerName)
}

func (r *Renderer) RenderStandings(standings []score.Standing) {
	if len(standings) == 0 {
		fmt.Fprintln(r.out, "No high scores yet.")
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", runewidth.FillRight("Name", nameWidth), "Wins")
	fmt.Fprintf(r.out, "%s %s\n", strings.Repeat("-", nameWidth), "----")
	for _, s := range standings {
		name := runewidth.Truncate(s.PlayerName, nameWidth, "…")
		fmt.Fprintf(r.out, "%s %d\n", runewidth.FillRight(name, nameWidth), s.Wins)
	}
}
