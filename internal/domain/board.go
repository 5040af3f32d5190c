package domain

import (
	"fmt"
	"strings"
)

// Grid is the board. Row 0 is the top row, so markers settle at the
// highest free row index of a column.
type Grid struct {
	rows    int
	columns int
	cells   [][]PlayerID
}

// NewBoard returns an empty grid with the standard 6x7 dimensions.
func NewBoard() *Grid {
	g, _ := NewGrid(Rows, Columns)
	return g
}

func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, columns)
	}
	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, columns)
	}
	return &Grid{rows: rows, columns: columns, cells: cells}, nil
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.columns }

// DropMarker places marker at the lowest empty cell of column and returns
// the row it landed on. The grid is left untouched on error.
func (g *Grid) DropMarker(column int, marker PlayerID) (int, error) {
	if !marker.IsPlayer() {
		return -1, fmt.Errorf("%w: %d", ErrInvalidMarker, marker)
	}
	if column < 0 || column >= g.columns {
		return -1, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidColumn, column, g.columns)
	}

	// shifting the disk from top to bottom till it
	// reaches the floor or another disk
	for row := g.rows - 1; row >= 0; row-- {
		if g.cells[row][column] == Empty {
			g.cells[row][column] = marker
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: %d", ErrColumnFull, column)
}

// IsFull only looks at the top row; gravity guarantees the rest.
func (g *Grid) IsFull() bool {
	for c := 0; c < g.columns; c++ {
		if g.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

func (g *Grid) IsColumnFull(column int) bool {
	if column < 0 || column >= g.columns {
		return true
	}
	return g.cells[0][column] != Empty
}

func (g *Grid) CellAt(row, column int) (PlayerID, error) {
	if !g.inBounds(row, column) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, column)
	}
	return g.cells[row][column], nil
}

func (g *Grid) Reset() {
	for _, row := range g.cells {
		for c := range row {
			row[c] = Empty
		}
	}
}

// ValidMoves lists the columns that can still take a marker.
func (g *Grid) ValidMoves() []int {
	moves := make([]int, 0, g.columns)
	for c := 0; c < g.columns; c++ {
		if g.cells[0][c] == Empty {
			moves = append(moves, c)
		}
	}
	return moves
}

// SetRow overwrites a whole row. It exists for snapshot loading only and
// does not enforce gravity; callers must run CheckGravity afterwards.
func (g *Grid) SetRow(row int, values []PlayerID) error {
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d", ErrOutOfBounds, row)
	}
	if len(values) != g.columns {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrOutOfBounds, row, len(values), g.columns)
	}
	for c, v := range values {
		if v != Empty && !v.IsPlayer() {
			return fmt.Errorf("%w: %d", ErrInvalidMarker, v)
		}
		g.cells[row][c] = v
	}
	return nil
}

// CheckGravity reports whether every marker rests on the floor or on another marker.
func (g *Grid) CheckGravity() error {
	for c := 0; c < g.columns; c++ {
		for r := 0; r < g.rows-1; r++ {
			if g.cells[r][c] != Empty && g.cells[r+1][c] == Empty {
				return fmt.Errorf("floating marker at (%d,%d)", r, c)
			}
		}
	}
	return nil
}

// this creates a deep copy of the board
func (g *Grid) Clone() *Grid {
	clone := &Grid{rows: g.rows, columns: g.columns, cells: g.Snapshot()}
	return clone
}

func (g *Grid) Snapshot() [][]PlayerID {
	cells := make([][]PlayerID, len(g.cells))
	for i := range g.cells {
		cells[i] = make([]PlayerID, len(g.cells[i]))
		copy(cells[i], g.cells[i])
	}
	return cells
}

// String renders one line per row using the snapshot symbols.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for _, row := range g.cells {
		for _, cell := range row {
			sb.WriteRune(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) inBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// this counts the number of disks in a specific direction
func (g *Grid) CountDiskInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for g.inBounds(r, c) && g.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
