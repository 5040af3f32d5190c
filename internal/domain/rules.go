package domain

// horizontal, vertical, diagonal down-right, diagonal down-left
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// HasWin scans every cell for a run of ToWin markers in any direction.
func HasWin(g *Grid, player PlayerID) bool {
	if !player.IsPlayer() {
		return false
	}
	for _, d := range directions {
		dRow, dCol := d[0], d[1]
		for row := 0; row < g.rows; row++ {
			for col := 0; col < g.columns; col++ {
				// the run has to stay on the board
				if !g.inBounds(row+(ToWin-1)*dRow, col+(ToWin-1)*dCol) {
					continue
				}
				if runFrom(g, row, col, dRow, dCol, player) {
					return true
				}
			}
		}
	}
	return false
}

func runFrom(g *Grid, row, col, dRow, dCol int, player PlayerID) bool {
	for i := 0; i < ToWin; i++ {
		if g.cells[row+i*dRow][col+i*dCol] != player {
			return false
		}
	}
	return true
}

// HasWinAt only checks lines passing through (row, column), which is enough
// right after a marker lands there.
func HasWinAt(g *Grid, row, column int, player PlayerID) bool {
	if !player.IsPlayer() || !g.inBounds(row, column) || g.cells[row][column] != player {
		return false
	}

	for _, d := range directions {
		forward := g.CountDiskInDirection(row, column, d[0], d[1], player)
		backward := g.CountDiskInDirection(row, column, -d[0], -d[1], player)
		if 1+forward+backward >= ToWin {
			return true
		}
	}
	return false
}
