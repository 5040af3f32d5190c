package file

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// EndOfGame terminates every snapshot written by SaveBoard.
const EndOfGame = "===="

// BoardStore keeps text snapshots of boards: one line per row, one symbol
// per cell.
type BoardStore struct {
	savePath string
	loadPath string
	logger   *log.Logger
}

func NewBoardStore(savePath, loadPath string, logger *log.Logger) *BoardStore {
	if logger == nil {
		logger = log.Default()
	}
	return &BoardStore{savePath: savePath, loadPath: loadPath, logger: logger}
}

// SaveBoard appends the board followed by the end-of-game line.
func (s *BoardStore) SaveBoard(board *domain.Grid) error {
	if s.savePath == "" {
		return nil
	}
	f, err := os.OpenFile(s.savePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrPersistence, s.savePath, err)
	}

	w := bufio.NewWriter(f)
	w.WriteString(board.String())
	w.WriteString(EndOfGame + "\n")
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, s.savePath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrPersistence, s.savePath, err)
	}

	s.logger.Printf("[BOARD] Final board appended to %s", s.savePath)
	return nil
}

// LoadBoard resets board and fills it from the first rows of the load file.
// A missing file leaves the board empty. Lines of the wrong length or with
// unknown symbols leave their row empty. A snapshot with floating markers,
// or one won by both players, is rejected and the board is reset.
func (s *BoardStore) LoadBoard(board *domain.Grid) error {
	board.Reset()
	if s.loadPath == "" {
		return nil
	}

	f, err := os.Open(s.loadPath)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Printf("[BOARD] No saved board at %s, starting with an empty board", s.loadPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrPersistence, s.loadPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	loaded := 0
	var skipped []int
	for row := 0; row < board.Rows() && scanner.Scan(); row++ {
		line := strings.TrimSpace(scanner.Text())
		if line == EndOfGame {
			break
		}
		cells, ok := parseRow(line, board.Columns())
		if !ok {
			skipped = append(skipped, row)
			continue
		}
		if err := board.SetRow(row, cells); err != nil {
			board.Reset()
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		board.Reset()
		return fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, s.loadPath, err)
	}

	if len(skipped) > 0 {
		s.logger.Printf("[BOARD] Skipped malformed rows %v in %s, they stay empty", skipped, s.loadPath)
	}

	if err := board.CheckGravity(); err != nil {
		board.Reset()
		return fmt.Errorf("%w: %s: %v", domain.ErrPersistence, s.loadPath, err)
	}

	if domain.HasWin(board, domain.Player1) && domain.HasWin(board, domain.Player2) {
		board.Reset()
		return fmt.Errorf("%w: %s: both players have four in a row", domain.ErrPersistence, s.loadPath)
	}

	if loaded == 0 {
		s.logger.Printf("[BOARD] %s holds no usable rows, using an empty board", s.loadPath)
	} else {
		s.logger.Printf("[BOARD] Loaded %d rows from %s", loaded, s.loadPath)
	}
	return nil
}

func parseRow(line string, columns int) ([]domain.PlayerID, bool) {
	runes := []rune(line)
	if len(runes) != columns {
		return nil, false
	}
	cells := make([]domain.PlayerID, columns)
	for i, r := range runes {
		p, ok := domain.PlayerFromSymbol(r)
		if !ok {
			return nil, false
		}
		cells[i] = p
	}
	return cells, true
}
