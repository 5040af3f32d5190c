package game

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type scriptedSource struct {
	columns []int
	calls   int
}

func (s *scriptedSource) NextMove(_ context.Context, _ *domain.Grid, _ domain.PlayerID) (int, error) {
	if s.calls >= len(s.columns) {
		return -1, io.EOF
	}
	col := s.columns[s.calls]
	s.calls++
	return col, nil
}

type recorder struct {
	saves     int
	wins      []string
	published []Result
	rejected  []int
	applied   int
	over      []Result

	saveErr, winErr, publishErr error
}

func (r *recorder) SaveBoard(*domain.Grid) error {
	r.saves++
	return r.saveErr
}

func (r *recorder) RecordWin(_ context.Context, name string) error {
	r.wins = append(r.wins, name)
	return r.winErr
}

func (r *recorder) PublishGameOver(_ context.Context, result Result) error {
	r.published = append(r.published, result)
	return r.publishErr
}

func (r *recorder) GameStarted(*domain.Grid, Side, Side) {}

func (r *recorder) MoveApplied(*domain.Grid, Side, int, int) { r.applied++ }

func (r *recorder) MoveRejected(_ Side, column int, _ error) {
	r.rejected = append(r.rejected, column)
}

func (r *recorder) GameOver(_ *domain.Grid, result Result) {
	r.over = append(r.over, result)
}

func newTestEngine(t *testing.T, board *domain.Grid, first, second Side, rec *recorder) *Engine {
	t.Helper()
	e, err := NewEngine(board, first, second, Dependencies{
		Saver:     rec,
		Scores:    rec,
		Publisher: rec,
		Observer:  rec,
		Logger:    log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestPlayVerticalWin(t *testing.T) {
	rec := &recorder{}
	human := Side{Name: "alice", Marker: domain.Player1, Source: &scriptedSource{columns: []int{0, 0, 0, 0}}, RecordWins: true}
	computer := Side{Name: "Computer", Marker: domain.Player2, Source: &scriptedSource{columns: []int{1, 1, 1}}}

	board := domain.NewBoard()
	result, err := newTestEngine(t, board, human, computer, rec).Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if result.Status != domain.StatusWon || result.Winner != domain.Player1 || result.WinnerName != "alice" {
		t.Fatalf("unexpected result %+v", result)
	}
	if !domain.HasWin(board, domain.Player1) {
		t.Fatalf("board does not hold the win:\n%s", board)
	}
	if result.Moves != 7 || rec.applied != 7 {
		t.Fatalf("moves=%d applied=%d, want 7", result.Moves, rec.applied)
	}
	if rec.saves != 1 || len(rec.wins) != 1 || rec.wins[0] != "alice" || len(rec.published) != 1 || len(rec.over) != 1 {
		t.Fatalf("end-of-game collaborators not called once: %+v", rec)
	}
	if result.GameID == "" || rec.published[0].GameID != result.GameID {
		t.Fatalf("game id not propagated: %+v", result)
	}
}

func TestPlayDraw(t *testing.T) {
	script := []int{
		0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0,
		2, 3, 3, 2, 3, 2, 2, 3, 2, 3, 3, 2,
		4, 5, 6, 4, 5, 6, 5, 4, 4, 6, 4, 5, 6, 4, 6, 5, 5, 6,
	}
	var first, second []int
	for i, col := range script {
		if i%2 == 0 {
			first = append(first, col)
		} else {
			second = append(second, col)
		}
	}

	rec := &recorder{}
	a := Side{Name: "alice", Marker: domain.Player1, Source: &scriptedSource{columns: first}, RecordWins: true}
	b := Side{Name: "bob", Marker: domain.Player2, Source: &scriptedSource{columns: second}, RecordWins: true}

	board := domain.NewBoard()
	result, err := newTestEngine(t, board, a, b, rec).Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Status != domain.StatusDraw || !result.IsDraw() || result.Winner != domain.Empty {
		t.Fatalf("unexpected result %+v\n%s", result, board)
	}
	if !board.IsFull() {
		t.Fatalf("board should be full")
	}
	if len(rec.wins) != 0 {
		t.Fatalf("a draw must not record wins: %v", rec.wins)
	}
	if rec.saves != 1 {
		t.Fatalf("final board saved %d times", rec.saves)
	}
}

func TestPlayRejectedMovesRepromptSameSide(t *testing.T) {
	rec := &recorder{}
	humanSource := &scriptedSource{columns: []int{-1, 7, 0, 0, 0, 0}}
	computerSource := &scriptedSource{columns: []int{6, 6, 6}}
	human := Side{Name: "alice", Marker: domain.Player1, Source: humanSource}
	computer := Side{Name: "Computer", Marker: domain.Player2, Source: computerSource}

	result, err := newTestEngine(t, domain.NewBoard(), human, computer, rec).Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(rec.rejected) != 2 || rec.rejected[0] != -1 || rec.rejected[1] != 7 {
		t.Fatalf("rejections = %v", rec.rejected)
	}
	if computerSource.calls != 3 {
		t.Fatalf("computer asked %d times, want 3", computerSource.calls)
	}
	if result.Winner != domain.Player1 || result.Moves != 7 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestPlayFullColumnIsRetried(t *testing.T) {
	board, _ := domain.NewGrid(2, 4)
	rec := &recorder{}
	// column 0 fills after two drops, so the third request for it is rejected
	a := Side{Name: "a", Marker: domain.Player1, Source: &scriptedSource{columns: []int{0, 0, 1, 1, 3}}}
	b := Side{Name: "b", Marker: domain.Player2, Source: &scriptedSource{columns: []int{0, 2, 2, 3}}}

	result, err := newTestEngine(t, board, a, b, rec).Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(rec.rejected) != 1 || rec.rejected[0] != 0 {
		t.Fatalf("rejections = %v", rec.rejected)
	}
	if result.Status != domain.StatusDraw {
		t.Fatalf("unexpected result %+v\n%s", result, board)
	}
}

func TestPlayCollaboratorFailuresKeepResult(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{saveErr: boom, winErr: boom, publishErr: boom}
	human := Side{Name: "alice", Marker: domain.Player1, Source: &scriptedSource{columns: []int{3, 3, 3, 3}}, RecordWins: true}
	computer := Side{Name: "Computer", Marker: domain.Player2, Source: &scriptedSource{columns: []int{4, 4, 4}}}

	result, err := newTestEngine(t, domain.NewBoard(), human, computer, rec).Play(context.Background())
	if err != nil {
		t.Fatalf("collaborator failures must not surface: %v", err)
	}
	if result.Status != domain.StatusWon || result.WinnerName != "alice" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(rec.over) != 1 {
		t.Fatalf("observer not told about the end of the game")
	}
}

func TestPlayComputerWinIsNotRecorded(t *testing.T) {
	rec := &recorder{}
	human := Side{Name: "alice", Marker: domain.Player1, Source: &scriptedSource{columns: []int{0, 1, 0, 1}}, RecordWins: true}
	computer := Side{Name: "Computer", Marker: domain.Player2, Source: &scriptedSource{columns: []int{5, 5, 5, 5}}}

	result, err := newTestEngine(t, domain.NewBoard(), human, computer, rec).Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Winner != domain.Player2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(rec.wins) != 0 {
		t.Fatalf("computer win recorded: %v", rec.wins)
	}
}

func TestPlayMoveSourceFailureAborts(t *testing.T) {
	rec := &recorder{}
	human := Side{Name: "alice", Marker: domain.Player1, Source: &scriptedSource{columns: []int{0}}}
	computer := Side{Name: "Computer", Marker: domain.Player2, Source: &scriptedSource{columns: []int{1}}}

	_, err := newTestEngine(t, domain.NewBoard(), human, computer, rec).Play(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if rec.saves != 0 || len(rec.over) != 0 {
		t.Fatalf("abandoned game must not be persisted: %+v", rec)
	}
}

func TestPlayOnFullLoadedBoardIsDrawWithoutMoves(t *testing.T) {
	board, _ := domain.NewGrid(1, 2)
	board.DropMarker(0, domain.Player1)
	board.DropMarker(1, domain.Player2)

	rec := &recorder{}
	src := &scriptedSource{}
	a := Side{Name: "a", Marker: domain.Player1, Source: src}
	b := Side{Name: "b", Marker: domain.Player2, Source: src}

	result, err := newTestEngine(t, board, a, b, rec).Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Status != domain.StatusDraw || src.calls != 0 || !result.Predecided {
		t.Fatalf("result=%+v calls=%d", result, src.calls)
	}
	if rec.saves != 0 || len(rec.published) != 0 || len(rec.over) != 1 {
		t.Fatalf("saves=%d published=%d over=%d", rec.saves, len(rec.published), len(rec.over))
	}
}

func TestNewEngineValidatesSides(t *testing.T) {
	src := &scriptedSource{}
	if _, err := NewEngine(domain.NewBoard(), Side{Marker: domain.Player1, Source: src}, Side{Marker: domain.Player1, Source: src}, Dependencies{}); !errors.Is(err, domain.ErrInvalidMarker) {
		t.Fatalf("expected ErrInvalidMarker, got %v", err)
	}
	if _, err := NewEngine(domain.NewBoard(), Side{Marker: domain.Player1}, Side{Marker: domain.Player2, Source: src}, Dependencies{}); err == nil {
		t.Fatalf("expected error for missing move source")
	}
	if _, err := NewEngine(nil, Side{Marker: domain.Player1, Source: src}, Side{Marker: domain.Player2, Source: src}, Dependencies{}); err == nil {
		t.Fatalf("expected error for missing board")
	}
}
