package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
)

type inputLine struct {
	text string
	err  error
}

// Prompter reads answers line by line and keeps asking until it gets a
// usable one. It only gives up when the input ends or ctx is cancelled.
// Lines are read on a separate goroutine so a cancelled context releases a
// caller blocked on the terminal.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan inputLine
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, lines: make(chan inputLine)}
}

func (p *Prompter) scan() {
	defer close(p.lines)
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- inputLine{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		p.lines <- inputLine{err: err}
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.once.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", line.err
		}
		return strings.TrimSpace(line.text), nil
	}
}

// ReadColumn returns a column in [0, maxColumn].
func (p *Prompter) ReadColumn(ctx context.Context, maxColumn int) (int, error) {
	for {
		fmt.Fprintf(p.out, "Enter column (0-%d) to make your move: ", maxColumn)
		line, err := p.readLine(ctx)
		if err != nil {
			return -1, err
		}

		col, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if col < 0 || col > maxColumn {
			fmt.Fprintf(p.out, "Invalid column. Please enter a number between 0 and %d.\n", maxColumn)
			continue
		}
		return col, nil
	}
}

// NextMove makes the prompter the human side's move source.
func (p *Prompter) NextMove(ctx context.Context, board *domain.Grid, _ domain.PlayerID) (int, error) {
	return p.ReadColumn(ctx, board.Columns()-1)
}

func (p *Prompter) ReadName(ctx context.Context) (string, error) {
	for {
		fmt.Fprint(p.out, "Enter your name: ")
		name, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if err := score.ValidateName(name); err != nil {
			fmt.Fprintln(p.out, "Invalid name. Use letters, digits and underscores only.")
			continue
		}
		return name, nil
	}
}

func (p *Prompter) ReadMenuChoice(ctx context.Context) (int, error) {
	for {
		fmt.Fprint(p.out, "Enter your choice: ")
		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		return choice, nil
	}
}

func (p *Prompter) WaitForEnter(ctx context.Context) error {
	fmt.Fprintln(p.out, "Press Enter to return to the menu.")
	_, err := p.readLine(ctx)
	return err
}
