package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
)

const (
	choiceStart     = 1
	choiceStandings = 2
	choiceExit      = 3
)

// Menu is the top-level loop of the console game.
type Menu struct {
	Prompter *Prompter
	Renderer *Renderer
	Out      io.Writer
	Scores   score.Store // nil when no score store is configured
	PlayGame func(ctx context.Context) error
	Logger   *log.Logger
}

// Run shows the menu until the player exits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.Out, "Welcome to Connect 4!")
		fmt.Fprintln(m.Out, "1. Start Game")
		fmt.Fprintln(m.Out, "2. View High Scores")
		fmt.Fprintln(m.Out, "3. Exit")

		choice, err := m.Prompter.ReadMenuChoice(ctx)
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case choiceStart:
			if err := m.PlayGame(ctx); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
					return endOfInput(err)
				}
				fmt.Fprintf(m.Out, "The game could not be finished: %v\n", err)
			}
		case choiceStandings:
			m.showStandings(ctx)
			if err := m.Prompter.WaitForEnter(ctx); err != nil {
				return endOfInput(err)
			}
		case choiceExit:
			fmt.Fprintln(m.Out, "Exiting the game. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.Out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) showStandings(ctx context.Context) {
	if m.Scores == nil {
		fmt.Fprintln(m.Out, "No high scores available.")
		return
	}
	standings, err := m.Scores.Standings(ctx, score.DefaultStandingsLimit)
	if err != nil {
		if m.Logger != nil {
			m.Logger.Printf("[SCORES] Failed to load standings: %v", err)
		}
		fmt.Fprintln(m.Out, "High scores are unavailable right now.")
		return
	}
	fmt.Fprintln(m.Out, "High Scores:")
	m.Renderer.RenderStandings(standings)
}

// endOfInput treats a closed input stream as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
