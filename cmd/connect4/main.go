package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/console/internal/bootstrap"
	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/event"
	"github.com/iamasit07/4-in-a-row/console/internal/repository/file"
	"github.com/iamasit07/4-in-a-row/console/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/service/score"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Printf("[MAIN] %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	board, err := domain.NewGrid(cfg.BoardRows, cfg.BoardColumns)
	if err != nil {
		return err
	}

	scores := bootstrap.OpenScores(ctx, cfg)
	defer scores.Close()

	deps := game.Dependencies{
		Saver:  file.NewBoardStore(cfg.SavePath, "", nil),
		Scores: scores.Store,
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := event.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, nil)
		if err != nil {
			log.Printf("[KAFKA] Analytics disabled: %v", err)
		} else {
			defer producer.Close()
			deps.Publisher = producer
		}
	}

	_, noColor := os.LookupEnv("NO_COLOR")
	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	renderer := console.NewRenderer(os.Stdout, !noColor)
	deps.Observer = renderer

	playerName, err := resolvePlayerName(ctx, cfg.PlayerName, prompter)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.RandomSeed))
	}

	session := &game.Session{
		Board:  board,
		Loader: file.NewBoardStore("", cfg.LoadPath, nil),
		First: game.Side{
			Name:       playerName,
			Marker:     domain.Player1,
			Source:     prompter,
			RecordWins: true,
		},
		Second: game.Side{
			Name:   cfg.ComputerName,
			Marker: domain.Player2,
			Source: bot.NewRandomOpponent(rng),
		},
		Deps: deps,
	}

	menu := &console.Menu{
		Prompter: prompter,
		Renderer: renderer,
		Out:      os.Stdout,
		Logger:   log.Default(),
		PlayGame: func(ctx context.Context) error {
			_, err := session.PlayOnce(ctx)
			return err
		},
	}
	if scores.Persistent {
		menu.Scores = scores.Store
	}

	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// resolvePlayerName uses PLAYER_NAME when it is valid, otherwise asks.
func resolvePlayerName(ctx context.Context, configured string, prompter *console.Prompter) (string, error) {
	if configured != "" {
		if err := score.ValidateName(configured); err == nil {
			return configured, nil
		}
		log.Printf("[MAIN] Ignoring invalid PLAYER_NAME %q", configured)
	}
	return prompter.ReadName(ctx)
}
