package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

func openTestDB(t *testing.T, driver string) *ScoreRepo {
	t.Helper()
	url := os.Getenv("CONNECT4_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("CONNECT4_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, driver, url, 2, 2, 1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	// migrations must be repeatable
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("second RunMigrations: %v", err)
	}
	return NewScoreRepo(db)
}

func TestScoreRepoRecordWin(t *testing.T) {
	for _, driver := range []string{"pgx", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			repo := openTestDB(t, driver)
			ctx := context.Background()

			name := fmt.Sprintf("player_%s_%d", driver, time.Now().UnixNano())
			t.Cleanup(func() {
				repo.DB.ExecContext(ctx, `DELETE FROM high_scores WHERE player_name = $1`, name)
			})

			for i := 0; i < 3; i++ {
				if err := repo.RecordWin(ctx, name); err != nil {
					t.Fatalf("RecordWin: %v", err)
				}
			}

			standings, err := repo.Standings(ctx, 1000)
			if err != nil {
				t.Fatalf("Standings: %v", err)
			}
			found := false
			for _, s := range standings {
				if s.PlayerName == name {
					found = true
					if s.Wins != 3 {
						t.Fatalf("wins = %d, want 3", s.Wins)
					}
				}
			}
			if !found {
				t.Fatalf("%s missing from standings", name)
			}
		})
	}
}

func TestScoreRepoRejectsInvalidName(t *testing.T) {
	repo := NewScoreRepo(nil)
	if err := repo.RecordWin(context.Background(), "bad name"); !errors.Is(err, domain.ErrInvalidPlayerName) {
		t.Fatalf("expected ErrInvalidPlayerName, got %v", err)
	}
}
