package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := words.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("loaded word lists")

	var history *HistoryStore
	if dsn := os.Getenv("HISTORY_DB"); dsn != "" {
		db, err := openHistory(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open history database")
		}
		defer db.Close()
		history = NewHistoryStore(db)
	}

	if len(os.Args) > 1 && os.Args[1] == "history" {
		if history == nil {
			log.Fatal().Msg("history requires HISTORY_DB to be set")
		}
		if err := printHistory(context.Background(), history); err != nil {
			log.Fatal().Err(err).Msg("failed to read history")
		}
		return
	}

	assist, err := newAssistant(history)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start assistant")
	}
	if err := assist.run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("assistant exited")
	}
}

// printHistory dumps recent results and aggregate stats to stdout.
func printHistory(ctx context.Context, h *HistoryStore) error {
	total, solved, avgRounds, err := h.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("sessions: %d  solved: %d  avg rounds (solved): %.2f\n", total, solved, avgRounds)

	recent, err := h.Recent(ctx, 10)
	if err != nil {
		return err
	}
	for _, r := range recent {
		status := "exhausted"
		if r.Solved {
			status = r.Answer
		}
		fmt.Printf("%s  rounds=%d  %-9s  %dms\n", r.PlayedAt, r.Rounds, status, r.ElapsedMs)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
