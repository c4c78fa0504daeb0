package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/adapters/database"
	"github.com/zatekoja/stallsurvey/internal/adapters/search"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
	"github.com/zatekoja/stallsurvey/pkg/config"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "drop the questions collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("stall-survey-indexer", cfg.Env, cfg.LogLevel)

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("Invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, cfg, reset); err != nil {
			log.Error().Err(err).Msg("Reindex failed")
		}

		if interval <= 0 {
			return
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("Reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("Reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, cfg *config.Config, reset bool) error {
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		log.Info().Str("collection", typesense.QuestionsCollection).Msg("Dropping collection")
		if err := tsClient.DropQuestions(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to drop collection")
		}
	}

	if err := tsClient.InitSchema(ctx); err != nil {
		return err
	}

	questions, err := database.NewQuestionAdapter(pgClient).List(ctx, repositories.QuestionFilter{})
	if err != nil {
		return err
	}

	index := search.NewTypesenseQuestionAdapter(tsClient)
	indexed, failed := 0, 0
	for _, question := range questions {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := index.Index(ctx, question); err != nil {
			failed++
			log.Warn().Err(err).Str("question_id", question.ID).Msg("Failed to index question")
			continue
		}
		indexed++
	}

	log.Info().Int("indexed", indexed).Int("failed", failed).Msg("Questions indexed")
	if failed > 0 {
		return fmt.Errorf("%d of %d questions failed to index", failed, len(questions))
	}
	return nil
}
