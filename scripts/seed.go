package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/adapters/database"
	"github.com/zatekoja/stallsurvey/internal/adapters/search"
	"github.com/zatekoja/stallsurvey/internal/application/services"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
	"github.com/zatekoja/stallsurvey/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("stall-survey-seed", cfg.Env, cfg.LogLevel)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if err := database.CreateSchema(ctx, pgClient); err != nil {
		log.Fatal().Err(err).Msg("Failed to create schema")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				user_responses,
				questions,
				stalls,
				users
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to reset tables")
		}
	}

	var searchRepo repositories.QuestionSearchRepository
	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(&cfg.Typesense)
		if err == nil && tsClient.InitSchema(ctx) == nil {
			searchRepo = search.NewTypesenseQuestionAdapter(tsClient)
		} else {
			log.Warn().Err(err).Msg("Seeding without search index")
		}
	}

	clock := providers.NewSystemClock(cfg.Survey.Location)
	stallRepo := database.NewStallAdapter(pgClient)
	userService := services.NewUserService(database.NewUserAdapter(pgClient), clock)
	stallService := services.NewStallService(stallRepo, nil, clock)
	questionService := services.NewQuestionService(database.NewQuestionAdapter(pgClient), searchRepo, stallRepo, nil, clock)
	surveyService := services.NewSurveyService(
		database.NewQuestionAdapter(pgClient), database.NewResponseAdapter(pgClient), stallRepo, nil, clock,
	)

	// 1. Users: one admin, two stall owners, a handful of visitors
	owners := []services.UserProfile{
		{ID: uuid.New().String(), Email: "ada@example.com", Name: "Ada Stallholder", Role: entities.UserRoleShop},
		{ID: uuid.New().String(), Email: "bayo@example.com", Name: "Bayo Stallholder", Role: entities.UserRoleShop},
	}
	visitors := make([]services.UserProfile, 0, 5)
	for i := 1; i <= 5; i++ {
		visitors = append(visitors, services.UserProfile{
			ID:    uuid.New().String(),
			Email: fmt.Sprintf("visitor%d@example.com", i),
			Name:  fmt.Sprintf("Visitor %d", i),
			Role:  entities.UserRoleUser,
		})
	}
	profiles := append([]services.UserProfile{
		{ID: uuid.New().String(), Email: "admin@example.com", Name: "Event Admin", Role: entities.UserRoleAdmin},
	}, owners...)
	profiles = append(profiles, visitors...)

	for _, p := range profiles {
		if _, err := userService.Register(ctx, p); err != nil {
			log.Error().Err(err).Str("email", p.Email).Msg("Failed to create user")
		}
	}

	// 2. Stalls
	stalls := []struct {
		owner string
		input services.RegisterStallInput
	}{
		{owners[0].ID, services.RegisterStallInput{StallID: "A12", Name: "Ada's Coffee", Location: "Hall A"}},
		{owners[0].ID, services.RegisterStallInput{StallID: "A13", Name: "Ada's Pastries", Location: "Hall A"}},
		{owners[1].ID, services.RegisterStallInput{StallID: "B07", Name: "Bayo Robotics", Location: "Hall B"}},
	}
	for _, s := range stalls {
		if _, err := stallService.Register(ctx, s.owner, s.input); err != nil {
			log.Error().Err(err).Str("stall_id", s.input.StallID).Msg("Failed to register stall")
		}
	}

	// 3. Questions
	inputs := []services.CreateQuestionInput{
		{Text: "How did you hear about the event?", Options: []string{"Social media", "A friend", "Newsletter", "Walked past"}, Scope: entities.QuestionScopeGlobal},
		{Text: "How would you rate the venue?", Options: []string{"Great", "Fine", "Poor"}, Scope: entities.QuestionScopeGlobal},
		{Text: "Which drink did you try?", Options: []string{"Espresso", "Latte", "Cold brew"}, Scope: entities.QuestionScopeSpecific, TargetStalls: []string{"a12"}},
		{Text: "Would you buy a kit?", Options: []string{"Yes", "No", "Maybe"}, Scope: entities.QuestionScopeSpecific, TargetStalls: []string{"B07"}},
	}
	questions := make([]*entities.Question, 0, len(inputs))
	for _, in := range inputs {
		q, err := questionService.Create(ctx, in)
		if err != nil {
			log.Error().Err(err).Str("text", in.Text).Msg("Failed to create question")
			continue
		}
		questions = append(questions, q)
	}

	// 4. Responses: each visitor answers whatever is eligible at a stall
	stallContexts := []string{"A12", "B07", ""}
	submitted := 0
	for i, v := range visitors {
		stallID := stallContexts[i%len(stallContexts)]
		eligible, err := surveyService.EligibleQuestions(ctx, v.ID, stallID)
		if err != nil {
			log.Error().Err(err).Str("user_id", v.ID).Msg("Failed to load eligible questions")
			continue
		}
		for j, e := range eligible {
			answer := e.Question.Options[(i+j)%len(e.Question.Options)]
			_, err := surveyService.Submit(ctx, services.SubmitResponseInput{
				UserID:     v.ID,
				QuestionID: e.Question.ID,
				StallID:    stallID,
				Answer:     answer,
			})
			if err != nil {
				log.Error().Err(err).Str("question_id", e.Question.ID).Msg("Failed to submit response")
				continue
			}
			submitted++
		}
	}

	log.Info().
		Int("users", len(profiles)).
		Int("stalls", len(stalls)).
		Int("questions", len(questions)).
		Int("responses", submitted).
		Msg("Seeding completed")
}
