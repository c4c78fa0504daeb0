package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	apperrors "github.com/zatekoja/stallsurvey/pkg/errors"
	"github.com/zatekoja/stallsurvey/pkg/utils"
)

const defaultSearchLimit = 20

// CreateQuestionInput is an admin request to add a question.
// Options may be sent as a list or as one newline-separated block.
type CreateQuestionInput struct {
	Text         string                 `json:"text"`
	Options      []string               `json:"options"`
	OptionsBlock string                 `json:"options_block"`
	Scope        entities.QuestionScope `json:"scope"`
	TargetStalls []string               `json:"target_stalls"`
}

// QuestionService handles business logic for survey questions
type QuestionService struct {
	repo       repositories.QuestionRepository
	searchRepo repositories.QuestionSearchRepository
	stallRepo  repositories.StallRepository
	eventBus   providers.EventBus
	clock      providers.Clock
}

// NewQuestionService creates a new question service. searchRepo and eventBus
// may be nil.
func NewQuestionService(
	repo repositories.QuestionRepository,
	searchRepo repositories.QuestionSearchRepository,
	stallRepo repositories.StallRepository,
	eventBus providers.EventBus,
	clock providers.Clock,
) *QuestionService {
	return &QuestionService{
		repo:       repo,
		searchRepo: searchRepo,
		stallRepo:  stallRepo,
		eventBus:   eventBus,
		clock:      clock,
	}
}

// Create validates and stores a new active question
func (s *QuestionService) Create(ctx context.Context, input CreateQuestionInput) (*entities.Question, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, apperrors.NewValidationError("question text is required")
	}

	options := utils.CleanOptions(input.Options)
	if len(options) == 0 {
		options = utils.ParseOptionLines(input.OptionsBlock)
	}
	if len(options) == 0 {
		return nil, apperrors.NewValidationError("at least one option is required")
	}

	scope := input.Scope
	if scope == "" {
		scope = entities.QuestionScopeGlobal
	}
	if !scope.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown question scope %q", scope))
	}

	var targets []string
	if scope == entities.QuestionScopeSpecific {
		var err error
		if targets, err = s.resolveTargetStalls(ctx, input.TargetStalls); err != nil {
			return nil, err
		}
	}

	question := &entities.Question{
		ID:           uuid.NewString(),
		Text:         text,
		Options:      options,
		Scope:        scope,
		TargetStalls: targets,
		CreatedAt:    s.clock.Now(),
		Active:       true,
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, question); err != nil {
			log.Warn().Err(err).Str("question_id", question.ID).Msg("Failed to index question")
		}
	}

	event := entities.NewSurveyEvent(entities.SurveyEventTypeQuestionCreated, question.CreatedAt)
	event.QuestionID = question.ID
	publishSurveyEvent(ctx, s.eventBus, event)

	return question, nil
}

// resolveTargetStalls normalizes target stall ids and checks they are registered
func (s *QuestionService) resolveTargetStalls(ctx context.Context, raw []string) ([]string, error) {
	normalized := make([]string, 0, len(raw))
	for _, id := range raw {
		normalized = append(normalized, entities.NormalizeStallID(id))
	}
	targets := utils.UniqueStrings(normalized)
	if len(targets) == 0 {
		return nil, apperrors.NewValidationError("specific questions need at least one target stall")
	}

	stalls, err := s.stallRepo.GetByStallIDs(ctx, targets)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(stalls))
	for _, st := range stalls {
		known[st.StallID] = struct{}{}
	}

	var missing []string
	for _, id := range targets {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown target stalls: %s", strings.Join(missing, ", ")))
	}

	return targets, nil
}

// List returns every question, newest first
func (s *QuestionService) List(ctx context.Context) ([]*entities.Question, error) {
	return s.repo.List(ctx, repositories.QuestionFilter{})
}

// GetByID retrieves a question by ID
func (s *QuestionService) GetByID(ctx context.Context, id string) (*entities.Question, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a question. Responses already recorded for it are kept.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Str("question_id", id).Msg("Failed to remove question from index")
		}
	}

	event := entities.NewSurveyEvent(entities.SurveyEventTypeQuestionDeleted, s.clock.Now())
	event.QuestionID = id
	publishSurveyEvent(ctx, s.eventBus, event)

	return nil
}

// Search finds questions whose text matches query. The search index is used
// when available; otherwise, or when it fails, a case-insensitive substring
// match over all questions is returned.
func (s *QuestionService) Search(ctx context.Context, query string, limit int) ([]*entities.Question, error) {
	query = strings.TrimSpace(query)
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	all, err := s.repo.List(ctx, repositories.QuestionFilter{})
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all[:min(limit, len(all))], nil
	}

	if s.searchRepo != nil {
		ids, err := s.searchRepo.Search(ctx, query, limit)
		if err == nil {
			return pickQuestions(all, ids), nil
		}
		log.Warn().Err(err).Str("query", query).Msg("Question search failed, falling back to substring match")
	}

	needle := strings.ToLower(query)
	matches := make([]*entities.Question, 0)
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Text), needle) {
			matches = append(matches, q)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches, nil
}

// pickQuestions returns the questions named by ids in ids order, skipping
// ids that are no longer stored
func pickQuestions(all []*entities.Question, ids []string) []*entities.Question {
	byID := make(map[string]*entities.Question, len(all))
	for _, q := range all {
		byID[q.ID] = q
	}
	out := make([]*entities.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// publishSurveyEvent publishes on the survey channel. Failures are logged
// and never returned.
func publishSurveyEvent(ctx context.Context, bus providers.EventBus, event *entities.SurveyEvent) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, providers.EventChannelSurvey, event); err != nil {
		log.Warn().Err(err).Str("event_type", string(event.EventType)).Msg("Failed to publish survey event")
	}
}
