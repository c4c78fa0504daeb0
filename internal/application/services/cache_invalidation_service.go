package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
)

// CacheInvalidationService drops cached dashboards when survey data changes
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start begins listening for survey events
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelSurvey)
	if err != nil {
		close(s.done)
		return fmt.Errorf("failed to subscribe to survey events: %w", err)
	}

	go s.processEvents(eventChan)
	log.Info().Str("channel", providers.EventChannelSurvey).Msg("Cache invalidation service started")
	return nil
}

// Stop stops the service and waits for the event loop to exit
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	<-s.done
	log.Info().Msg("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.SurveyEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.SurveyEvent) {
	switch event.EventType {
	case entities.SurveyEventTypeResponseSubmitted,
		entities.SurveyEventTypeQuestionCreated,
		entities.SurveyEventTypeQuestionDeleted,
		entities.SurveyEventTypeStallRegistered:
	default:
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.InvalidateDashboards(ctx); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Str("event_type", string(event.EventType)).
			Msg("Failed to invalidate dashboard cache")
		return
	}
	log.Debug().Str("event_id", event.ID).Str("event_type", string(event.EventType)).Msg("Invalidated dashboard cache")
}

// InvalidateDashboards removes every cached dashboard
func (s *CacheInvalidationService) InvalidateDashboards(ctx context.Context) error {
	pattern := DashboardCachePrefix + "*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		return fmt.Errorf("failed to invalidate pattern %s: %w", pattern, err)
	}
	return nil
}
