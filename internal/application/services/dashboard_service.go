package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
	"github.com/zatekoja/stallsurvey/internal/domain/repositories"
	"github.com/zatekoja/stallsurvey/internal/infrastructure/observability"
)

const (
	// DashboardCachePrefix prefixes every cached dashboard key
	DashboardCachePrefix = "dashboard:"

	adminDashboardKey = DashboardCachePrefix + "admin"

	dashboardCacheFamily = "dashboard"
)

// OwnerDashboardKey returns the cache key of an owner's dashboard
func OwnerDashboardKey(ownerID string) string {
	return DashboardCachePrefix + "owner:" + ownerID
}

// DashboardService loads snapshots from the store and aggregates them
type DashboardService struct {
	questionRepo repositories.QuestionRepository
	stallRepo    repositories.StallRepository
	responseRepo repositories.ResponseRepository
	userRepo     repositories.UserRepository
	cache        providers.CacheProvider
	clock        providers.Clock
	cacheTTL     int
	metrics      *observability.Metrics
}

// NewDashboardService creates a new dashboard service. cache and metrics may
// be nil.
func NewDashboardService(
	questionRepo repositories.QuestionRepository,
	stallRepo repositories.StallRepository,
	responseRepo repositories.ResponseRepository,
	userRepo repositories.UserRepository,
	cache providers.CacheProvider,
	clock providers.Clock,
	cacheTTLSeconds int,
	metrics *observability.Metrics,
) *DashboardService {
	return &DashboardService{
		questionRepo: questionRepo,
		stallRepo:    stallRepo,
		responseRepo: responseRepo,
		userRepo:     userRepo,
		cache:        cache,
		clock:        clock,
		cacheTTL:     cacheTTLSeconds,
		metrics:      metrics,
	}
}

// AdminStatistics aggregates every response on the platform
func (s *DashboardService) AdminStatistics(ctx context.Context) (*entities.Statistics, error) {
	return s.cached(ctx, "admin", adminDashboardKey, func(ctx context.Context) (*entities.Statistics, error) {
		var snapshot entities.Snapshot

		err := fetchConcurrently(ctx,
			func(ctx context.Context) (err error) {
				snapshot.Questions, err = s.questionRepo.List(ctx, repositories.QuestionFilter{})
				return err
			},
			func(ctx context.Context) (err error) {
				snapshot.Stalls, err = s.stallRepo.List(ctx)
				return err
			},
			func(ctx context.Context) (err error) {
				snapshot.Users, err = s.userRepo.List(ctx)
				return err
			},
			func(ctx context.Context) (err error) {
				snapshot.Responses, err = s.responseRepo.List(ctx)
				return err
			},
		)
		if err != nil {
			return nil, err
		}

		return AggregateResponses(snapshot, nil, s.clock.Now()), nil
	})
}

// OwnerStatistics aggregates the responses given at the stalls ownerID owns
func (s *DashboardService) OwnerStatistics(ctx context.Context, ownerID string) (*entities.Statistics, error) {
	return s.cached(ctx, "owner", OwnerDashboardKey(ownerID), func(ctx context.Context) (*entities.Statistics, error) {
		stalls, err := s.stallRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}

		stallIDs := make([]string, 0, len(stalls))
		for _, st := range stalls {
			stallIDs = append(stallIDs, entities.NormalizeStallID(st.StallID))
		}

		snapshot := entities.Snapshot{Stalls: stalls}
		fetches := []func(context.Context) error{
			func(ctx context.Context) (err error) {
				snapshot.Questions, err = s.questionRepo.List(ctx, repositories.QuestionFilter{})
				return err
			},
		}
		if len(stallIDs) > 0 {
			fetches = append(fetches, func(ctx context.Context) (err error) {
				snapshot.Responses, err = s.responseRepo.ListByStallIDs(ctx, stallIDs)
				return err
			})
		}

		if err := fetchConcurrently(ctx, fetches...); err != nil {
			return nil, err
		}

		return AggregateResponses(snapshot, entities.NewStallFilter(stallIDs), s.clock.Now()), nil
	})
}

func (s *DashboardService) cached(
	ctx context.Context,
	view string,
	key string,
	compute func(context.Context) (*entities.Statistics, error),
) (*entities.Statistics, error) {
	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var stats entities.Statistics
			if err := json.Unmarshal(data, &stats); err == nil {
				observability.RecordCacheLookup(ctx, s.metrics, dashboardCacheFamily, true)
				return &stats, nil
			}
			log.Warn().Str("key", key).Msg("Discarding unreadable cached dashboard")
		case !errors.Is(err, providers.ErrCacheMiss):
			log.Warn().Err(err).Str("key", key).Msg("Dashboard cache read failed")
		}
		observability.RecordCacheLookup(ctx, s.metrics, dashboardCacheFamily, false)
	}

	start := time.Now()
	stats, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	observability.RecordDashboardComputation(ctx, s.metrics, view, time.Since(start))

	if s.cache != nil && s.cacheTTL > 0 {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Failed to cache dashboard")
			}
		}
	}

	return stats, nil
}

// fetchConcurrently runs every fetch in its own goroutine and returns the
// first error. The remaining fetches are cancelled once one fails.
func fetchConcurrently(ctx context.Context, fetches ...func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func(context.Context) error) {
			defer wg.Done()
			if err := fetch(ctx); err != nil {
				once.Do(func() {
					firstErr = fmt.Errorf("dashboard fetch %d: %w", i, err)
					cancel()
				})
			}
		}(i, fetch)
	}

	wg.Wait()
	return firstErr
}

// DashboardSession holds the dashboard state of one signed-in session.
// Load computes the statistics once; later calls return the same result
// until Reset. A failed load is not remembered.
type DashboardSession struct {
	mu     sync.Mutex
	load   func(context.Context) (*entities.Statistics, error)
	stats  *entities.Statistics
	loaded bool
}

// NewDashboardSession creates a session around load
func NewDashboardSession(load func(context.Context) (*entities.Statistics, error)) *DashboardSession {
	return &DashboardSession{load: load}
}

// Load returns the session's statistics, computing them on first use
func (d *DashboardSession) Load(ctx context.Context) (*entities.Statistics, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded {
		return d.stats, nil
	}

	stats, err := d.load(ctx)
	if err != nil {
		return nil, err
	}
	d.stats = stats
	d.loaded = true
	return stats, nil
}

// Loaded reports whether the session already holds statistics
func (d *DashboardSession) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// Reset drops the loaded statistics so the next Load recomputes them
func (d *DashboardSession) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stats = nil
	d.loaded = false
}

// DashboardSessions tracks the open dashboard sessions by key. A session not
// opened for longer than the idle timeout is dropped on the next Open.
type DashboardSessions struct {
	mu       sync.Mutex
	sessions map[string]*trackedSession
	idle     time.Duration
	clock    providers.Clock
}

type trackedSession struct {
	session  *DashboardSession
	lastUsed time.Time
}

// NewDashboardSessions creates an empty session registry. An idle timeout of
// zero keeps sessions until End.
func NewDashboardSessions(idle time.Duration, clock providers.Clock) *DashboardSessions {
	return &DashboardSessions{
		sessions: make(map[string]*trackedSession),
		idle:     idle,
		clock:    clock,
	}
}

// Open returns the session for key, creating it around load when none exists
// or the previous one went idle
func (r *DashboardSessions) Open(key string, load func(context.Context) (*entities.Statistics, error)) *DashboardSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.expire(now)

	if tracked, ok := r.sessions[key]; ok {
		tracked.lastUsed = now
		return tracked.session
	}
	session := NewDashboardSession(load)
	r.sessions[key] = &trackedSession{session: session, lastUsed: now}
	return session
}

// End closes the session for key
func (r *DashboardSessions) End(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tracked, ok := r.sessions[key]; ok {
		tracked.session.Reset()
		delete(r.sessions, key)
	}
}

// Len returns the number of open sessions
func (r *DashboardSessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *DashboardSessions) expire(now time.Time) {
	if r.idle <= 0 {
		return
	}
	for key, tracked := range r.sessions {
		if now.Sub(tracked.lastUsed) >= r.idle {
			tracked.session.Reset()
			delete(r.sessions, key)
		}
	}
}
