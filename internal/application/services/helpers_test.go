package services_test

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/zatekoja/stallsurvey/internal/domain/entities"
	"github.com/zatekoja/stallsurvey/internal/domain/providers"
)

var testNow = time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)

func fixedClock() providers.FixedClock {
	return providers.FixedClock{At: testNow}
}

// memoryCache is an in-memory CacheProvider
type memoryCache struct {
	mu      sync.RWMutex
	data    map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if val, ok := m.data[key]; ok {
		return val, nil
	}
	return nil, providers.ErrCacheMiss
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.data {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.data, key)
			m.deleted = append(m.deleted, key)
		}
	}
	return nil
}

func (m *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *memoryCache) has(key string) bool {
	ok, _ := m.Exists(context.Background(), key)
	return ok
}

// memoryEventBus is an in-process EventBus
type memoryEventBus struct {
	mu          sync.Mutex
	subscribers map[string][]chan *entities.SurveyEvent
	published   []*entities.SurveyEvent
}

func newMemoryEventBus() *memoryEventBus {
	return &memoryEventBus{subscribers: make(map[string][]chan *entities.SurveyEvent)}
}

func (m *memoryEventBus) Publish(ctx context.Context, channel string, event *entities.SurveyEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
	for _, ch := range m.subscribers[channel] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

func (m *memoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.SurveyEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan *entities.SurveyEvent, 10)
	m.subscribers[channel] = append(m.subscribers[channel], ch)
	return ch, nil
}

func (m *memoryEventBus) Unsubscribe(ctx context.Context, channel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subscribers[channel] {
		close(ch)
	}
	delete(m.subscribers, channel)
	return nil
}

func (m *memoryEventBus) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for channel, channels := range m.subscribers {
		for _, ch := range channels {
			close(ch)
		}
		delete(m.subscribers, channel)
	}
	return nil
}

func (m *memoryEventBus) subscriberCount(channel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers[channel])
}

func (m *memoryEventBus) publishedTypes() []entities.SurveyEventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]entities.SurveyEventType, 0, len(m.published))
	for _, e := range m.published {
		types = append(types, e.EventType)
	}
	return types
}
