package inmemorycache

import (
	"encoding/json"
	"sync"
	"time"
)

type SearchCacheData struct {
	PlaceIDs []int `json:"place_ids"`
}

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

type Cache interface {
	Get(query string) (*SearchCacheData, bool, error)
	Set(query string, data *SearchCacheData, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

func (m *InMemoryCache) Get(query string) (*SearchCacheData, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[query]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, query)
		return nil, false, nil
	}

	var data SearchCacheData
	if err := json.Unmarshal(entry.data, &data); err != nil {
		return nil, false, err
	}

	return &data, true, nil
}

func (m *InMemoryCache) Set(query string, data *SearchCacheData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[query] = cacheEntry{
		data:       jsonData,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

func (m *InMemoryCache) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}

// Close stops the cleanup goroutine. Cached entries stay readable.
func (m *InMemoryCache) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

func (m *InMemoryCache) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
