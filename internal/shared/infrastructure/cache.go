package infrastructure

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// cleanupInterval cadence du balayage des entrées expirées
const cleanupInterval = time.Minute

// Cache abstraction du cache applicatif. Le tableau de bord y range
// ses instantanés agrégés; l'invalidation passe par Delete ou Clear.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Clear()
	Has(key string) bool
}

type cacheEntry struct {
	value      interface{}
	expiration time.Time
}

func (e cacheEntry) expired() bool {
	return time.Now().After(e.expiration)
}

// InMemoryCache cache en mémoire avec TTL par entrée. Un balayage
// périodique retire les entrées expirées pour que le cache ne grossisse
// pas quand les clés custom varient.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewInMemoryCache crée un nouveau cache en mémoire
func NewInMemoryCache() *InMemoryCache {
	cache := &InMemoryCache{
		entries: make(map[string]cacheEntry),
	}
	go cache.janitor()
	return cache
}

// Get récupère une valeur; une entrée expirée est traitée comme absente
func (c *InMemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || entry.expired() {
		return nil, false
	}
	return entry.value, true
}

// Set ajoute ou remplace une valeur avec sa durée de vie
func (c *InMemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:      value,
		expiration: time.Now().Add(ttl),
	}
}

// Delete supprime une entrée du cache
func (c *InMemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear vide complètement le cache
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}

// Has vérifie si une clé existe et n'est pas expirée
func (c *InMemoryCache) Has(key string) bool {
	_, exists := c.Get(key)
	return exists
}

func (c *InMemoryCache) janitor() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		for key, entry := range c.entries {
			if entry.expired() {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}

// ShardedCache répartit les clés sur plusieurs caches indépendants
// pour réduire la contention quand plusieurs requêtes de tableau de
// bord arrivent en parallèle.
type ShardedCache struct {
	shards    []*InMemoryCache
	shardMask uint32
}

// NewShardedCache crée un cache shardé. shardCount doit être une
// puissance de deux, le routage se faisant par masque binaire.
func NewShardedCache(shardCount int) *ShardedCache {
	if shardCount <= 0 || (shardCount&(shardCount-1)) != 0 {
		panic("shardCount must be a power of 2")
	}

	shards := make([]*InMemoryCache, shardCount)
	for i := range shards {
		shards[i] = NewInMemoryCache()
	}

	return &ShardedCache{
		shards:    shards,
		shardMask: uint32(shardCount - 1),
	}
}

func (sc *ShardedCache) shard(key string) *InMemoryCache {
	return sc.shards[fnv32(key)&sc.shardMask]
}

// Get récupère une valeur du cache
func (sc *ShardedCache) Get(key string) (interface{}, bool) {
	return sc.shard(key).Get(key)
}

// Set ajoute ou remplace une valeur dans le cache
func (sc *ShardedCache) Set(key string, value interface{}, ttl time.Duration) {
	sc.shard(key).Set(key, value, ttl)
}

// Delete supprime une entrée du cache
func (sc *ShardedCache) Delete(key string) {
	sc.shard(key).Delete(key)
}

// Clear vide tous les shards
func (sc *ShardedCache) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Has vérifie si une clé existe
func (sc *ShardedCache) Has(key string) bool {
	return sc.shard(key).Has(key)
}

// fnv32 hash FNV-1a 32 bits pour le routage des shards
func fnv32(key string) uint32 {
	const prime32 = uint32(16777619)
	hash := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return hash
}

// CacheKeyBuilder assemble des clés de cache cohérentes, segments
// séparés par ":" (ex: dashboard:custom:2024-03-01:2024-03-15)
type CacheKeyBuilder struct {
	parts []string
}

// NewCacheKeyBuilder crée un nouveau builder de clé
func NewCacheKeyBuilder() *CacheKeyBuilder {
	return &CacheKeyBuilder{
		parts: make([]string, 0, 4),
	}
}

// Add ajoute un segment à la clé
func (b *CacheKeyBuilder) Add(part string) *CacheKeyBuilder {
	b.parts = append(b.parts, part)
	return b
}

// AddInt ajoute un entier à la clé
func (b *CacheKeyBuilder) AddInt(value int) *CacheKeyBuilder {
	b.parts = append(b.parts, strconv.Itoa(value))
	return b
}

// Build construit la clé finale
func (b *CacheKeyBuilder) Build() string {
	return strings.Join(b.parts, ":")
}
