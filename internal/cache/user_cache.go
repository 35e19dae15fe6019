// Package cache keeps each user's sessions and InBody records in memory so
// the dashboard does not reload them from MongoDB on every request.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"alcyxob/workout-log/internal/domain"

	"github.com/coocood/freecache"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const megabyte = 1024 * 1024

// Collection names, also used as metric labels.
const (
	CollectionSessions = "sessions"
	CollectionInBody   = "inbody"
)

// UserCache stores JSON-encoded per-user collections in a freecache.Cache.
// It is safe for concurrent use.
//
// Each collection of each user carries a generation that every invalidation
// bumps. Readers capture it before loading from the repository and store the
// result with SetSessionsIfCurrent or SetRecordsIfCurrent, which drop the
// value when a write invalidated the entry in the meantime.
type UserCache struct {
	cache         *freecache.Cache
	expireSeconds int
	logger        *zap.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

// NewUserCache allocates a cache of sizeMB megabytes. A ttl of zero keeps
// entries until they are evicted or invalidated.
func NewUserCache(sizeMB int, ttl time.Duration, logger *zap.Logger) *UserCache {
	if sizeMB <= 0 {
		sizeMB = 64
	}
	return &UserCache{
		cache:         freecache.NewCache(sizeMB * megabyte),
		expireSeconds: int(ttl / time.Second),
		logger:        logger,
		generations:   make(map[string]uint64),
	}
}

func cacheKey(collection string, userID primitive.ObjectID) []byte {
	return []byte(fmt.Sprintf("%s::%s", collection, userID.Hex()))
}

// Sessions returns the cached sessions of the user, if present.
func (c *UserCache) Sessions(userID primitive.ObjectID) ([]domain.WorkoutSession, bool) {
	var sessions []domain.WorkoutSession
	if !c.get(CollectionSessions, userID, &sessions) {
		return nil, false
	}
	return sessions, true
}

// SetSessions caches the sessions of the user.
func (c *UserCache) SetSessions(userID primitive.ObjectID, sessions []domain.WorkoutSession) {
	c.set(CollectionSessions, userID, sessions)
}

// SessionsGeneration returns the current generation of the user's sessions.
func (c *UserCache) SessionsGeneration(userID primitive.ObjectID) uint64 {
	return c.generation(CollectionSessions, userID)
}

// SetSessionsIfCurrent caches the sessions only if they have not been
// invalidated since gen was read. It reports whether the value was stored.
func (c *UserCache) SetSessionsIfCurrent(userID primitive.ObjectID, gen uint64, sessions []domain.WorkoutSession) bool {
	return c.setIfCurrent(CollectionSessions, userID, gen, sessions)
}

// Records returns the cached InBody records of the user, if present.
func (c *UserCache) Records(userID primitive.ObjectID) ([]domain.InBodyRecord, bool) {
	var records []domain.InBodyRecord
	if !c.get(CollectionInBody, userID, &records) {
		return nil, false
	}
	return records, true
}

// SetRecords caches the InBody records of the user.
func (c *UserCache) SetRecords(userID primitive.ObjectID, records []domain.InBodyRecord) {
	c.set(CollectionInBody, userID, records)
}

// RecordsGeneration returns the current generation of the user's InBody records.
func (c *UserCache) RecordsGeneration(userID primitive.ObjectID) uint64 {
	return c.generation(CollectionInBody, userID)
}

// SetRecordsIfCurrent caches the records only if they have not been
// invalidated since gen was read. It reports whether the value was stored.
func (c *UserCache) SetRecordsIfCurrent(userID primitive.ObjectID, gen uint64, records []domain.InBodyRecord) bool {
	return c.setIfCurrent(CollectionInBody, userID, gen, records)
}

// InvalidateSessions drops the cached sessions of the user.
func (c *UserCache) InvalidateSessions(userID primitive.ObjectID) {
	c.invalidate(CollectionSessions, userID)
}

// InvalidateRecords drops the cached InBody records of the user.
func (c *UserCache) InvalidateRecords(userID primitive.ObjectID) {
	c.invalidate(CollectionInBody, userID)
}

// Invalidate drops everything cached for the user.
func (c *UserCache) Invalidate(userID primitive.ObjectID) {
	c.InvalidateSessions(userID)
	c.InvalidateRecords(userID)
}

func (c *UserCache) get(collection string, userID primitive.ObjectID, dst any) bool {
	raw, err := c.cache.Get(cacheKey(collection, userID))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Error("failed to unmarshal cached collection",
			zap.String("collection", collection), zap.String("uid", userID.Hex()), zap.Error(err))
		return false
	}
	return true
}

func (c *UserCache) generation(collection string, userID primitive.ObjectID) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[string(cacheKey(collection, userID))]
}

func (c *UserCache) invalidate(collection string, userID primitive.ObjectID) {
	key := cacheKey(collection, userID)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[string(key)]++
	c.cache.Del(key)
}

func (c *UserCache) set(collection string, userID primitive.ObjectID, value any) {
	raw, ok := c.marshal(collection, userID, value)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.write(collection, userID, raw)
}

func (c *UserCache) setIfCurrent(collection string, userID primitive.ObjectID, gen uint64, value any) bool {
	raw, ok := c.marshal(collection, userID, value)
	if !ok {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[string(cacheKey(collection, userID))] != gen {
		c.logger.Debug("dropping stale collection load",
			zap.String("collection", collection), zap.String("uid", userID.Hex()))
		return false
	}
	return c.write(collection, userID, raw)
}

func (c *UserCache) marshal(collection string, userID primitive.ObjectID, value any) ([]byte, bool) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("failed to marshal collection for cache",
			zap.String("collection", collection), zap.String("uid", userID.Hex()), zap.Error(err))
		return nil, false
	}
	return raw, true
}

// write must be called with c.mu held.
func (c *UserCache) write(collection string, userID primitive.ObjectID, raw []byte) bool {
	if err := c.cache.Set(cacheKey(collection, userID), raw, c.expireSeconds); err != nil {
		// freecache rejects entries larger than 1/1024 of its size.
		c.logger.Warn("failed to write collection cache",
			zap.String("collection", collection), zap.String("uid", userID.Hex()), zap.Error(err))
		return false
	}
	return true
}
