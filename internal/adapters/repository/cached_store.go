package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

var _ domain.RecordStore = (*CachedStore)(nil)

const DefaultCacheTTL = 30 * time.Minute

// CachedStore is a read-through Redis cache in front of another RecordStore.
// Only point reads are cached; every write to a key evicts it. Redis failures
// degrade to the underlying store and are never returned to the caller.
type CachedStore struct {
	next  domain.RecordStore
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedStore(next domain.RecordStore, cache *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

type cachedRecord struct {
	Version int             `json:"v"`
	Data    domain.Document `json:"d"`
}

func (s *CachedStore) cacheKey(collection, key string) string {
	return fmt.Sprintf("doc:%s:%s", collection, key)
}

func (s *CachedStore) invalidate(ctx context.Context, collection, key string) {
	if err := s.cache.Del(ctx, s.cacheKey(collection, key)).Err(); err != nil {
		log.WithFields(log.Fields{
			"collection": collection,
			"key":        key,
		}).Warnf("[CACHE] failed to invalidate: %v", err)
	}
}

func (s *CachedStore) Get(ctx context.Context, collection, key string) (*domain.Record, error) {
	ck := s.cacheKey(collection, key)

	val, err := s.cache.Get(ctx, ck).Result()
	if err == nil {
		var cached cachedRecord
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return &domain.Record{Key: key, Version: cached.Version, Data: cached.Data}, nil
		}

		log.Warnf("[CACHE] corrupted entry %s, cleaning up key", ck)
		s.cache.Del(ctx, ck)
	} else if !errors.Is(err, redis.Nil) {
		log.Warnf("[CACHE] redis read error: %v", err)
	}

	rec, err := s.next.Get(ctx, collection, key)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cachedRecord{Version: rec.Version, Data: rec.Data}); err == nil {
		if setErr := s.cache.Set(ctx, ck, data, s.ttl).Err(); setErr != nil {
			log.Warnf("[CACHE] redis set error: %v", setErr)
		}
	}

	return rec, nil
}

func (s *CachedStore) Put(ctx context.Context, collection, key string, doc domain.Document) error {
	if err := s.next.Put(ctx, collection, key, doc); err != nil {
		return err
	}
	s.invalidate(ctx, collection, key)
	return nil
}

func (s *CachedStore) PutIfVersion(ctx context.Context, collection, key string, doc domain.Document, version int) error {
	err := s.next.PutIfVersion(ctx, collection, key, doc, version)
	if err == nil || errors.Is(err, domain.ErrConflict) {
		s.invalidate(ctx, collection, key)
	}
	return err
}

func (s *CachedStore) Merge(ctx context.Context, collection, key string, partial domain.Document) error {
	if err := s.next.Merge(ctx, collection, key, partial); err != nil {
		return err
	}
	s.invalidate(ctx, collection, key)
	return nil
}

func (s *CachedStore) Append(ctx context.Context, collection string, doc domain.Document) (string, error) {
	return s.next.Append(ctx, collection, doc)
}

func (s *CachedStore) Delete(ctx context.Context, collection, key string) error {
	defer s.invalidate(ctx, collection, key)
	return s.next.Delete(ctx, collection, key)
}

func (s *CachedStore) QueryOrdered(ctx context.Context, collection, orderField string, dir domain.SortDirection) ([]*domain.Record, error) {
	return s.next.QueryOrdered(ctx, collection, orderField, dir)
}
