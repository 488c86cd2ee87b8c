package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

var _ domain.RecordStore = (*MemoryStore)(nil)

type memoryRecord struct {
	seq     int64
	version int
	doc     domain.Document
}

// MemoryStore keeps every collection in process memory. Documents are copied on
// the way in and out so callers never share maps with the store.
type MemoryStore struct {
	collections map[string]map[string]*memoryRecord
	seq         int64

	mu sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]*memoryRecord),
	}
}

func (s *MemoryStore) collection(name string) map[string]*memoryRecord {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string]*memoryRecord)
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) Get(ctx context.Context, collection, key string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Record{Key: key, Version: rec.version, Data: rec.doc.Clone()}, nil
}

func (s *MemoryStore) Put(ctx context.Context, collection, key string, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	if existing, ok := c[key]; ok {
		existing.doc = doc.Clone()
		existing.version++
		return nil
	}

	s.seq++
	c[key] = &memoryRecord{seq: s.seq, version: 1, doc: doc.Clone()}
	return nil
}

func (s *MemoryStore) PutIfVersion(ctx context.Context, collection, key string, doc domain.Document, version int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][key]
	if !ok {
		return domain.ErrNotFound
	}
	if existing.version != version {
		return domain.ErrConflict
	}

	existing.doc = doc.Clone()
	existing.version++
	return nil
}

func (s *MemoryStore) Merge(ctx context.Context, collection, key string, partial domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	existing, ok := c[key]
	if !ok {
		s.seq++
		c[key] = &memoryRecord{seq: s.seq, version: 1, doc: partial.Clone()}
		return nil
	}

	for k, v := range partial {
		existing.doc[k] = v
	}
	existing.version++
	return nil
}

func (s *MemoryStore) Append(ctx context.Context, collection string, doc domain.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := uuid.NewString()
	s.seq++
	s.collection(collection)[key] = &memoryRecord{seq: s.seq, version: 1, doc: doc.Clone()}
	return key, nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], key)
	return nil
}

func (s *MemoryStore) QueryOrdered(ctx context.Context, collection, orderField string, dir domain.SortDirection) ([]*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type row struct {
		key string
		rec *memoryRecord
	}

	rows := make([]row, 0, len(s.collections[collection]))
	for k, r := range s.collections[collection] {
		rows = append(rows, row{key: k, rec: r})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].rec.seq < rows[j].rec.seq
	})

	if orderField != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			c := compareValues(rows[i].rec.doc[orderField], rows[j].rec.doc[orderField])
			if dir == domain.SortDesc {
				return c > 0
			}
			return c < 0
		})
	}

	out := make([]*domain.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, &domain.Record{Key: r.key, Version: r.rec.version, Data: r.rec.doc.Clone()})
	}
	return out, nil
}

// compareValues orders missing values first, then numbers, then strings.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}

	switch ra {
	case 1:
		fa := domain.Document{"v": a}.Float("v")
		fb := domain.Document{"v": b}.Float("v")
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
	case 2:
		sa, sb := a.(string), b.(string)
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
	}
	return 0
}

func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case string:
		return 2
	case bool:
		return 3
	default:
		return 1
	}
}
