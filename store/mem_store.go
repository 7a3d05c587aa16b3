package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"content-humanizer/models"
)

// MemStore is an in-memory ContentStore for tests and dry runs.
type MemStore struct {
	mu     sync.RWMutex
	nextID uint
	docs   map[models.Collection]map[uint]models.Document
}

func NewMemStore() *MemStore {
	return &MemStore{docs: map[models.Collection]map[uint]models.Document{}}
}

// Add stores a copy of doc and returns its id. A zero id is assigned.
func (s *MemStore) Add(c models.Collection, doc models.Document) uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == 0 {
		s.nextID++
		doc.ID = s.nextID
	} else if doc.ID > s.nextID {
		s.nextID = doc.ID
	}
	if s.docs[c] == nil {
		s.docs[c] = map[uint]models.Document{}
	}
	s.docs[c][doc.ID] = cloneDocument(doc)
	return doc.ID
}

// Get returns a copy of one document.
func (s *MemStore) Get(c models.Collection, id uint) (models.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[c][id]
	if !ok {
		return models.Document{}, false
	}
	return cloneDocument(doc), true
}

func (s *MemStore) List(ctx context.Context, c models.Collection, limit int) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := models.ParseCollection(string(c)); !ok {
		return nil, fmt.Errorf("list %q: unknown collection", c)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint, 0, len(s.docs[c]))
	for id := range s.docs[c] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]models.Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneDocument(s.docs[c][id]))
	}
	return out, nil
}

func (s *MemStore) Update(ctx context.Context, c models.Collection, id uint, fields map[string]string, engines models.EngineSummaryList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[c][id]
	if !ok {
		return ErrNotFound
	}
	doc = cloneDocument(doc)
	for k, v := range fields {
		doc.Fields[k] = v
	}
	if engines != nil {
		doc.EngineSummaries = append(models.EngineSummaryList(nil), engines...)
	}
	s.docs[c][id] = doc
	return nil
}

func cloneDocument(d models.Document) models.Document {
	out := d
	out.Fields = make(map[string]string, len(d.Fields))
	for k, v := range d.Fields {
		out.Fields[k] = v
	}
	if d.EngineSummaries != nil {
		out.EngineSummaries = append(models.EngineSummaryList(nil), d.EngineSummaries...)
	}
	return out
}
