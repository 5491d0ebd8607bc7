// Package memstore is a process-local progress store.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

type Store struct {
	mu       sync.Mutex
	ratings  map[int]domain.RatingRecord
	mistakes []domain.MistakeRecord
}

func New() *Store {
	return &Store{ratings: make(map[int]domain.RatingRecord)}
}

func (s *Store) LoadRatings(context.Context) (map[int]domain.RatingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.ratings), nil
}

func (s *Store) SaveRating(_ context.Context, r domain.RatingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[r.MessageID] = r
	return nil
}

func (s *Store) LoadMistakes(context.Context) ([]domain.MistakeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.mistakes), nil
}

func (s *Store) AppendMistake(_ context.Context, m domain.MistakeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mistakes = append(s.mistakes, m)
	return nil
}

func (s *Store) ClearAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = make(map[int]domain.RatingRecord)
	s.mistakes = nil
	return nil
}
