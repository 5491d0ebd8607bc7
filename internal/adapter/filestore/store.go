// Package filestore keeps progress in a learner's directory on disk:
// ratings.json holds the ratings document, mistakes.jsonl one mistake per
// line.
package filestore

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/myburmese-backend/internal/adapter/document"
	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

const (
	ratingsFile  = "ratings.json"
	mistakesFile = "mistakes.jsonl"
)

type Store struct {
	dir string
	log *slog.Logger
	mu  sync.Mutex
}

// New creates the learner's directory under root if it is missing.
func New(log *slog.Logger, root, learner string) (*Store, error) {
	if learner == "" || learner == "." || learner == ".." || filepath.Base(learner) != learner {
		return nil, domain.NewValidationError("learner", "must be a plain name")
	}
	dir := filepath.Join(root, learner)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	return &Store{
		dir: dir,
		log: log.With("store", "file", "dir", dir),
	}, nil
}

// Dir is the learner's directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) LoadRatings(ctx context.Context) (map[int]domain.RatingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRatingsUnlocked(ctx)
}

func (s *Store) SaveRating(ctx context.Context, r domain.RatingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratings, err := s.loadRatingsUnlocked(ctx)
	if err != nil {
		return err
	}
	ratings[r.MessageID] = r

	data, err := document.EncodeRatings(ratings)
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(s.dir, ratingsFile), data)
}

func (s *Store) LoadMistakes(ctx context.Context) ([]domain.MistakeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(filepath.Join(s.dir, mistakesFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open mistakes: %w", err)
	}
	defer f.Close()

	var out []domain.MistakeRecord
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var d document.Mistake
		if err := json.Unmarshal(raw, &d); err != nil {
			s.log.DebugContext(ctx, "skip mistake line", slog.Int("line", line), slog.String("error", err.Error()))
			continue
		}
		out = append(out, d.ToMistake())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read mistakes: %w", err)
	}
	return out, nil
}

func (s *Store) AppendMistake(_ context.Context, m domain.MistakeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := json.Marshal(document.FromMistake(m))
	if err != nil {
		return fmt.Errorf("encode mistake: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(s.dir, mistakesFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open mistakes: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("append mistake: %w", err)
	}
	return f.Close()
}

func (s *Store) ClearAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{ratingsFile, mistakesFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) loadRatingsUnlocked(ctx context.Context) (map[int]domain.RatingRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, ratingsFile))
	if errors.Is(err, os.ErrNotExist) {
		return make(map[int]domain.RatingRecord), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ratings: %w", err)
	}

	ratings, skipped, err := document.DecodeRatings(data)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		s.log.DebugContext(ctx, "skipped rating entries", slog.Any("keys", skipped))
	}
	return ratings, nil
}

// writeAtomic replaces path so readers never see a half-written document.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
