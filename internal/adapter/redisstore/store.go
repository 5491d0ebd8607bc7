// Package redisstore keeps progress in Redis: a hash of rating documents
// keyed by message id and a list of mistake documents.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/myburmese-backend/internal/adapter/document"
	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

type Store struct {
	client      redis.Cmdable
	log         *slog.Logger
	ratingsKey  string
	mistakesKey string
}

// New scopes the store to prefix:learner.
func New(log *slog.Logger, client redis.Cmdable, prefix, learner string) *Store {
	base := prefix + ":" + learner
	return &Store{
		client:      client,
		log:         log.With("store", "redis", "key", base),
		ratingsKey:  base + ":ratings",
		mistakesKey: base + ":mistakes",
	}
}

// Connect creates a client from a URL and pings it.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *Store) LoadRatings(ctx context.Context) (map[int]domain.RatingRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.ratingsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	out := make(map[int]domain.RatingRecord, len(fields))
	for field, raw := range fields {
		var d document.Rating
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			s.log.DebugContext(ctx, "skip rating", slog.String("field", field), slog.String("error", err.Error()))
			continue
		}
		if d.MessageID == 0 {
			d.MessageID, _ = strconv.Atoi(field)
		}
		r, err := d.ToRating()
		if err != nil || r.MessageID <= 0 {
			s.log.DebugContext(ctx, "skip rating", slog.String("field", field))
			continue
		}
		out[r.MessageID] = r
	}
	return out, nil
}

func (s *Store) SaveRating(ctx context.Context, r domain.RatingRecord) error {
	raw, err := json.Marshal(document.FromRating(r))
	if err != nil {
		return fmt.Errorf("encode rating: %w", err)
	}
	if err := s.client.HSet(ctx, s.ratingsKey, strconv.Itoa(r.MessageID), raw).Err(); err != nil {
		return fmt.Errorf("save rating: %w", err)
	}
	return nil
}

func (s *Store) LoadMistakes(ctx context.Context) ([]domain.MistakeRecord, error) {
	items, err := s.client.LRange(ctx, s.mistakesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}

	out := make([]domain.MistakeRecord, 0, len(items))
	for i, raw := range items {
		var d document.Mistake
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			s.log.DebugContext(ctx, "skip mistake", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		out = append(out, d.ToMistake())
	}
	return out, nil
}

func (s *Store) AppendMistake(ctx context.Context, m domain.MistakeRecord) error {
	raw, err := json.Marshal(document.FromMistake(m))
	if err != nil {
		return fmt.Errorf("encode mistake: %w", err)
	}
	if err := s.client.RPush(ctx, s.mistakesKey, raw).Err(); err != nil {
		return fmt.Errorf("append mistake: %w", err)
	}
	return nil
}

func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.client.Del(ctx, s.ratingsKey, s.mistakesKey).Err(); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}
