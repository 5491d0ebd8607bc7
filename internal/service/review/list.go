package review

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// Summary counts rated, unrated and mistaken messages.
func (s *Service) Summary(ctx context.Context) Summary {
	msgs := s.catalog.Messages()
	ratings := s.progress.Ratings()

	sum := Summary{
		Total:    len(msgs),
		Mistakes: len(s.progress.Mistakes()),
		ByRating: make(map[domain.RatingLevel]int, len(domain.RatingLevels())),
	}
	for _, level := range domain.RatingLevels() {
		sum.ByRating[level] = 0
	}
	for _, m := range msgs {
		r, ok := ratings[m.ID]
		if !ok {
			sum.Unrated++
			continue
		}
		sum.Rated++
		sum.ByRating[r.RatingID]++
	}

	s.log.DebugContext(ctx, "review summary",
		slog.Int("total", sum.Total),
		slog.Int("rated", sum.Rated),
	)
	return sum
}

// List returns index messages in index order, filtered by rating.
func (s *Service) List(_ context.Context, in ListInput) ([]Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ratings := s.progress.Ratings()
	counts := s.MistakeCounts()

	var items []Item
	for _, m := range s.catalog.Messages() {
		r, rated := ratings[m.ID]
		switch {
		case in.Unrated && rated:
			continue
		case in.Rating != 0 && (!rated || r.RatingID != in.Rating):
			continue
		}
		items = append(items, newItem(m, r, rated, counts[m.ID]))
	}
	return items, nil
}

// MistakeCounts counts mistakes per question message id.
func (s *Service) MistakeCounts() map[int]int {
	counts := make(map[int]int)
	for _, m := range s.progress.Mistakes() {
		counts[m.QuestionMessageID]++
	}
	return counts
}

// Due returns rated messages whose review interval has elapsed, oldest
// due date first.
func (s *Service) Due(_ context.Context) []Item {
	now := s.now()
	ratings := s.progress.Ratings()
	counts := s.MistakeCounts()

	var items []Item
	for _, m := range s.catalog.Messages() {
		r, ok := ratings[m.ID]
		if !ok || r.DueAt().After(now) {
			continue
		}
		items = append(items, newItem(m, r, true, counts[m.ID]))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return dueAt(items[i]).Before(dueAt(items[j]))
	})
	return items
}

func newItem(m domain.IndexedMessage, r domain.RatingRecord, rated bool, mistakes int) Item {
	it := Item{Message: m, Mistakes: mistakes}
	if rated {
		it.Rating = &r
	}
	return it
}

func dueAt(it Item) time.Time { return it.Rating.DueAt() }
