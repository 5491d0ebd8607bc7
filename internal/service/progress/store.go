package progress

import (
	"context"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// Store persists ratings and mistakes for one learner. Implementations may
// be slow or fail; the Tracker never lets a failure reach the learner.
type Store interface {
	LoadRatings(ctx context.Context) (map[int]domain.RatingRecord, error)
	SaveRating(ctx context.Context, r domain.RatingRecord) error
	LoadMistakes(ctx context.Context) ([]domain.MistakeRecord, error)
	AppendMistake(ctx context.Context, m domain.MistakeRecord) error
	ClearAll(ctx context.Context) error
}
