package review

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogReader interface {
	Messages() []domain.IndexedMessage
}

type progressReader interface {
	Ratings() map[int]domain.RatingRecord
	Mistakes() []domain.MistakeRecord
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service answers questions about the learner's progress over the message
// index.
type Service struct {
	log      *slog.Logger
	catalog  catalogReader
	progress progressReader
	now      func() time.Time
}

// NewService creates a new review service.
func NewService(log *slog.Logger, catalog catalogReader, progress progressReader) *Service {
	return &Service{
		log:      log.With("service", "review"),
		catalog:  catalog,
		progress: progress,
		now:      time.Now,
	}
}
