package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/shuffle"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogReader interface {
	Topic(id int) (domain.Topic, bool)
	Topics() []domain.Topic
	Messages() []domain.IndexedMessage
}

type progressRecorder interface {
	RecordRating(ctx context.Context, messageID int, level domain.RatingLevel) domain.RatingRecord
	RecordMistake(ctx context.Context, questionID, wrongAnswerID int) domain.MistakeRecord
}

type shufflerSource interface {
	Next() shuffle.Shuffler
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds quiz tuning.
type Config struct {
	// MaxDistractors caps the wrong options offered next to the right one.
	MaxDistractors int
}

// Service starts quiz sessions over the catalog.
type Service struct {
	log       *slog.Logger
	catalog   catalogReader
	progress  progressRecorder
	shufflers shufflerSource
	cfg       Config
}

// NewService creates a new quiz service.
func NewService(
	log *slog.Logger,
	catalog catalogReader,
	progress progressRecorder,
	shufflers shufflerSource,
	cfg Config,
) *Service {
	if cfg.MaxDistractors <= 0 {
		cfg.MaxDistractors = 3
	}
	return &Service{
		log:       log.With("service", "quiz"),
		catalog:   catalog,
		progress:  progress,
		shufflers: shufflers,
		cfg:       cfg,
	}
}

// Start opens a session. An empty scope yields a session that is already
// complete.
func (s *Service) Start(ctx context.Context, in StartInput) (*Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var (
		questions []Question
		pool      []domain.Message
	)
	if in.TopicID == 0 {
		questions, pool = globalScope(s.catalog.Topics(), s.catalog.Messages(), in.Mode)
	} else {
		topic, ok := s.catalog.Topic(in.TopicID)
		if !ok {
			return nil, fmt.Errorf("topic %d: %w", in.TopicID, domain.ErrNotFound)
		}
		questions, pool = topicScope(topic, in.Mode)
	}

	sess := &Session{
		id:             uuid.New(),
		mode:           in.Mode,
		topicID:        in.TopicID,
		questions:      questions,
		pool:           pool,
		shuffler:       s.shufflers.Next(),
		progress:       s.progress,
		log:            s.log,
		maxDistractors: s.cfg.MaxDistractors,
	}
	sess.log = s.log.With(slog.String("session_id", sess.id.String()))
	sess.begin()

	s.log.InfoContext(ctx, "quiz started",
		slog.String("session_id", sess.id.String()),
		slog.String("mode", in.Mode.String()),
		slog.Int("topic_id", in.TopicID),
		slog.Int("questions", len(questions)),
	)

	return sess, nil
}
