package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/shuffle"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type topicReader interface {
	Topic(id int) (domain.Topic, bool)
}

type mistakeRecorder interface {
	RecordMistake(ctx context.Context, questionID, wrongAnswerID int) domain.MistakeRecord
}

type shufflerSource interface {
	Next() shuffle.Shuffler
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds playback tuning.
type Config struct {
	// MaxDistractors caps the other replies offered next to the right one.
	MaxDistractors int
}

// Service plays topics back as a conversation the learner takes part in.
type Service struct {
	log       *slog.Logger
	topics    topicReader
	mistakes  mistakeRecorder
	shufflers shufflerSource
	cfg       Config
}

// NewService creates a new chat service.
func NewService(
	log *slog.Logger,
	topics topicReader,
	mistakes mistakeRecorder,
	shufflers shufflerSource,
	cfg Config,
) *Service {
	if cfg.MaxDistractors <= 0 {
		cfg.MaxDistractors = 2
	}
	return &Service{
		log:       log.With("service", "chat"),
		topics:    topics,
		mistakes:  mistakes,
		shufflers: shufflers,
		cfg:       cfg,
	}
}

// Start opens a playback of the topic and runs it to the first reply the
// learner has to choose.
func (s *Service) Start(ctx context.Context, topicID int) (*Playback, error) {
	topic, ok := s.topics.Topic(topicID)
	if !ok {
		return nil, fmt.Errorf("topic %d: %w", topicID, domain.ErrNotFound)
	}

	p := &Playback{
		topic:          topic,
		shuffler:       s.shufflers.Next(),
		mistakes:       s.mistakes,
		log:            s.log.With(slog.Int("topic_id", topicID)),
		maxDistractors: s.cfg.MaxDistractors,
	}
	p.begin()

	s.log.InfoContext(ctx, "chat started",
		slog.Int("topic_id", topicID),
		slog.Int("messages", len(topic.Messages)),
	)
	return p, nil
}
