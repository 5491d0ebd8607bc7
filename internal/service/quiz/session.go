package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/shuffle"
)

// State is the position of a session in its answer cycle.
type State string

const (
	StateAwaitingAnswer State = "awaiting_answer"
	StateAnswerRevealed State = "answer_revealed"
	StateRatingPending  State = "rating_pending"
	StateComplete       State = "complete"
)

func (s State) String() string { return string(s) }

// Session is one run through a scope. It is driven from a single goroutine.
type Session struct {
	id             uuid.UUID
	mode           domain.QuizMode
	topicID        int
	questions      []Question
	pool           []domain.Message
	shuffler       shuffle.Shuffler
	progress       progressRecorder
	log            *slog.Logger
	maxDistractors int

	state   State
	pos     int
	round   int
	options []Option
	correct bool
	typed   string
}

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) Mode() domain.QuizMode { return s.mode }

// TopicID is 0 for sessions spanning every topic.
func (s *Session) TopicID() int { return s.topicID }

func (s *Session) State() State { return s.state }

// Len is the number of questions per round.
func (s *Session) Len() int { return len(s.questions) }

// Position is the 1-based index of the current question in this round.
func (s *Session) Position() int { return s.pos + 1 }

// Round counts completed reshuffles of a looping session.
func (s *Session) Round() int { return s.round }

// Empty reports whether the scope had nothing to ask.
func (s *Session) Empty() bool { return len(s.questions) == 0 }

// Current returns the question being asked. ok is false once complete.
func (s *Session) Current() (q Question, ok bool) {
	if s.state == StateComplete {
		return Question{}, false
	}
	return s.questions[s.pos], true
}

// Options returns the choices for the current question, with wrong picks
// marked. Recall sessions have no options.
func (s *Session) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Correct reports whether the revealed answer was right.
func (s *Session) Correct() bool { return s.correct }

// Typed returns the text submitted with Reveal.
func (s *Session) Typed() string { return s.typed }

// Pick selects option i. A wrong pick marks the option, records a mistake
// and leaves the question open; the right pick reveals the answer.
func (s *Session) Pick(ctx context.Context, i int) (bool, error) {
	if s.state != StateAwaitingAnswer {
		return false, fmt.Errorf("pick in %s: %w", s.state, domain.ErrInvalidState)
	}
	if s.mode == domain.QuizModeRecall {
		return false, fmt.Errorf("pick in recall mode: %w", domain.ErrInvalidState)
	}
	if i < 0 || i >= len(s.options) {
		return false, domain.NewValidationError("option", fmt.Sprintf("must be in [0, %d)", len(s.options)))
	}

	opt := &s.options[i]
	if opt.Wrong {
		return false, fmt.Errorf("option %d already rejected: %w", i, domain.ErrInvalidState)
	}

	q := s.questions[s.pos]
	if !opt.correct {
		opt.Wrong = true
		s.progress.RecordMistake(ctx, q.Message.ID, opt.Message.ID)
		s.log.DebugContext(ctx, "wrong pick",
			slog.Int("question_id", q.Message.ID),
			slog.Int("wrong_answer_id", opt.Message.ID),
		)
		return false, nil
	}

	s.correct = true
	s.state = StateAnswerRevealed
	return true, nil
}

// Reveal shows the answer. In recall mode typed is checked against the
// Burmese text; other modes treat a reveal as giving up.
func (s *Session) Reveal(_ context.Context, typed string) (bool, error) {
	if s.state != StateAwaitingAnswer {
		return false, fmt.Errorf("reveal in %s: %w", s.state, domain.ErrInvalidState)
	}

	q := s.questions[s.pos]
	s.typed = typed
	s.correct = s.mode == domain.QuizModeRecall &&
		domain.NormalizeAnswer(typed) != "" &&
		domain.NormalizeAnswer(typed) == domain.NormalizeAnswer(q.Answer().BurmeseText)
	s.state = StateAnswerRevealed
	return s.correct, nil
}

// RequestRating moves a revealed question to rating.
func (s *Session) RequestRating() error {
	if s.state != StateAnswerRevealed {
		return fmt.Errorf("request rating in %s: %w", s.state, domain.ErrInvalidState)
	}
	s.state = StateRatingPending
	return nil
}

// SubmitRating stores the rating for the question message and advances.
func (s *Session) SubmitRating(ctx context.Context, level domain.RatingLevel) error {
	if s.state != StateAnswerRevealed && s.state != StateRatingPending {
		return fmt.Errorf("submit rating in %s: %w", s.state, domain.ErrInvalidState)
	}
	if !level.IsValid() {
		return domain.NewValidationError("rating", "must be between 1 and 5")
	}

	q := s.questions[s.pos]
	s.progress.RecordRating(ctx, q.Message.ID, level)
	s.advance()
	return nil
}

// Skip advances after a reveal without rating.
func (s *Session) Skip() error {
	if s.state != StateAnswerRevealed && s.state != StateRatingPending {
		return fmt.Errorf("skip in %s: %w", s.state, domain.ErrInvalidState)
	}
	s.advance()
	return nil
}

// Restart reshuffles a completed topic session and starts over.
func (s *Session) Restart() error {
	if s.state != StateComplete {
		return fmt.Errorf("restart in %s: %w", s.state, domain.ErrInvalidState)
	}
	if s.Empty() {
		return fmt.Errorf("restart: %w", domain.ErrEmptyScope)
	}
	s.begin()
	return nil
}

func (s *Session) begin() {
	s.pos = 0
	if s.Empty() {
		s.state = StateComplete
		s.options = nil
		return
	}
	shuffle.Slice(s.shuffler, s.questions)
	s.ask()
}

func (s *Session) advance() {
	s.pos++
	if s.pos < len(s.questions) {
		s.ask()
		return
	}
	if s.topicID != 0 {
		s.state = StateComplete
		s.options = nil
		return
	}
	s.round++
	s.begin()
}

func (s *Session) ask() {
	s.state = StateAwaitingAnswer
	s.correct = false
	s.typed = ""
	s.options = s.buildOptions(s.questions[s.pos])
}

// buildOptions samples distractors once per question so the order stays
// stable while the learner retries.
func (s *Session) buildOptions(q Question) []Option {
	if s.mode == domain.QuizModeRecall {
		return nil
	}

	answer := q.Answer()
	seen := map[string]struct{}{optionKey(s.mode, answer): {}}
	var candidates []domain.Message
	for _, m := range s.pool {
		k := optionKey(s.mode, m)
		if _, dup := seen[k]; dup || m.ID == answer.ID {
			continue
		}
		seen[k] = struct{}{}
		candidates = append(candidates, m)
	}
	shuffle.Slice(s.shuffler, candidates)
	if len(candidates) > s.maxDistractors {
		candidates = candidates[:s.maxDistractors]
	}

	opts := make([]Option, 0, len(candidates)+1)
	opts = append(opts, Option{Message: answer, correct: true})
	for _, m := range candidates {
		opts = append(opts, Option{Message: m})
	}
	shuffle.Slice(s.shuffler, opts)
	return opts
}
