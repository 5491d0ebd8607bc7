// Package progress keeps the learner's ratings and mistakes in memory and
// mirrors them to a Store through an ordered background writer.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// ErrClosed is returned by calls that need the writer after Close.
var ErrClosed = errors.New("progress tracker closed")

// Config tunes the background writer.
type Config struct {
	// QueueSize is the backlog above which a stalled store is reported.
	// Callers never wait on it.
	QueueSize    int
	WriteTimeout time.Duration
}

type op struct {
	name string
	ctx  context.Context
	run  func(ctx context.Context) error
	// result, when set, receives the outcome instead of the log.
	result chan error
}

// Tracker is the in-memory source of truth for progress. Reads never touch
// the store after Load.
type Tracker struct {
	log   *slog.Logger
	store Store
	cfg   Config
	now   func() time.Time

	mu       sync.RWMutex
	ratings  map[int]domain.RatingRecord
	mistakes []domain.MistakeRecord

	qmu     sync.Mutex
	closed  bool
	pending []op
	warned  bool
	wake    chan struct{}
	done    chan struct{}
}

// NewTracker starts the writer goroutine. Call Close on shutdown.
func NewTracker(log *slog.Logger, store Store, cfg Config) *Tracker {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}

	t := &Tracker{
		log:     log.With("service", "progress"),
		store:   store,
		cfg:     cfg,
		now:     time.Now,
		ratings: make(map[int]domain.RatingRecord),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go t.write()
	return t
}

// Load replaces the in-memory state with what the store holds. A part that
// fails to load is logged and left empty.
func (t *Tracker) Load(ctx context.Context) error {
	var errs []error

	ratings, err := t.store.LoadRatings(ctx)
	if err != nil {
		t.log.ErrorContext(ctx, "load ratings", slog.String("error", err.Error()))
		errs = append(errs, fmt.Errorf("load ratings: %w", err))
		ratings = nil
	}
	mistakes, err := t.store.LoadMistakes(ctx)
	if err != nil {
		t.log.ErrorContext(ctx, "load mistakes", slog.String("error", err.Error()))
		errs = append(errs, fmt.Errorf("load mistakes: %w", err))
		mistakes = nil
	}

	t.mu.Lock()
	t.ratings = make(map[int]domain.RatingRecord, len(ratings))
	maps.Copy(t.ratings, ratings)
	t.mistakes = slices.Clone(mistakes)
	t.mu.Unlock()

	t.log.DebugContext(ctx, "progress loaded",
		slog.Int("ratings", len(ratings)),
		slog.Int("mistakes", len(mistakes)),
	)
	return errors.Join(errs...)
}

// RecordRating sets the rating of a message. The newest rating wins.
func (t *Tracker) RecordRating(ctx context.Context, messageID int, level domain.RatingLevel) domain.RatingRecord {
	rec := domain.RatingRecord{
		MessageID: messageID,
		RatingID:  level,
		Label:     level.Label(),
		UpdatedAt: t.now().UTC(),
	}

	t.mu.Lock()
	t.ratings[messageID] = rec
	t.mu.Unlock()

	t.enqueue(ctx, "save rating", func(ctx context.Context) error {
		return t.store.SaveRating(ctx, rec)
	})
	return rec
}

// RecordMistake appends a wrong answer.
func (t *Tracker) RecordMistake(ctx context.Context, questionID, wrongAnswerID int) domain.MistakeRecord {
	rec := domain.MistakeRecord{
		ID:                   uuid.New(),
		QuestionMessageID:    questionID,
		WrongAnswerMessageID: wrongAnswerID,
		Timestamp:            t.now().UTC(),
	}

	t.mu.Lock()
	t.mistakes = append(t.mistakes, rec)
	t.mu.Unlock()

	t.enqueue(ctx, "append mistake", func(ctx context.Context) error {
		return t.store.AppendMistake(ctx, rec)
	})
	return rec
}

// Ratings returns a copy of every rating keyed by message id.
func (t *Tracker) Ratings() map[int]domain.RatingRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.ratings)
}

func (t *Tracker) Rating(messageID int) (domain.RatingRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.ratings[messageID]
	return r, ok
}

// Mistakes returns a copy of the mistake log in recording order.
func (t *Tracker) Mistakes() []domain.MistakeRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.mistakes)
}

// Clear wipes memory at once and the store after every queued write, and
// reports the store's answer.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	t.ratings = make(map[int]domain.RatingRecord)
	t.mistakes = nil
	t.mu.Unlock()

	return t.await(ctx, "clear", t.store.ClearAll)
}

// Flush waits until every write queued before the call has been attempted.
func (t *Tracker) Flush(ctx context.Context) error {
	return t.await(ctx, "flush", func(context.Context) error { return nil })
}

// Close stops accepting writes, lets the writer drain what is queued and
// waits for it until ctx ends.
func (t *Tracker) Close(ctx context.Context) error {
	t.qmu.Lock()
	t.closed = true
	t.qmu.Unlock()
	t.signal()

	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("close progress tracker: %w", ctx.Err())
	}
}

func (t *Tracker) enqueue(ctx context.Context, name string, run func(ctx context.Context) error) {
	if err := t.send(ctx, op{name: name, ctx: ctx, run: run}); err != nil {
		t.log.WarnContext(ctx, "progress write dropped",
			slog.String("op", name),
			slog.String("error", err.Error()),
		)
	}
}

func (t *Tracker) await(ctx context.Context, name string, run func(ctx context.Context) error) error {
	result := make(chan error, 1)
	if err := t.send(ctx, op{name: name, ctx: ctx, run: run, result: result}); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", name, ctx.Err())
	}
}

// send queues o behind every earlier op. It never waits.
func (t *Tracker) send(ctx context.Context, o op) error {
	t.qmu.Lock()
	if t.closed {
		t.qmu.Unlock()
		return ErrClosed
	}
	t.pending = append(t.pending, o)
	backlog := len(t.pending)
	warn := backlog > t.cfg.QueueSize && !t.warned
	if warn {
		t.warned = true
	}
	t.qmu.Unlock()

	if warn {
		t.log.WarnContext(ctx, "progress store is falling behind", slog.Int("backlog", backlog))
	}
	t.signal()
	return nil
}

func (t *Tracker) signal() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// write runs queued ops one at a time in queue order until Close has been
// called and the queue is empty.
func (t *Tracker) write() {
	defer close(t.done)

	for {
		t.qmu.Lock()
		batch := t.pending
		t.pending = nil
		t.warned = false
		closed := t.closed
		t.qmu.Unlock()

		for _, o := range batch {
			t.run(o)
		}
		if len(batch) > 0 {
			continue
		}
		if closed {
			return
		}
		<-t.wake
	}
}

func (t *Tracker) run(o op) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(o.ctx), t.cfg.WriteTimeout)
	defer cancel()
	err := o.run(ctx)

	if o.result != nil {
		o.result <- err
		return
	}
	if err != nil {
		t.log.ErrorContext(ctx, "progress write failed",
			slog.String("op", o.name),
			slog.String("error", err.Error()),
		)
	}
}
