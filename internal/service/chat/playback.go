package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/shuffle"
)

// Option is one reply offered to the learner.
type Option struct {
	Message domain.Message
	// Wrong is set once the learner has picked this option and missed.
	Wrong   bool
	correct bool
}

// Playback walks one topic. Bot messages are revealed as they come; at every
// user message the learner picks the right reply before the playback goes on.
type Playback struct {
	topic          domain.Topic
	shuffler       shuffle.Shuffler
	mistakes       mistakeRecorder
	log            *slog.Logger
	maxDistractors int

	pos        int
	transcript []domain.Message
	options    []Option
}

func (p *Playback) Topic() domain.Topic { return p.topic }

// Transcript returns the messages revealed so far.
func (p *Playback) Transcript() []domain.Message {
	out := make([]domain.Message, len(p.transcript))
	copy(out, p.transcript)
	return out
}

// Waiting reports whether the learner has to pick a reply.
func (p *Playback) Waiting() bool { return len(p.options) > 0 }

// Complete reports whether every message has been revealed.
func (p *Playback) Complete() bool { return p.pos >= len(p.topic.Messages) }

// Options returns the replies on offer, with wrong picks marked.
func (p *Playback) Options() []Option {
	out := make([]Option, len(p.options))
	copy(out, p.options)
	return out
}

// Pick chooses option i. A wrong pick is recorded against the expected
// reply and stays marked; the right one is revealed and playback resumes.
func (p *Playback) Pick(ctx context.Context, i int) (bool, error) {
	if !p.Waiting() {
		return false, fmt.Errorf("pick while not waiting: %w", domain.ErrInvalidState)
	}
	if i < 0 || i >= len(p.options) {
		return false, domain.NewValidationError("option", fmt.Sprintf("must be in [0, %d)", len(p.options)))
	}

	opt := &p.options[i]
	if opt.Wrong {
		return false, fmt.Errorf("option %d already rejected: %w", i, domain.ErrInvalidState)
	}

	expected := p.topic.Messages[p.pos]
	if !opt.correct {
		opt.Wrong = true
		p.mistakes.RecordMistake(ctx, expected.ID, opt.Message.ID)
		p.log.DebugContext(ctx, "wrong reply",
			slog.Int("expected_id", expected.ID),
			slog.Int("picked_id", opt.Message.ID),
		)
		return false, nil
	}

	p.transcript = append(p.transcript, expected)
	p.options = nil
	p.pos++
	p.run()
	return true, nil
}

// Restart plays the topic again from the top.
func (p *Playback) Restart() error {
	if !p.Complete() {
		return fmt.Errorf("restart before completion: %w", domain.ErrInvalidState)
	}
	p.begin()
	return nil
}

func (p *Playback) begin() {
	p.pos = 0
	p.transcript = nil
	p.options = nil
	p.run()
}

// run reveals bot messages until a user message or the end.
func (p *Playback) run() {
	msgs := p.topic.Messages
	for p.pos < len(msgs) {
		m := msgs[p.pos]
		if m.Role == domain.RoleUser {
			p.options = p.buildOptions(p.pos)
			return
		}
		p.transcript = append(p.transcript, m)
		p.pos++
	}
}

func (p *Playback) buildOptions(at int) []Option {
	answer := p.topic.Messages[at]
	seen := map[string]struct{}{answer.BurmeseText: {}}

	var candidates []domain.Message
	for i, m := range p.topic.Messages {
		if i == at || m.Role != domain.RoleUser {
			continue
		}
		if _, dup := seen[m.BurmeseText]; dup {
			continue
		}
		seen[m.BurmeseText] = struct{}{}
		candidates = append(candidates, m)
	}
	shuffle.Slice(p.shuffler, candidates)
	if len(candidates) > p.maxDistractors {
		candidates = candidates[:p.maxDistractors]
	}

	opts := make([]Option, 0, len(candidates)+1)
	opts = append(opts, Option{Message: answer, correct: true})
	for _, m := range candidates {
		opts = append(opts, Option{Message: m})
	}
	shuffle.Slice(p.shuffler, opts)
	return opts
}
