// Package conversation turns validated sheet rows into topics and the
// deduplicated message index.
package conversation

import (
	"log/slog"
	"strings"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

const untitled = "Untitled"

type transliterator interface {
	Transliterate(text string) string
}

// Options tunes parsing.
type Options struct {
	EmptyTopics domain.EmptyTopicPolicy
	// Logger receives Debug records for skipped rows. Nil discards them.
	Logger *slog.Logger
}

// ParsedData is the result of one parse. It is replaced wholesale, never
// patched.
type ParsedData struct {
	Topics   []domain.Topic
	Messages []domain.IndexedMessage
}

// Topic returns the topic with the given id.
func (p ParsedData) Topic(id int) (domain.Topic, bool) {
	for _, t := range p.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Topic{}, false
}

// Message returns the indexed message with the given id.
func (p ParsedData) Message(id int) (domain.IndexedMessage, bool) {
	for _, m := range p.Messages {
		if m.ID == id {
			return m, true
		}
	}
	return domain.IndexedMessage{}, false
}

type parser struct {
	tr      transliterator
	keep    bool
	log     *slog.Logger
	topics  []domain.Topic
	current *domain.Topic
}

// Parse runs the topic state machine over rows. It never fails: rows that
// do not fit the current state are skipped.
func Parse(rows []domain.ConversationRow, tr transliterator, opts Options) ParsedData {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	p := &parser{
		tr:   tr,
		keep: opts.EmptyTopics == domain.EmptyTopicKeep,
		log:  log,
	}
	for _, row := range rows {
		p.feed(row)
	}
	p.close()

	return ParsedData{
		Topics:   p.topics,
		Messages: BuildMessageIndex(p.topics),
	}
}

func (p *parser) feed(row domain.ConversationRow) {
	switch row.Tag {
	case domain.RowTagTitle:
		p.close()
		title := strings.TrimSpace(row.EnglishText)
		if title == "" {
			title = untitled
		}
		p.current = &domain.Topic{ID: len(p.topics) + 1, Title: title}

	case domain.RowTagDescription:
		if p.current == nil {
			p.skip(row, "description outside topic")
			return
		}
		p.current.Description = strings.TrimSpace(row.EnglishText)

	case domain.RowTagBot, domain.RowTagUser:
		if p.current == nil {
			p.skip(row, "message outside topic")
			return
		}
		burmese := strings.TrimSpace(row.BurmeseText)
		if burmese == "" || burmese == "-" {
			p.skip(row, "message without text")
			return
		}
		role, _ := row.Tag.Role()
		p.current.Messages = append(p.current.Messages, domain.Message{
			ID:             row.SequenceNo,
			Role:           role,
			BurmeseText:    burmese,
			EnglishText:    strings.TrimSpace(row.EnglishText),
			DevanagariText: p.tr.Transliterate(burmese),
		})

	case domain.RowTagEnd:
		if p.current == nil {
			p.skip(row, "end outside topic")
			return
		}
		p.close()

	default:
		p.skip(row, "unknown tag")
	}
}

// close finalises the open topic, if any, under the empty-topic policy.
func (p *parser) close() {
	if p.current == nil {
		return
	}
	if len(p.current.Messages) > 0 || p.keep {
		p.topics = append(p.topics, *p.current)
	} else {
		p.log.Debug("drop empty topic", slog.String("title", p.current.Title))
	}
	p.current = nil
}

func (p *parser) skip(row domain.ConversationRow, reason string) {
	p.log.Debug("skip conversation row",
		slog.Int("sequence_no", row.SequenceNo),
		slog.String("tag", row.Tag.String()),
		slog.String("reason", reason),
	)
}

// BuildMessageIndex flattens topics into one list, keeping only the first
// message for each distinct Burmese text. Neighbours come from the owning
// topic's full message list.
func BuildMessageIndex(topics []domain.Topic) []domain.IndexedMessage {
	seen := make(map[string]struct{})
	var out []domain.IndexedMessage

	for _, t := range topics {
		for i, m := range t.Messages {
			if _, dup := seen[m.BurmeseText]; dup {
				continue
			}
			seen[m.BurmeseText] = struct{}{}

			im := domain.IndexedMessage{Message: m, TopicID: t.ID, TopicTitle: t.Title}
			if i > 0 {
				prev := t.Messages[i-1]
				im.Previous = &prev
			}
			if i < len(t.Messages)-1 {
				next := t.Messages[i+1]
				im.Next = &next
			}
			out = append(out, im)
		}
	}

	return out
}
