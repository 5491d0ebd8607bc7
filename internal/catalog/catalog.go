// Package catalog owns the loaded sheets and everything derived from them.
// Derived state is rebuilt wholesale; nothing is patched in place.
package catalog

import (
	"log/slog"

	"github.com/heartmarshall/myburmese-backend/internal/conversation"
	"github.com/heartmarshall/myburmese-backend/internal/dataset"
	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/translit"
)

// Options controls how derived state is built.
type Options struct {
	EmptyTopics domain.EmptyTopicPolicy
	Normalize   bool
}

// Catalog is not safe for concurrent use; Rebuild and Replace must not
// race with readers.
type Catalog struct {
	log    *slog.Logger
	opts   Options
	data   dataset.Dataset
	engine *translit.Engine
	parsed conversation.ParsedData
}

// New builds a catalog over ds.
func New(log *slog.Logger, ds dataset.Dataset, opts Options) *Catalog {
	c := &Catalog{
		log:  log.With("component", "catalog"),
		opts: opts,
		data: ds,
	}
	c.Rebuild()
	return c
}

// Rebuild recomputes the engine, topics and message index from the
// current sheets.
func (c *Catalog) Rebuild() {
	var engineOpts []translit.Option
	if c.opts.Normalize {
		engineOpts = append(engineOpts, translit.WithNormalization())
	}
	c.engine = translit.New(c.data.Rules, engineOpts...)
	c.parsed = conversation.Parse(c.data.Conversations, c.engine, conversation.Options{
		EmptyTopics: c.opts.EmptyTopics,
		Logger:      c.log,
	})

	c.log.Debug("catalog rebuilt",
		slog.Int("patterns", c.engine.Index().Len()),
		slog.Int("topics", len(c.parsed.Topics)),
		slog.Int("messages", len(c.parsed.Messages)),
	)
}

// Replace swaps in a new dataset and rebuilds.
func (c *Catalog) Replace(ds dataset.Dataset) {
	c.data = ds
	c.Rebuild()
}

func (c *Catalog) Engine() *translit.Engine { return c.engine }

func (c *Catalog) Parsed() conversation.ParsedData { return c.parsed }

func (c *Catalog) Topics() []domain.Topic { return c.parsed.Topics }

func (c *Catalog) Topic(id int) (domain.Topic, bool) { return c.parsed.Topic(id) }

func (c *Catalog) Messages() []domain.IndexedMessage { return c.parsed.Messages }

// Stats counts what is loaded.
type Stats struct {
	Consonants   int
	Vowels       int
	Medials      int
	SpecialCases int
	Patterns     int
	Topics       int
	Messages     int
}

func (c *Catalog) Stats() Stats {
	return Stats{
		Consonants:   len(c.data.Rules.Consonants),
		Vowels:       len(c.data.Rules.Vowels),
		Medials:      len(c.data.Rules.Medials),
		SpecialCases: c.engine.Stats().SpecialCases,
		Patterns:     c.engine.Stats().Patterns,
		Topics:       len(c.parsed.Topics),
		Messages:     len(c.parsed.Messages),
	}
}
