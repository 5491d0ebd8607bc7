package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/translit"
)

//go:embed defaults/conversations.csv
var defaultConversationsCSV []byte

// Sources holds the sheet paths. Empty paths keep the built-in data.
type Sources struct {
	Consonants    string
	Vowels        string
	Medials       string
	SpecialCases  string
	Conversations string
	// Strict turns unreadable sheets into errors instead of warnings.
	Strict bool
}

// Dataset is everything needed to build the engine and parse topics.
type Dataset struct {
	Rules         domain.RuleSet
	Conversations []domain.ConversationRow
}

// Defaults returns the built-in rule tables and sample conversations.
func Defaults() (Dataset, error) {
	return builtIn(bytes.NewReader(defaultConversationsCSV))
}

func builtIn(conversationSheet io.Reader) (Dataset, error) {
	rows, err := ParseConversations(conversationSheet)
	if err != nil {
		return Dataset{}, fmt.Errorf("built-in conversations: %w", err)
	}
	return Dataset{Rules: translit.DefaultRuleSet(), Conversations: rows}, nil
}

// Load reads every configured sheet concurrently and merges the result over
// the defaults: consonants and conversations replace the built-in lists,
// while vowels, medials and special cases merge by key. A sheet that cannot
// be read is logged and ignored unless src.Strict is set.
func Load(ctx context.Context, log *slog.Logger, src Sources) (Dataset, error) {
	var (
		consonants, vowels, medials []domain.GlyphRule
		special                     []domain.SpecialCase
		conversations               []domain.ConversationRow
	)

	g, _ := errgroup.WithContext(ctx)
	read := func(name, path string, parse func(f *os.File) error) {
		if path == "" {
			return
		}
		g.Go(func() error {
			f, err := os.Open(path)
			if err == nil {
				defer f.Close()
				err = parse(f)
			}
			if err != nil {
				if src.Strict {
					return fmt.Errorf("load %s sheet %s: %w", name, path, err)
				}
				log.WarnContext(ctx, "sheet not loaded, using defaults",
					slog.String("sheet", name),
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
			}
			return nil
		})
	}

	read("consonants", src.Consonants, func(f *os.File) (err error) {
		consonants, err = ParseConsonants(f)
		return err
	})
	read("vowels", src.Vowels, func(f *os.File) (err error) {
		vowels, err = ParseVowels(f)
		return err
	})
	read("medials", src.Medials, func(f *os.File) (err error) {
		medials, err = ParseMedials(f)
		return err
	})
	read("special_cases", src.SpecialCases, func(f *os.File) (err error) {
		special, err = ParseSpecialCases(f)
		return err
	})
	read("conversations", src.Conversations, func(f *os.File) (err error) {
		conversations, err = ParseConversations(f)
		return err
	})

	if err := g.Wait(); err != nil {
		return Dataset{}, err
	}
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}

	ds, err := Defaults()
	if err != nil {
		return Dataset{}, err
	}
	if len(consonants) > 0 {
		ds.Rules.Consonants = mergeRules(nil, consonants)
	}
	ds.Rules.Vowels = mergeRules(ds.Rules.Vowels, vowels)
	ds.Rules.Medials = mergeRules(ds.Rules.Medials, medials)
	ds.Rules.SpecialCases = mergeSpecialCases(ds.Rules.SpecialCases, special)
	if len(conversations) > 0 {
		ds.Conversations = conversations
	}

	log.DebugContext(ctx, "dataset loaded",
		slog.Int("consonants", len(ds.Rules.Consonants)),
		slog.Int("vowels", len(ds.Rules.Vowels)),
		slog.Int("medials", len(ds.Rules.Medials)),
		slog.Int("special_cases", len(ds.Rules.SpecialCases)),
		slog.Int("conversation_rows", len(ds.Conversations)),
	)

	return ds, nil
}

// mergeRules overrides base entries in place by pattern and appends new
// patterns in sheet order. The last sheet row for a pattern wins.
func mergeRules(base, overlay []domain.GlyphRule) []domain.GlyphRule {
	if len(overlay) == 0 {
		return base
	}
	pos := make(map[string]int, len(base))
	for i, r := range base {
		pos[r.Pattern] = i
	}
	for _, r := range overlay {
		if i, ok := pos[r.Pattern]; ok {
			base[i] = r
			continue
		}
		pos[r.Pattern] = len(base)
		base = append(base, r)
	}
	return base
}

func mergeSpecialCases(base, overlay []domain.SpecialCase) []domain.SpecialCase {
	if len(overlay) == 0 {
		return base
	}
	pos := make(map[string]int, len(base))
	for i, sc := range base {
		pos[sc.Phrase] = i
	}
	for _, sc := range overlay {
		if i, ok := pos[sc.Phrase]; ok {
			base[i] = sc
			continue
		}
		pos[sc.Phrase] = len(base)
		base = append(base, sc)
	}
	return base
}
