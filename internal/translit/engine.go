package translit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// SeparatorSentinel marks divider rows in the conversation sheet.
const SeparatorSentinel = "---------"

// Unmatched code points that still get a Devanagari counterpart.
var punctuation = map[rune]string{
	'။': "॥",
	'၊': "।",
}

// Engine transliterates Burmese text. It is immutable after New and safe
// for concurrent use.
type Engine struct {
	index     *Index
	special   map[string]string
	normalize bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithNormalization brings rules and input to Unicode NFC before matching,
// so differently ordered combining marks still hit the table.
func WithNormalization() Option {
	return func(e *Engine) { e.normalize = true }
}

// New builds an engine from a rule set.
func New(rules domain.RuleSet, opts ...Option) *Engine {
	e := &Engine{special: make(map[string]string, len(rules.SpecialCases))}
	for _, o := range opts {
		o(e)
	}

	medials, vowels, consonants := rules.Medials, rules.Vowels, rules.Consonants
	if e.normalize {
		medials, vowels, consonants = e.normalizeRules(medials), e.normalizeRules(vowels), e.normalizeRules(consonants)
	}
	e.index = BuildIndex(medials, vowels, consonants)

	for _, sc := range rules.SpecialCases {
		phrase := e.prepare(strings.TrimSpace(sc.Phrase))
		if phrase == "" || sc.Replacement == "" {
			continue
		}
		e.special[phrase] = sc.Replacement
	}

	return e
}

func (e *Engine) normalizeRules(rules []domain.GlyphRule) []domain.GlyphRule {
	out := make([]domain.GlyphRule, len(rules))
	for i, r := range rules {
		r.Pattern = norm.NFC.String(r.Pattern)
		out[i] = r
	}
	return out
}

func (e *Engine) prepare(s string) string {
	if e.normalize {
		return norm.NFC.String(s)
	}
	return s
}

// Index exposes the engine's lookup index.
func (e *Engine) Index() *Index { return e.index }

// SpecialCase reports the override for a whole phrase, if any.
func (e *Engine) SpecialCase(text string) (string, bool) {
	r, ok := e.special[e.prepare(strings.TrimSpace(text))]
	return r, ok
}

// Transliterate converts text. It never fails: anything the table does not
// cover is passed through.
func (e *Engine) Transliterate(text string) string {
	return e.convert(text, nil)
}

// Step is one match made while converting.
type Step struct {
	Matched   string
	Output    string
	Remaining string
	// Tier is zero for unmatched code points and special cases.
	Tier        domain.RuleTier
	Unmatched   bool
	SpecialCase bool
}

// Trace is the full record of a conversion.
type Trace struct {
	Input       string
	Result      string
	SpecialCase bool
	Steps       []Step
}

// Explain converts text and records every step. Result always equals
// Transliterate(text).
func (e *Engine) Explain(text string) Trace {
	tr := Trace{Input: text}
	tr.Result = e.convert(text, func(s Step) {
		tr.Steps = append(tr.Steps, s)
		if s.SpecialCase {
			tr.SpecialCase = true
		}
	})
	return tr
}

func (e *Engine) convert(text string, visit func(Step)) string {
	if isPlaceholder(text) {
		return ""
	}

	trimmed := e.prepare(strings.TrimSpace(text))
	if r, ok := e.special[trimmed]; ok {
		if visit != nil {
			visit(Step{Matched: trimmed, Output: r, SpecialCase: true})
		}
		return r
	}

	var b strings.Builder
	b.Grow(len(trimmed) * 2)

	rest := trimmed
	for rest != "" {
		if p, ent, ok := e.index.longestPrefix(rest); ok {
			rest = rest[len(p):]
			b.WriteString(ent.replacement)
			if visit != nil {
				visit(Step{Matched: p, Output: ent.replacement, Remaining: rest, Tier: ent.tier})
			}
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		matched := rest[:size]
		out := matched
		if mapped, ok := punctuation[r]; ok {
			out = mapped
		}
		rest = rest[size:]
		b.WriteString(out)
		if visit != nil {
			visit(Step{Matched: matched, Output: out, Remaining: rest, Unmatched: true})
		}
	}

	return b.String()
}

func isPlaceholder(text string) bool {
	return text == "" || text == "-" || text == SeparatorSentinel
}

// Stats summarises the loaded tables.
type Stats struct {
	Patterns     int
	SpecialCases int
}

func (e *Engine) Stats() Stats {
	return Stats{Patterns: e.index.Len(), SpecialCases: len(e.special)}
}
