// Package translit converts Burmese script to a Devanagari pseudo-phonetic
// rendering by greedy longest-match over a tiered glyph rule table.
package translit

import (
	"slices"
	"unicode/utf8"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

type entry struct {
	replacement string
	tier        domain.RuleTier
}

// Index is the merged, immutable lookup built from the rule tiers.
// Patterns are ordered by descending code-point length; equal lengths keep
// insertion order (tier order, then order within the tier).
type Index struct {
	lookup   map[string]entry
	patterns []string
	// byFirst holds the same order as patterns, bucketed by leading rune.
	byFirst map[rune][]string
}

// BuildIndex merges the tiers in priority order. The first tier to define a
// pattern owns it. Rules with an empty pattern or replacement are skipped.
// Empty input yields an index that matches nothing.
func BuildIndex(medials, vowels, consonants []domain.GlyphRule) *Index {
	ix := &Index{
		lookup:  make(map[string]entry, len(medials)+len(vowels)+len(consonants)),
		byFirst: make(map[rune][]string),
	}

	tiers := []struct {
		tier  domain.RuleTier
		rules []domain.GlyphRule
	}{
		{domain.TierMedial, medials},
		{domain.TierVowel, vowels},
		{domain.TierConsonant, consonants},
	}
	for _, t := range tiers {
		for _, r := range t.rules {
			if r.Pattern == "" || r.Replacement == "" {
				continue
			}
			if _, taken := ix.lookup[r.Pattern]; taken {
				continue
			}
			ix.lookup[r.Pattern] = entry{replacement: r.Replacement, tier: t.tier}
			ix.patterns = append(ix.patterns, r.Pattern)
		}
	}

	slices.SortStableFunc(ix.patterns, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})

	for _, p := range ix.patterns {
		first, _ := utf8.DecodeRuneInString(p)
		ix.byFirst[first] = append(ix.byFirst[first], p)
	}

	return ix
}

// Len returns the number of distinct patterns.
func (ix *Index) Len() int { return len(ix.patterns) }

// Patterns returns the patterns in match order.
func (ix *Index) Patterns() []string { return slices.Clone(ix.patterns) }

// Lookup returns the replacement and owning tier of an exact pattern.
func (ix *Index) Lookup(pattern string) (string, domain.RuleTier, bool) {
	e, ok := ix.lookup[pattern]
	return e.replacement, e.tier, ok
}

// longestPrefix returns the first pattern, in match order, that s starts with.
func (ix *Index) longestPrefix(s string) (string, entry, bool) {
	first, _ := utf8.DecodeRuneInString(s)
	for _, p := range ix.byFirst[first] {
		if len(p) <= len(s) && s[:len(p)] == p {
			return p, ix.lookup[p], true
		}
	}
	return "", entry{}, false
}
