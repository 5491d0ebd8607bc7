package dataset

import (
	"io"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

const vowelPlaceholder = "◌"

// ParseConsonants reads the consonant sheet. Columns: Burmese, Marathi1
// (falls back to Marathi), Marathi2, English.
func ParseConsonants(r io.Reader) ([]domain.GlyphRule, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	var out []domain.GlyphRule
	for _, rec := range t.rows {
		key := t.get(rec, "Burmese")
		if key == "" {
			continue
		}
		out = append(out, domain.GlyphRule{
			Pattern:     key,
			Replacement: t.get(rec, "Marathi1", "Marathi"),
			Alternate:   t.get(rec, "Marathi2"),
			Gloss:       t.get(rec, "English"),
		})
	}
	return out, nil
}

// ParseVowels reads the vowel sheet. The key is the first non-empty of
// Burmese_extra, Burmese_extra2 and Vowels; the dotted-circle placeholder
// is not a key. The value is Marathi_extra, falling back to Marathi.
func ParseVowels(r io.Reader) ([]domain.GlyphRule, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	var out []domain.GlyphRule
	for _, rec := range t.rows {
		key := t.get(rec, "Burmese_extra", "Burmese_extra2", "Vowels")
		if key == "" || key == vowelPlaceholder {
			continue
		}
		out = append(out, domain.GlyphRule{
			Pattern:     key,
			Replacement: t.get(rec, "Marathi_extra", "Marathi"),
		})
	}
	return out, nil
}

// ParseMedials reads the medial sheet: Burmese_extra to Marathi. Values
// "-" and "#N/A" mark cells with no mapping.
func ParseMedials(r io.Reader) ([]domain.GlyphRule, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	var out []domain.GlyphRule
	for _, rec := range t.rows {
		key := t.get(rec, "Burmese_extra")
		val := t.get(rec, "Marathi")
		if key == "" || val == "" || val == "-" || val == "#N/A" {
			continue
		}
		out = append(out, domain.GlyphRule{Pattern: key, Replacement: val})
	}
	return out, nil
}

// ParseSpecialCases reads whole-phrase overrides: Burmese to Devanagari.
func ParseSpecialCases(r io.Reader) ([]domain.SpecialCase, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	var out []domain.SpecialCase
	for _, rec := range t.rows {
		phrase := t.get(rec, "Burmese")
		repl := t.get(rec, "Devanagari")
		if phrase == "" || repl == "" {
			continue
		}
		out = append(out, domain.SpecialCase{Phrase: phrase, Replacement: repl})
	}
	return out, nil
}
