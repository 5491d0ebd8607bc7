package domain

// GlyphRule maps a Burmese pattern (one or more code points) to its
// Devanagari rendering.
type GlyphRule struct {
	Pattern     string
	Replacement string
	// Alternate is the secondary (voiced) reading of a consonant.
	Alternate string
	// Gloss is the Latin approximation, informational only.
	Gloss string
}

// SpecialCase is a whole-phrase override applied before any rule scan.
type SpecialCase struct {
	Phrase      string
	Replacement string
}

// RuleSet bundles every table the transliteration engine is built from.
type RuleSet struct {
	Medials      []GlyphRule
	Vowels       []GlyphRule
	Consonants   []GlyphRule
	SpecialCases []SpecialCase
}
