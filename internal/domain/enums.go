package domain

import "strings"

// Role identifies who speaks a message in a conversation.
type Role string

const (
	RoleBot  Role = "bot"
	RoleUser Role = "user"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleBot, RoleUser:
		return true
	}
	return false
}

// RowTag classifies a row of the conversation sheet.
type RowTag string

const (
	RowTagTitle       RowTag = "Title"
	RowTagDescription RowTag = "Description"
	RowTagBot         RowTag = "Bot"
	RowTagUser        RowTag = "User"
	RowTagEnd         RowTag = "End"
)

func (t RowTag) String() string { return string(t) }

func (t RowTag) IsValid() bool {
	switch t {
	case RowTagTitle, RowTagDescription, RowTagBot, RowTagUser, RowTagEnd:
		return true
	}
	return false
}

// Role maps a Bot/User tag to the message role. ok is false for other tags.
func (t RowTag) Role() (Role, bool) {
	switch t {
	case RowTagBot:
		return RoleBot, true
	case RowTagUser:
		return RoleUser, true
	}
	return "", false
}

// ParseRowTag matches s against the known tags, ignoring case and
// surrounding whitespace.
func ParseRowTag(s string) (RowTag, bool) {
	s = strings.TrimSpace(s)
	for _, t := range []RowTag{RowTagTitle, RowTagDescription, RowTagBot, RowTagUser, RowTagEnd} {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// RuleTier is the priority class of a glyph rule. Lower values win when
// two tiers define the same pattern.
type RuleTier int

const (
	TierMedial RuleTier = iota + 1
	TierVowel
	TierConsonant
)

func (t RuleTier) String() string {
	switch t {
	case TierMedial:
		return "medial"
	case TierVowel:
		return "vowel"
	case TierConsonant:
		return "consonant"
	}
	return "unknown"
}

// QuizMode selects how a quiz question is asked and answered.
type QuizMode string

const (
	// QuizModeRecognition shows the Burmese phrase and asks for its meaning.
	QuizModeRecognition QuizMode = "recognition"
	// QuizModeRecall shows hints and lets the learner type the phrase.
	QuizModeRecall QuizMode = "recall"
	// QuizModeProduction asks for the reply to a bot message.
	QuizModeProduction QuizMode = "production"
)

func (m QuizMode) String() string { return string(m) }

func (m QuizMode) IsValid() bool {
	switch m {
	case QuizModeRecognition, QuizModeRecall, QuizModeProduction:
		return true
	}
	return false
}

// EmptyTopicPolicy decides whether topics without messages survive parsing.
type EmptyTopicPolicy string

const (
	EmptyTopicDrop EmptyTopicPolicy = "drop"
	EmptyTopicKeep EmptyTopicPolicy = "keep"
)

func (p EmptyTopicPolicy) String() string { return string(p) }

func (p EmptyTopicPolicy) IsValid() bool {
	switch p {
	case EmptyTopicDrop, EmptyTopicKeep:
		return true
	}
	return false
}
