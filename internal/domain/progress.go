package domain

import (
	"time"

	"github.com/google/uuid"
)

// RatingLevel is the learner's self-assessment of a message, 1 (known) to
// 5 (unknown).
type RatingLevel int

const (
	RatingMonthlyReview RatingLevel = iota + 1
	RatingCannotConverse
	RatingCannotWrite
	RatingCannotUse
	RatingUnknown
)

type ratingInfo struct {
	emoji       string
	label       string
	description string
	interval    int
}

var ratingTable = map[RatingLevel]ratingInfo{
	RatingMonthlyReview:  {"✓", "Monthly Review", "You know this well", 30},
	RatingCannotConverse: {"💬", "Can't use in conversation", "Understand but can't speak", 7},
	RatingCannotWrite:    {"✍", "Can't write in Burmese", "Know meaning but can't write", 3},
	RatingCannotUse:      {"🤔", "Understand but can't use", "Don't know when to use", 1},
	RatingUnknown:        {"❌", "Don't know at all", "Need to learn from scratch", 0},
}

// RatingLevels lists every level in ordinal order.
func RatingLevels() []RatingLevel {
	return []RatingLevel{
		RatingMonthlyReview, RatingCannotConverse, RatingCannotWrite,
		RatingCannotUse, RatingUnknown,
	}
}

func (r RatingLevel) IsValid() bool {
	_, ok := ratingTable[r]
	return ok
}

func (r RatingLevel) String() string { return r.Label() }

func (r RatingLevel) Label() string       { return ratingTable[r].label }
func (r RatingLevel) Emoji() string       { return ratingTable[r].emoji }
func (r RatingLevel) Description() string { return ratingTable[r].description }

// Interval is the review interval in days.
func (r RatingLevel) Interval() time.Duration {
	return time.Duration(ratingTable[r].interval) * 24 * time.Hour
}

// IntervalDays is the review interval in whole days.
func (r RatingLevel) IntervalDays() int { return ratingTable[r].interval }

// RatingRecord is the latest rating of one message.
type RatingRecord struct {
	MessageID int
	RatingID  RatingLevel
	Label     string
	UpdatedAt time.Time
}

// DueAt returns when the message should be reviewed again.
func (r RatingRecord) DueAt() time.Time {
	return r.UpdatedAt.Add(r.RatingID.Interval())
}

// MistakeRecord notes one wrong answer. Records are append-only.
type MistakeRecord struct {
	ID                   uuid.UUID
	QuestionMessageID    int
	WrongAnswerMessageID int
	Timestamp            time.Time
}
