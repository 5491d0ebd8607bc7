package quiz

import "github.com/heartmarshall/myburmese-backend/internal/domain"

// Question is one item of the traversal.
type Question struct {
	Message domain.Message
	TopicID int
	// Reply is the expected answer in production mode.
	Reply *domain.Message
}

// Answer returns the message that counts as the right answer.
func (q Question) Answer() domain.Message {
	if q.Reply != nil {
		return *q.Reply
	}
	return q.Message
}

// Option is one choice offered for the current question.
type Option struct {
	Message domain.Message
	// Wrong is set once the learner has picked this option and missed.
	Wrong   bool
	correct bool
}

func topicScope(t domain.Topic, mode domain.QuizMode) ([]Question, []domain.Message) {
	if mode == domain.QuizModeProduction {
		return replyPairs(t), usersOf(t.Messages)
	}
	qs := make([]Question, 0, len(t.Messages))
	for _, m := range t.Messages {
		qs = append(qs, Question{Message: m, TopicID: t.ID})
	}
	return qs, t.Messages
}

// globalScope uses the deduplicated index, except in production mode where
// reply pairing needs each topic's own sequence.
func globalScope(topics []domain.Topic, index []domain.IndexedMessage, mode domain.QuizMode) ([]Question, []domain.Message) {
	if mode == domain.QuizModeProduction {
		var (
			qs   []Question
			pool []domain.Message
		)
		for _, t := range topics {
			qs = append(qs, replyPairs(t)...)
			pool = append(pool, usersOf(t.Messages)...)
		}
		return qs, pool
	}

	qs := make([]Question, 0, len(index))
	pool := make([]domain.Message, 0, len(index))
	for _, im := range index {
		qs = append(qs, Question{Message: im.Message, TopicID: im.TopicID})
		pool = append(pool, im.Message)
	}
	return qs, pool
}

// replyPairs returns every bot message directly followed by a user message.
func replyPairs(t domain.Topic) []Question {
	var qs []Question
	for i := 0; i+1 < len(t.Messages); i++ {
		m, next := t.Messages[i], t.Messages[i+1]
		if m.Role == domain.RoleBot && next.Role == domain.RoleUser {
			qs = append(qs, Question{Message: m, TopicID: t.ID, Reply: &next})
		}
	}
	return qs
}

func usersOf(msgs []domain.Message) []domain.Message {
	var out []domain.Message
	for _, m := range msgs {
		if m.Role == domain.RoleUser {
			out = append(out, m)
		}
	}
	return out
}

// optionKey is the text the learner sees on an option. Two options with the
// same key would be indistinguishable.
func optionKey(mode domain.QuizMode, m domain.Message) string {
	if mode == domain.QuizModeRecognition {
		if k := domain.NormalizeAnswer(m.EnglishText); k != "" {
			return k
		}
	}
	return m.BurmeseText
}
