package quiz

import (
	"context"
	"sync"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/shuffle"
)

var _ catalogReader = &catalogReaderMock{}

type catalogReaderMock struct {
	TopicFunc    func(id int) (domain.Topic, bool)
	TopicsFunc   func() []domain.Topic
	MessagesFunc func() []domain.IndexedMessage

	calls struct {
		Topic []struct {
			ID int
		}
		Topics   []struct{}
		Messages []struct{}
	}
	lockTopic    sync.RWMutex
	lockTopics   sync.RWMutex
	lockMessages sync.RWMutex
}

func (mock *catalogReaderMock) Topic(id int) (domain.Topic, bool) {
	if mock.TopicFunc == nil {
		panic("catalogReaderMock.TopicFunc: method is nil but catalogReader.Topic was just called")
	}
	mock.lockTopic.Lock()
	mock.calls.Topic = append(mock.calls.Topic, struct{ ID int }{ID: id})
	mock.lockTopic.Unlock()
	return mock.TopicFunc(id)
}

func (mock *catalogReaderMock) TopicCalls() []struct{ ID int } {
	mock.lockTopic.RLock()
	calls := mock.calls.Topic
	mock.lockTopic.RUnlock()
	return calls
}

func (mock *catalogReaderMock) Topics() []domain.Topic {
	if mock.TopicsFunc == nil {
		panic("catalogReaderMock.TopicsFunc: method is nil but catalogReader.Topics was just called")
	}
	mock.lockTopics.Lock()
	mock.calls.Topics = append(mock.calls.Topics, struct{}{})
	mock.lockTopics.Unlock()
	return mock.TopicsFunc()
}

func (mock *catalogReaderMock) TopicsCalls() []struct{} {
	mock.lockTopics.RLock()
	calls := mock.calls.Topics
	mock.lockTopics.RUnlock()
	return calls
}

func (mock *catalogReaderMock) Messages() []domain.IndexedMessage {
	if mock.MessagesFunc == nil {
		panic("catalogReaderMock.MessagesFunc: method is nil but catalogReader.Messages was just called")
	}
	mock.lockMessages.Lock()
	mock.calls.Messages = append(mock.calls.Messages, struct{}{})
	mock.lockMessages.Unlock()
	return mock.MessagesFunc()
}

func (mock *catalogReaderMock) MessagesCalls() []struct{} {
	mock.lockMessages.RLock()
	calls := mock.calls.Messages
	mock.lockMessages.RUnlock()
	return calls
}

var _ progressRecorder = &progressRecorderMock{}

type progressRecorderMock struct {
	RecordRatingFunc  func(ctx context.Context, messageID int, level domain.RatingLevel) domain.RatingRecord
	RecordMistakeFunc func(ctx context.Context, questionID, wrongAnswerID int) domain.MistakeRecord

	calls struct {
		RecordRating []struct {
			Ctx       context.Context
			MessageID int
			Level     domain.RatingLevel
		}
		RecordMistake []struct {
			Ctx           context.Context
			QuestionID    int
			WrongAnswerID int
		}
	}
	lockRecordRating  sync.RWMutex
	lockRecordMistake sync.RWMutex
}

func (mock *progressRecorderMock) RecordRating(ctx context.Context, messageID int, level domain.RatingLevel) domain.RatingRecord {
	if mock.RecordRatingFunc == nil {
		panic("progressRecorderMock.RecordRatingFunc: method is nil but progressRecorder.RecordRating was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MessageID int
		Level     domain.RatingLevel
	}{Ctx: ctx, MessageID: messageID, Level: level}
	mock.lockRecordRating.Lock()
	mock.calls.RecordRating = append(mock.calls.RecordRating, callInfo)
	mock.lockRecordRating.Unlock()
	return mock.RecordRatingFunc(ctx, messageID, level)
}

func (mock *progressRecorderMock) RecordRatingCalls() []struct {
	Ctx       context.Context
	MessageID int
	Level     domain.RatingLevel
} {
	mock.lockRecordRating.RLock()
	calls := mock.calls.RecordRating
	mock.lockRecordRating.RUnlock()
	return calls
}

func (mock *progressRecorderMock) RecordMistake(ctx context.Context, questionID, wrongAnswerID int) domain.MistakeRecord {
	if mock.RecordMistakeFunc == nil {
		panic("progressRecorderMock.RecordMistakeFunc: method is nil but progressRecorder.RecordMistake was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		QuestionID    int
		WrongAnswerID int
	}{Ctx: ctx, QuestionID: questionID, WrongAnswerID: wrongAnswerID}
	mock.lockRecordMistake.Lock()
	mock.calls.RecordMistake = append(mock.calls.RecordMistake, callInfo)
	mock.lockRecordMistake.Unlock()
	return mock.RecordMistakeFunc(ctx, questionID, wrongAnswerID)
}

func (mock *progressRecorderMock) RecordMistakeCalls() []struct {
	Ctx           context.Context
	QuestionID    int
	WrongAnswerID int
} {
	mock.lockRecordMistake.RLock()
	calls := mock.calls.RecordMistake
	mock.lockRecordMistake.RUnlock()
	return calls
}

var _ shufflerSource = &shufflerSourceMock{}

type shufflerSourceMock struct {
	NextFunc func() shuffle.Shuffler

	calls struct {
		Next []struct{}
	}
	lockNext sync.RWMutex
}

func (mock *shufflerSourceMock) Next() shuffle.Shuffler {
	if mock.NextFunc == nil {
		panic("shufflerSourceMock.NextFunc: method is nil but shufflerSource.Next was just called")
	}
	mock.lockNext.Lock()
	mock.calls.Next = append(mock.calls.Next, struct{}{})
	mock.lockNext.Unlock()
	return mock.NextFunc()
}

func (mock *shufflerSourceMock) NextCalls() []struct{} {
	mock.lockNext.RLock()
	calls := mock.calls.Next
	mock.lockNext.RUnlock()
	return calls
}
