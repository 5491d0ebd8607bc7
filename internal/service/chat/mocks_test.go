package chat

import (
	"context"
	"sync"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/shuffle"
)

var _ topicReader = &topicReaderMock{}

type topicReaderMock struct {
	TopicFunc func(id int) (domain.Topic, bool)

	calls struct {
		Topic []struct {
			ID int
		}
	}
	lockTopic sync.RWMutex
}

func (mock *topicReaderMock) Topic(id int) (domain.Topic, bool) {
	if mock.TopicFunc == nil {
		panic("topicReaderMock.TopicFunc: method is nil but topicReader.Topic was just called")
	}
	mock.lockTopic.Lock()
	mock.calls.Topic = append(mock.calls.Topic, struct{ ID int }{ID: id})
	mock.lockTopic.Unlock()
	return mock.TopicFunc(id)
}

func (mock *topicReaderMock) TopicCalls() []struct{ ID int } {
	mock.lockTopic.RLock()
	calls := mock.calls.Topic
	mock.lockTopic.RUnlock()
	return calls
}

var _ mistakeRecorder = &mistakeRecorderMock{}

type mistakeRecorderMock struct {
	RecordMistakeFunc func(ctx context.Context, questionID, wrongAnswerID int) domain.MistakeRecord

	calls struct {
		RecordMistake []struct {
			Ctx           context.Context
			QuestionID    int
			WrongAnswerID int
		}
	}
	lockRecordMistake sync.RWMutex
}

func (mock *mistakeRecorderMock) RecordMistake(ctx context.Context, questionID, wrongAnswerID int) domain.MistakeRecord {
	if mock.RecordMistakeFunc == nil {
		panic("mistakeRecorderMock.RecordMistakeFunc: method is nil but mistakeRecorder.RecordMistake was just called")
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

func (mock *mistakeRecorderMock) RecordMistakeCalls() []struct {
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
