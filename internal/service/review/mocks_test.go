package review

import (
	"sync"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

var _ catalogReader = &catalogReaderMock{}

type catalogReaderMock struct {
	MessagesFunc func() []domain.IndexedMessage

	calls struct {
		Messages []struct{}
	}
	lockMessages sync.RWMutex
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

var _ progressReader = &progressReaderMock{}

type progressReaderMock struct {
	RatingsFunc  func() map[int]domain.RatingRecord
	MistakesFunc func() []domain.MistakeRecord

	calls struct {
		Ratings  []struct{}
		Mistakes []struct{}
	}
	lockRatings  sync.RWMutex
	lockMistakes sync.RWMutex
}

func (mock *progressReaderMock) Ratings() map[int]domain.RatingRecord {
	if mock.RatingsFunc == nil {
		panic("progressReaderMock.RatingsFunc: method is nil but progressReader.Ratings was just called")
	}
	mock.lockRatings.Lock()
	mock.calls.Ratings = append(mock.calls.Ratings, struct{}{})
	mock.lockRatings.Unlock()
	return mock.RatingsFunc()
}

func (mock *progressReaderMock) RatingsCalls() []struct{} {
	mock.lockRatings.RLock()
	calls := mock.calls.Ratings
	mock.lockRatings.RUnlock()
	return calls
}

func (mock *progressReaderMock) Mistakes() []domain.MistakeRecord {
	if mock.MistakesFunc == nil {
		panic("progressReaderMock.MistakesFunc: method is nil but progressReader.Mistakes was just called")
	}
	mock.lockMistakes.Lock()
	mock.calls.Mistakes = append(mock.calls.Mistakes, struct{}{})
	mock.lockMistakes.Unlock()
	return mock.MistakesFunc()
}

func (mock *progressReaderMock) MistakesCalls() []struct{} {
	mock.lockMistakes.RLock()
	calls := mock.calls.Mistakes
	mock.lockMistakes.RUnlock()
	return calls
}
