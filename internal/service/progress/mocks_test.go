package progress

import (
	"context"
	"sync"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

var _ Store = &storeMock{}

type storeMock struct {
	LoadRatingsFunc   func(ctx context.Context) (map[int]domain.RatingRecord, error)
	SaveRatingFunc    func(ctx context.Context, r domain.RatingRecord) error
	LoadMistakesFunc  func(ctx context.Context) ([]domain.MistakeRecord, error)
	AppendMistakeFunc func(ctx context.Context, m domain.MistakeRecord) error
	ClearAllFunc      func(ctx context.Context) error

	calls struct {
		LoadRatings []struct {
			Ctx context.Context
		}
		SaveRating []struct {
			Ctx context.Context
			R   domain.RatingRecord
		}
		LoadMistakes []struct {
			Ctx context.Context
		}
		AppendMistake []struct {
			Ctx context.Context
			M   domain.MistakeRecord
		}
		ClearAll []struct {
			Ctx context.Context
		}
	}
	lockLoadRatings   sync.RWMutex
	lockSaveRating    sync.RWMutex
	lockLoadMistakes  sync.RWMutex
	lockAppendMistake sync.RWMutex
	lockClearAll      sync.RWMutex
}

func (mock *storeMock) LoadRatings(ctx context.Context) (map[int]domain.RatingRecord, error) {
	if mock.LoadRatingsFunc == nil {
		panic("storeMock.LoadRatingsFunc: method is nil but Store.LoadRatings was just called")
	}
	mock.lockLoadRatings.Lock()
	mock.calls.LoadRatings = append(mock.calls.LoadRatings, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockLoadRatings.Unlock()
	return mock.LoadRatingsFunc(ctx)
}

func (mock *storeMock) LoadRatingsCalls() []struct{ Ctx context.Context } {
	mock.lockLoadRatings.RLock()
	calls := mock.calls.LoadRatings
	mock.lockLoadRatings.RUnlock()
	return calls
}

func (mock *storeMock) SaveRating(ctx context.Context, r domain.RatingRecord) error {
	if mock.SaveRatingFunc == nil {
		panic("storeMock.SaveRatingFunc: method is nil but Store.SaveRating was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.RatingRecord
	}{Ctx: ctx, R: r}
	mock.lockSaveRating.Lock()
	mock.calls.SaveRating = append(mock.calls.SaveRating, callInfo)
	mock.lockSaveRating.Unlock()
	return mock.SaveRatingFunc(ctx, r)
}

func (mock *storeMock) SaveRatingCalls() []struct {
	Ctx context.Context
	R   domain.RatingRecord
} {
	mock.lockSaveRating.RLock()
	calls := mock.calls.SaveRating
	mock.lockSaveRating.RUnlock()
	return calls
}

func (mock *storeMock) LoadMistakes(ctx context.Context) ([]domain.MistakeRecord, error) {
	if mock.LoadMistakesFunc == nil {
		panic("storeMock.LoadMistakesFunc: method is nil but Store.LoadMistakes was just called")
	}
	mock.lockLoadMistakes.Lock()
	mock.calls.LoadMistakes = append(mock.calls.LoadMistakes, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockLoadMistakes.Unlock()
	return mock.LoadMistakesFunc(ctx)
}

func (mock *storeMock) LoadMistakesCalls() []struct{ Ctx context.Context } {
	mock.lockLoadMistakes.RLock()
	calls := mock.calls.LoadMistakes
	mock.lockLoadMistakes.RUnlock()
	return calls
}

func (mock *storeMock) AppendMistake(ctx context.Context, m domain.MistakeRecord) error {
	if mock.AppendMistakeFunc == nil {
		panic("storeMock.AppendMistakeFunc: method is nil but Store.AppendMistake was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.MistakeRecord
	}{Ctx: ctx, M: m}
	mock.lockAppendMistake.Lock()
	mock.calls.AppendMistake = append(mock.calls.AppendMistake, callInfo)
	mock.lockAppendMistake.Unlock()
	return mock.AppendMistakeFunc(ctx, m)
}

func (mock *storeMock) AppendMistakeCalls() []struct {
	Ctx context.Context
	M   domain.MistakeRecord
} {
	mock.lockAppendMistake.RLock()
	calls := mock.calls.AppendMistake
	mock.lockAppendMistake.RUnlock()
	return calls
}

func (mock *storeMock) ClearAll(ctx context.Context) error {
	if mock.ClearAllFunc == nil {
		panic("storeMock.ClearAllFunc: method is nil but Store.ClearAll was just called")
	}
	mock.lockClearAll.Lock()
	mock.calls.ClearAll = append(mock.calls.ClearAll, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockClearAll.Unlock()
	return mock.ClearAllFunc(ctx)
}

func (mock *storeMock) ClearAllCalls() []struct{ Ctx context.Context } {
	mock.lockClearAll.RLock()
	calls := mock.calls.ClearAll
	mock.lockClearAll.RUnlock()
	return calls
}
