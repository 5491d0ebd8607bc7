// Package storetest holds the behaviour every progress store must share.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/service/progress"
)

// Run exercises a fresh, empty store produced by newStore.
func Run(t *testing.T, newStore func(t *testing.T) progress.Store) {
	t.Helper()

	at := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		ratings, err := s.LoadRatings(ctx)
		require.NoError(t, err)
		assert.Empty(t, ratings)

		mistakes, err := s.LoadMistakes(ctx)
		require.NoError(t, err)
		assert.Empty(t, mistakes)
	})

	t.Run("rating last write wins", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SaveRating(ctx, rating(4, domain.RatingUnknown, at)))
		require.NoError(t, s.SaveRating(ctx, rating(4, domain.RatingCannotWrite, at.Add(time.Minute))))
		require.NoError(t, s.SaveRating(ctx, rating(9, domain.RatingMonthlyReview, at)))

		ratings, err := s.LoadRatings(ctx)
		require.NoError(t, err)
		require.Len(t, ratings, 2)
		assert.Equal(t, domain.RatingCannotWrite, ratings[4].RatingID)
		assert.Equal(t, domain.RatingCannotWrite.Label(), ratings[4].Label)
		assert.True(t, ratings[4].UpdatedAt.Equal(at.Add(time.Minute)), "updated_at = %s", ratings[4].UpdatedAt)
		assert.Equal(t, domain.RatingMonthlyReview, ratings[9].RatingID)
	})

	t.Run("mistakes append in order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		var want []domain.MistakeRecord
		for i := range 3 {
			m := domain.MistakeRecord{
				ID:                   uuid.New(),
				QuestionMessageID:    1,
				WrongAnswerMessageID: 10 + i,
				Timestamp:            at.Add(time.Duration(i) * time.Second),
			}
			want = append(want, m)
			require.NoError(t, s.AppendMistake(ctx, m))
		}

		got, err := s.LoadMistakes(ctx)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].ID, got[i].ID)
			assert.Equal(t, want[i].QuestionMessageID, got[i].QuestionMessageID)
			assert.Equal(t, want[i].WrongAnswerMessageID, got[i].WrongAnswerMessageID)
			assert.True(t, want[i].Timestamp.Equal(got[i].Timestamp))
		}
	})

	t.Run("clear all", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SaveRating(ctx, rating(1, domain.RatingUnknown, at)))
		require.NoError(t, s.AppendMistake(ctx, domain.MistakeRecord{ID: uuid.New(), QuestionMessageID: 1, WrongAnswerMessageID: 2, Timestamp: at}))
		require.NoError(t, s.ClearAll(ctx))
		require.NoError(t, s.ClearAll(ctx))

		ratings, err := s.LoadRatings(ctx)
		require.NoError(t, err)
		assert.Empty(t, ratings)
		mistakes, err := s.LoadMistakes(ctx)
		require.NoError(t, err)
		assert.Empty(t, mistakes)
	})
}

func rating(id int, level domain.RatingLevel, at time.Time) domain.RatingRecord {
	return domain.RatingRecord{MessageID: id, RatingID: level, Label: level.Label(), UpdatedAt: at}
}
