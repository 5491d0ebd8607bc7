// Package progress implements the progress store on PostgreSQL. Every row
// is scoped to one learner.
package progress

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/myburmese-backend/internal/adapter/postgres"
	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ratingRow struct {
	MessageID   int       `db:"message_id"`
	RatingID    int       `db:"rating_id"`
	RatingLabel string    `db:"rating_label"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type mistakeRow struct {
	ID            uuid.UUID `db:"id"`
	QuestionID    int       `db:"question_id"`
	WrongAnswerID int       `db:"wrong_answer_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	db      postgres.DB
	tx      *postgres.TxManager
	learner string
}

func New(db postgres.DB, learner string) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db), learner: learner}
}

// LoadRatings returns the learner's ratings keyed by message id. Rows with
// a rating outside the known levels are skipped.
func (r *Repo) LoadRatings(ctx context.Context) (map[int]domain.RatingRecord, error) {
	query, args, err := psql.
		Select("message_id", "rating_id", "rating_label", "updated_at").
		From("user_ratings").
		Where(sq.Eq{"learner": r.learner}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []ratingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "ratings", r.learner)
	}

	out := make(map[int]domain.RatingRecord, len(rows))
	for _, row := range rows {
		level := domain.RatingLevel(row.RatingID)
		if !level.IsValid() {
			continue
		}
		label := row.RatingLabel
		if label == "" {
			label = level.Label()
		}
		out[row.MessageID] = domain.RatingRecord{
			MessageID: row.MessageID,
			RatingID:  level,
			Label:     label,
			UpdatedAt: row.UpdatedAt,
		}
	}
	return out, nil
}

// SaveRating upserts the rating. An older write never replaces a newer one.
func (r *Repo) SaveRating(ctx context.Context, rec domain.RatingRecord) error {
	query, args, err := psql.
		Insert("user_ratings").
		Columns("learner", "message_id", "rating_id", "rating_label", "updated_at").
		Values(r.learner, rec.MessageID, int(rec.RatingID), rec.Label, rec.UpdatedAt).
		Suffix(`ON CONFLICT (learner, message_id) DO UPDATE SET
			rating_id = EXCLUDED.rating_id,
			rating_label = EXCLUDED.rating_label,
			updated_at = EXCLUDED.updated_at
		WHERE user_ratings.updated_at <= EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "rating", rec.MessageID)
	}
	return nil
}

// LoadMistakes returns the learner's mistakes in insertion order.
func (r *Repo) LoadMistakes(ctx context.Context) ([]domain.MistakeRecord, error) {
	query, args, err := psql.
		Select("id", "question_id", "wrong_answer_id", "created_at").
		From("wrong_answers").
		Where(sq.Eq{"learner": r.learner}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []mistakeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "mistakes", r.learner)
	}

	out := make([]domain.MistakeRecord, len(rows))
	for i, row := range rows {
		out[i] = domain.MistakeRecord{
			ID:                   row.ID,
			QuestionMessageID:    row.QuestionID,
			WrongAnswerMessageID: row.WrongAnswerID,
			Timestamp:            row.CreatedAt,
		}
	}
	return out, nil
}

func (r *Repo) AppendMistake(ctx context.Context, m domain.MistakeRecord) error {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := psql.
		Insert("wrong_answers").
		Columns("id", "learner", "question_id", "wrong_answer_id", "created_at").
		Values(id, r.learner, m.QuestionMessageID, m.WrongAnswerMessageID, m.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "mistake", id)
	}
	return nil
}

// ClearAll removes the learner's ratings and mistakes in one transaction.
func (r *Repo) ClearAll(ctx context.Context) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)
		for _, table := range []string{"user_ratings", "wrong_answers"} {
			query, args, err := psql.Delete(table).Where(sq.Eq{"learner": r.learner}).ToSql()
			if err != nil {
				return fmt.Errorf("build query: %w", err)
			}
			if _, err := q.Exec(ctx, query, args...); err != nil {
				return postgres.MapError(err, table, r.learner)
			}
		}
		return nil
	})
}
