// Package document defines the JSON form of persisted progress shared by the
// file and Redis stores. Readers ignore unknown fields and there is no
// version marker, so fields may only be added.
package document

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// Rating is the latest rating of one message.
type Rating struct {
	MessageID   int       `json:"message_id" jsonschema:"required,minimum=1"`
	RatingID    int       `json:"rating_id" jsonschema:"required,minimum=1,maximum=5"`
	RatingLabel string    `json:"rating_label,omitempty"`
	UpdatedAt   time.Time `json:"updated_at" jsonschema:"required"`
}

// Mistake is one wrong answer.
type Mistake struct {
	ID            string    `json:"id,omitempty" jsonschema:"format=uuid"`
	QuestionID    int       `json:"question_id" jsonschema:"required"`
	WrongAnswerID int       `json:"wrong_answer_id" jsonschema:"required"`
	CreatedAt     time.Time `json:"created_at" jsonschema:"required"`
}

func FromRating(r domain.RatingRecord) Rating {
	return Rating{
		MessageID:   r.MessageID,
		RatingID:    int(r.RatingID),
		RatingLabel: r.Label,
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// ToRating rejects documents whose rating is outside the known levels.
func (d Rating) ToRating() (domain.RatingRecord, error) {
	level := domain.RatingLevel(d.RatingID)
	if !level.IsValid() {
		return domain.RatingRecord{}, fmt.Errorf("message %d: rating %d: %w", d.MessageID, d.RatingID, domain.ErrValidation)
	}
	label := d.RatingLabel
	if label == "" {
		label = level.Label()
	}
	return domain.RatingRecord{
		MessageID: d.MessageID,
		RatingID:  level,
		Label:     label,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func FromMistake(m domain.MistakeRecord) Mistake {
	d := Mistake{
		QuestionID:    m.QuestionMessageID,
		WrongAnswerID: m.WrongAnswerMessageID,
		CreatedAt:     m.Timestamp.UTC(),
	}
	if m.ID != uuid.Nil {
		d.ID = m.ID.String()
	}
	return d
}

// ToMistake keeps a nil id when the document has none or an unparsable one.
func (d Mistake) ToMistake() domain.MistakeRecord {
	id, _ := uuid.Parse(d.ID)
	return domain.MistakeRecord{
		ID:                   id,
		QuestionMessageID:    d.QuestionID,
		WrongAnswerMessageID: d.WrongAnswerID,
		Timestamp:            d.CreatedAt,
	}
}

// Ratings is the whole ratings document, keyed by message id.
type Ratings map[string]Rating

// DecodeRatings parses a ratings document. Entries that fail to convert are
// returned in skipped instead of failing the whole load.
func DecodeRatings(data []byte) (out map[int]domain.RatingRecord, skipped []string, err error) {
	out = make(map[int]domain.RatingRecord)
	if len(data) == 0 {
		return out, nil, nil
	}

	var doc Ratings
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode ratings: %w", err)
	}
	for key, d := range doc {
		if d.MessageID == 0 {
			d.MessageID, _ = strconv.Atoi(key)
		}
		r, err := d.ToRating()
		if err != nil || r.MessageID <= 0 {
			skipped = append(skipped, key)
			continue
		}
		out[r.MessageID] = r
	}
	sort.Strings(skipped)
	return out, skipped, nil
}

// EncodeRatings renders ratings as an indented document.
func EncodeRatings(ratings map[int]domain.RatingRecord) ([]byte, error) {
	doc := make(Ratings, len(ratings))
	for id, r := range ratings {
		doc[strconv.Itoa(id)] = FromRating(r)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode ratings: %w", err)
	}
	return data, nil
}

// Schema returns the JSON schema of a persisted document kind: "rating" or
// "mistake".
func Schema(kind string) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	switch kind {
	case "rating":
		return reflector.Reflect(&Rating{}), nil
	case "mistake":
		return reflector.Reflect(&Mistake{}), nil
	default:
		return nil, fmt.Errorf("schema %q: %w", kind, domain.ErrNotFound)
	}
}

// SchemaKinds lists the kinds accepted by Schema.
func SchemaKinds() []string { return []string{"rating", "mistake"} }
