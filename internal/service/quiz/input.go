package quiz

import "github.com/heartmarshall/myburmese-backend/internal/domain"

// StartInput selects the scope and difficulty of a session.
type StartInput struct {
	// TopicID 0 means every topic; such sessions loop instead of completing.
	TopicID int
	Mode    domain.QuizMode
}

// Validate checks all fields and collects all errors.
func (i StartInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID < 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must be >= 0"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be recognition, recall or production"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
