package review

import "github.com/heartmarshall/myburmese-backend/internal/domain"

// ListInput filters the message list. The zero value lists everything.
type ListInput struct {
	Unrated bool
	Rating  domain.RatingLevel
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Rating != 0 && !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.Unrated && i.Rating != 0 {
		errs = append(errs, domain.FieldError{Field: "unrated", Message: "cannot be combined with rating"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
