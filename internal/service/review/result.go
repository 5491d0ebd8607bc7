package review

import "github.com/heartmarshall/myburmese-backend/internal/domain"

// Item is one message with its progress.
type Item struct {
	Message  domain.IndexedMessage
	Rating   *domain.RatingRecord
	Mistakes int
}

// Summary is the headline of the review screen.
type Summary struct {
	Total    int
	Rated    int
	Unrated  int
	Mistakes int
	// ByRating counts messages per level; every level is present.
	ByRating map[domain.RatingLevel]int
}
