package dataset

import (
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/myburmese-backend/internal/domain"
)

// ParseConversations reads the conversation sheet. Columns: "Sr. No.",
// Tag, Burmese, English. A missing or non-numeric sequence number falls
// back to the 1-based data row position. Rows whose tag is empty or
// unknown are dropped.
func ParseConversations(r io.Reader) ([]domain.ConversationRow, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}

	var out []domain.ConversationRow
	for i, rec := range t.rows {
		tag, ok := domain.ParseRowTag(t.get(rec, "Tag"))
		if !ok {
			continue
		}

		seq := leadingInt(t.get(rec, "Sr. No."))
		if seq <= 0 {
			seq = i + 1
		}

		out = append(out, domain.ConversationRow{
			SequenceNo:  seq,
			Tag:         tag,
			BurmeseText: t.get(rec, "Burmese"),
			EnglishText: t.get(rec, "English"),
		})
	}
	return out, nil
}

// leadingInt parses the integer prefix of s ("12", "12.0", "12a" all give
// 12). It returns 0 when s has no digits.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
