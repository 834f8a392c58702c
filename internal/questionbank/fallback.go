package questionbank

import (
	"slices"
	"strings"

	"pharmacademy/internal/model"
)

// Fallback returns the first count questions of the first static table key
// that the category contains, compared case-insensitively.
func Fallback(category string, count int) ([]model.Question, error) {
	needle := strings.ToLower(category)
	for _, entry := range fallbackTable {
		if !strings.Contains(needle, strings.ToLower(entry.key)) {
			continue
		}
		n := min(count, len(entry.questions))
		if n <= 0 {
			return nil, ErrNoQuestions
		}
		return slices.Clone(entry.questions[:n]), nil
	}
	return nil, ErrNoQuestions
}
