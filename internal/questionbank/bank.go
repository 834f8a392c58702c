// Package questionbank holds the pre-authored quiz questions: the bank
// loaded once at start-up and the static fallback table.
package questionbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"pharmacademy/internal/model"
)

// ErrNoQuestions is returned when no source can supply questions
var ErrNoQuestions = errors.New("questionbank: no questions available")

// Bank maps category -> difficulty key -> questions.
// It is read-only after construction and safe for concurrent use.
type Bank struct {
	buckets map[string]map[string][]model.Question
	size    int
}

// New validates data and returns a bank holding its own copy
func New(data map[string]map[string][]model.Question) (*Bank, error) {
	b := &Bank{buckets: make(map[string]map[string][]model.Question, len(data))}
	for category, levels := range data {
		if strings.TrimSpace(category) == "" {
			return nil, errors.New("questionbank: empty category name")
		}
		copied := make(map[string][]model.Question, len(levels))
		for key, questions := range levels {
			if err := model.ValidateQuestions(questions); err != nil {
				return nil, fmt.Errorf("questionbank: %s/%s: %w", category, key, err)
			}
			copied[key] = slices.Clone(questions)
			b.size += len(questions)
		}
		b.buckets[category] = copied
	}
	return b, nil
}

// Empty returns a bank with no questions
func Empty() *Bank {
	return &Bank{buckets: map[string]map[string][]model.Question{}}
}

// Parse reads a bank fixture. The document may be the category map itself
// or wrap it under a top-level "quizData" key.
func Parse(raw []byte) (*Bank, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("questionbank: parse: %w", err)
	}
	if wrapped, ok := top["quizData"]; ok {
		raw = wrapped
	}

	var data map[string]map[string][]model.Question
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("questionbank: parse: %w", err)
	}
	return New(data)
}

// LoadFile reads and validates the fixture at path
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questionbank: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Size is the total number of questions across all buckets
func (b *Bank) Size() int { return b.size }

// Categories lists the bank's categories in sorted order
func (b *Bank) Categories() []string {
	keys := lo.Keys(b.buckets)
	slices.Sort(keys)
	return keys
}

// Available reports how many questions a bucket holds
func (b *Bank) Available(category, key string) int {
	return len(b.buckets[category][key])
}

// Sample returns min(count, available) questions from the bucket, drawn
// uniformly at random without replacement.
func (b *Bank) Sample(category, key string, count int) []model.Question {
	bucket := b.buckets[category][key]
	if len(bucket) == 0 || count <= 0 {
		return nil
	}
	return lo.Samples(bucket, count)
}

// Each calls fn for every non-empty bucket in category/key order
func (b *Bank) Each(fn func(category, key string, questions []model.Question)) {
	for _, category := range b.Categories() {
		levels := b.buckets[category]
		keys := lo.Keys(levels)
		slices.Sort(keys)
		for _, key := range keys {
			if len(levels[key]) > 0 {
				fn(category, key, slices.Clone(levels[key]))
			}
		}
	}
}
