package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNoJSON means the text held no candidate JSON value
var ErrNoJSON = errors.New("llm: no JSON found in response")

// Extraction is the result of pulling a JSON value out of free-form model
// output. It never panics; a failed extraction carries Err and keeps Raw.
type Extraction struct {
	Raw  string
	JSON string
	Err  error
}

// OK reports whether a syntactically valid JSON value was found
func (e Extraction) OK() bool { return e.Err == nil }

// Decode unmarshals the extracted value into v
func (e Extraction) Decode(v any) error {
	if e.Err != nil {
		return e.Err
	}
	if err := json.Unmarshal([]byte(e.JSON), v); err != nil {
		return fmt.Errorf("llm: decode extracted JSON: %w", err)
	}
	return nil
}

// StripCodeFences removes a surrounding markdown code fence, if any
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// language tag on the opening fence, with or without a newline after it
	s = strings.TrimLeftFunc(s, unicode.IsLetter)
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Whole treats the fence-stripped text as a single JSON value
func Whole(text string) Extraction {
	return validated(text, StripCodeFences(text))
}

// FirstArray extracts the span from the first '[' to the last ']'
func FirstArray(text string) Extraction {
	return span(text, '[', ']')
}

// FirstObject extracts the span from the first '{' to the last '}'
func FirstObject(text string) Extraction {
	return span(text, '{', '}')
}

func span(text string, open, close byte) Extraction {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end <= start {
		return Extraction{Raw: text, Err: ErrNoJSON}
	}
	return validated(text, text[start:end+1])
}

func validated(raw, candidate string) Extraction {
	if candidate == "" {
		return Extraction{Raw: raw, Err: ErrNoJSON}
	}
	if !json.Valid([]byte(candidate)) {
		return Extraction{Raw: raw, JSON: candidate, Err: fmt.Errorf("llm: invalid JSON: %w", ErrNoJSON)}
	}
	return Extraction{Raw: raw, JSON: candidate}
}
