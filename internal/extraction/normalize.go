package extraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// ErrMalformedPayload is returned by Parse when no JSON array could be decoded
// from the model output.
var ErrMalformedPayload = errors.New("malformed extraction payload")

// fencePattern matches a fenced code block. An optional language tag may
// follow the opening fence directly.
var fencePattern = regexp.MustCompile("(?s)```[A-Za-z0-9_+.-]*[ \\t]*\\r?\\n?(.*?)```")

// Result is the outcome of a successful Parse.
type Result struct {
	// Entries is never nil.
	Entries []domain.WordEntry
	// Total is the number of elements in the decoded array.
	Total int
	// Dropped is the number of elements that were not valid entries.
	Dropped int
}

// Normalize extracts word entries from raw model output. Payload problems are
// not errors here: they yield an empty, non-nil slice.
func Normalize(raw string) []domain.WordEntry {
	res, _ := Parse(raw)
	return res.Entries
}

// Parse extracts word entries from raw model output. On failure it returns an
// error wrapping ErrMalformedPayload together with an empty Result.
func Parse(raw string) (Result, error) {
	empty := Result{Entries: []domain.WordEntry{}}

	candidate := Candidate(raw)

	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return empty, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return empty, fmt.Errorf("%w: trailing data after array", ErrMalformedPayload)
	}

	items, ok := decoded.([]any)
	if !ok {
		return empty, fmt.Errorf("%w: top-level value is %T, not an array", ErrMalformedPayload, decoded)
	}

	entries := make([]domain.WordEntry, 0, len(items))
	for _, item := range items {
		entry, ok := toEntry(item)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	return Result{
		Entries: entries,
		Total:   len(items),
		Dropped: len(items) - len(entries),
	}, nil
}

// Candidate returns the substring of raw that Parse will try to decode: the
// '['...']' span of the first fenced block that holds one, or else the span
// from the first '[' to the last ']' of the whole reply. Without any span the
// first fenced block (or the trimmed reply) is returned as is.
func Candidate(raw string) string {
	text := strings.TrimSpace(raw)

	fences := fencePattern.FindAllStringSubmatch(text, -1)
	for _, m := range fences {
		if span, ok := bracketSpan(m[1]); ok {
			return span
		}
	}
	if span, ok := bracketSpan(text); ok {
		return span
	}
	if len(fences) > 0 {
		return strings.TrimSpace(fences[0][1])
	}
	return text
}

func bracketSpan(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func toEntry(item any) (domain.WordEntry, bool) {
	rec, ok := item.(map[string]any)
	if !ok {
		return domain.WordEntry{}, false
	}

	word, ok := coerceText(rec["word"])
	if !ok || word == "" {
		return domain.WordEntry{}, false
	}
	meaning, ok := coerceText(rec["meaning"])
	if !ok || meaning == "" {
		return domain.WordEntry{}, false
	}

	// A number that cannot be read as text degrades to "no number".
	number, _ := coerceText(rec["number"])

	return domain.WordEntry{
		Number:  number,
		Word:    word,
		Meaning: meaning,
	}, true
}

// coerceText converts a decoded JSON scalar to its trimmed string form.
// Objects, arrays, null and missing values are not coercible.
func coerceText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return canonicalNumber(t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// canonicalNumber formats a JSON number by value, so 22, 22.0 and 2.2e1 all
// read "22". Literals outside the float64 range are kept verbatim.
func canonicalNumber(n json.Number) string {
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsInf(v, 0) {
		return n.String()
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
