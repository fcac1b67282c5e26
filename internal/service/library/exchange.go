package library

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// ImportMode selects how an import treats the existing library.
type ImportMode string

const (
	// ImportMerge appends the imported sets.
	ImportMerge ImportMode = "merge"
	// ImportReplace deletes the library before importing.
	ImportReplace ImportMode = "replace"
)

// ParseImportMode parses a mode name; empty means merge.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ImportMerge:
		return ImportMerge, nil
	case ImportReplace:
		return ImportReplace, nil
	}
	return "", domain.NewValidationError("mode", fmt.Sprintf("unknown import mode %q", s))
}

// FileSet is one set of the export file. The layout matches what the web
// client keeps in local storage, so files move between the two freely.
type FileSet struct {
	Name      string     `json:"name"`
	Words     []FileWord `json:"words"`
	CreatedAt int64      `json:"createdAt"`
}

// FileWord is one card of a FileSet.
type FileWord struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Known   bool   `json:"known"`
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Skipped  int
	// SkippedWords counts invalid cards dropped from otherwise valid sets.
	SkippedWords int
	// Removed is the number of sets deleted by a replace import.
	Removed int
	Errors  []ImportError
}

// ImportError describes a set that was skipped.
type ImportError struct {
	Index  int
	Name   string
	Reason string
}

func toFileSet(set domain.SavedSet) FileSet {
	words := make([]FileWord, len(set.Words))
	for i, w := range set.Words {
		words[i] = FileWord{Word: w.Word, Meaning: w.Meaning, Known: w.Known}
	}
	return FileSet{
		Name:      set.Name,
		Words:     words,
		CreatedAt: set.CreatedAt.UnixMilli(),
	}
}

// fromFileSet cleans one decoded set. It returns the usable words, the number
// of dropped words and a reason when the whole set has to be skipped.
func fromFileSet(fs FileSet, maxWords int) (name string, words []domain.SavedWord, dropped int, reason string) {
	name = domain.CleanText(fs.Name)
	if name == "" {
		return "", nil, 0, "missing name"
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}

	for _, w := range fs.Words {
		word := strings.TrimSpace(w.Word)
		meaning := strings.TrimSpace(w.Meaning)
		if word == "" || meaning == "" {
			dropped++
			continue
		}
		words = append(words, domain.SavedWord{Word: word, Meaning: meaning, Known: w.Known})
	}

	switch {
	case len(words) == 0:
		return "", nil, dropped, "no valid words"
	case len(words) > maxWords:
		return "", nil, dropped, fmt.Sprintf("more than %d words", maxWords)
	}
	return name, words, dropped, ""
}

// decodeFile splits the file into raw set objects so one broken set does not
// reject the whole file.
func decodeFile(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, domain.NewValidationError("file", "expected a JSON array of sets")
	}
	return items, nil
}

func createdAt(ms int64, fallback time.Time) time.Time {
	if ms <= 0 {
		return fallback
	}
	return time.UnixMilli(ms).UTC()
}
