package library

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// MaxNameLength is the maximum set name length in characters.
const MaxNameLength = 100

// WordInput is one card of a set being saved.
type WordInput struct {
	Word    string
	Meaning string
}

// SaveSetInput holds the parameters for saving a set.
type SaveSetInput struct {
	Name  string
	Words []WordInput
}

// Validate checks all fields and collects all errors.
func (i SaveSetInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)

	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "at least one word required"})
	}
	for idx, w := range i.Words {
		if strings.TrimSpace(w.Word) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("words[%d].word", idx), Message: "required"})
		}
		if strings.TrimSpace(w.Meaning) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("words[%d].meaning", idx), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameSetInput holds the parameters for renaming a set.
type RenameSetInput struct {
	SetID uuid.UUID
	Name  string
}

// Validate checks all fields and collects all errors.
func (i RenameSetInput) Validate() error {
	var errs []domain.FieldError
	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleKnownInput holds the parameters for flipping the known flag of a word.
type ToggleKnownInput struct {
	SetID    uuid.UUID
	Position int
}

// Validate checks all fields and collects all errors.
func (i ToggleKnownInput) Validate() error {
	var errs []domain.FieldError
	if i.SetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "set_id", Message: "required"})
	}
	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	clean := domain.CleanText(name)
	switch {
	case clean == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(clean) > MaxNameLength:
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)}}
	}
	return nil
}

// toSavedWords trims the cards; meanings keep their inner line breaks.
func toSavedWords(words []WordInput) []domain.SavedWord {
	out := make([]domain.SavedWord, len(words))
	for i, w := range words {
		out[i] = domain.SavedWord{
			Word:    strings.TrimSpace(w.Word),
			Meaning: strings.TrimSpace(w.Meaning),
		}
	}
	return out
}
