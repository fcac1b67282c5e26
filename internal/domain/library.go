package domain

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// SavedSet is a study set stored in a device's library.
type SavedSet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Words []SavedWord
}

// KnownCount returns the number of words marked as known.
func (s *SavedSet) KnownCount() int {
	n := 0
	for _, w := range s.Words {
		if w.Known {
			n++
		}
	}
	return n
}

// SavedWord is one card of a saved set. Position is zero-based and dense within the set.
type SavedWord struct {
	SetID    uuid.UUID
	Position int
	Word     string
	Meaning  string
	Known    bool
}

// SetSummary is the list view of a saved set.
type SetSummary struct {
	ID        uuid.UUID
	Name      string
	Known     int
	Total     int
	CreatedAt time.Time
}

// ScanImage is a photographed word list as sent by the client.
type ScanImage struct {
	MediaType string
	// Data is the base64-encoded image payload.
	Data string
	// Raw is the decoded payload.
	Raw []byte
}

// NewScanImage builds a ScanImage from decoded bytes.
func NewScanImage(mediaType string, raw []byte) ScanImage {
	return ScanImage{
		MediaType: mediaType,
		Data:      base64.StdEncoding.EncodeToString(raw),
		Raw:       raw,
	}
}
