// Package wordset groups extracted word entries into numbered study sets.
package wordset

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// Labeler renders set names.
type Labeler struct {
	// NumberFormat is a fmt format with a single %s for the set number.
	NumberFormat string
	// MiscLabel names the set of entries without a number.
	MiscLabel string
}

// DefaultLabeler produces "23번" style names and "기타" for untagged entries.
var DefaultLabeler = Labeler{NumberFormat: "%s번", MiscLabel: "기타"}

// Group partitions entries into sets using DefaultLabeler.
func Group(entries []domain.WordEntry) []domain.WordSet {
	return DefaultLabeler.Group(entries)
}

// Untagged reports whether an entry number puts the entry in the misc set.
// Any other number is a bucket key kept verbatim, so "007" and "7" are
// different sets.
func Untagged(number string) bool {
	return strings.TrimSpace(number) == ""
}

// Label returns the display name for a tagged bucket key.
func (l Labeler) Label(key string) string {
	if _, ok := numericValue(key); ok {
		return fmt.Sprintf(l.NumberFormat, key)
	}
	return key
}

const (
	rankNumeric = iota
	rankOther
	rankMisc
)

type bucket struct {
	key   string
	rank  int
	value float64
	words []domain.WordEntry
}

// Group partitions entries by number. Numeric sets come first in ascending
// order of their value, then non-numeric sets in order of first appearance,
// then the misc set. Sets with equal numeric value keep first-appearance order,
// and entries keep their input order inside each set.
func (l Labeler) Group(entries []domain.WordEntry) []domain.WordSet {
	buckets := make([]*bucket, 0)
	byKey := make(map[string]*bucket)
	var misc *bucket

	for _, e := range entries {
		if Untagged(e.Number) {
			if misc == nil {
				misc = &bucket{key: domain.MiscNumber, rank: rankMisc}
				buckets = append(buckets, misc)
			}
			misc.words = append(misc.words, e)
			continue
		}
		b, ok := byKey[e.Number]
		if !ok {
			b = newBucket(e.Number)
			byKey[e.Number] = b
			buckets = append(buckets, b)
		}
		b.words = append(b.words, e)
	}

	slices.SortStableFunc(buckets, func(a, b *bucket) int {
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}
		if a.rank == rankNumeric {
			return cmp.Compare(a.value, b.value)
		}
		return 0
	})

	sets := make([]domain.WordSet, len(buckets))
	for i, b := range buckets {
		name := l.MiscLabel
		if b.rank != rankMisc {
			name = l.Label(b.key)
		}
		sets[i] = domain.WordSet{
			Number: b.key,
			Name:   name,
			Misc:   b.rank == rankMisc,
			Words:  b.words,
		}
	}
	return sets
}

func newBucket(key string) *bucket {
	if v, ok := numericValue(key); ok {
		return &bucket{key: key, rank: rankNumeric, value: v}
	}
	return &bucket{key: key, rank: rankOther}
}

func numericValue(key string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
