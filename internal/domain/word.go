package domain

// MiscNumber is the number reported for the set that collects entries without
// a usable number. A word tagged "etc" by the model lands in its own set.
const MiscNumber = "etc"

// WordEntry is one vocabulary item extracted from a scanned word list.
//
// Number is the set tag printed next to the word ("" when the model gave none).
// Meaning is opaque: it may hold "\n"-separated lines such as "[유] ..." or "[예] ..."
// and is stored exactly as extracted.
type WordEntry struct {
	Number  string `json:"number"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// WordSet is an ordered group of entries that share a set number.
type WordSet struct {
	Number string      `json:"number"`
	Name   string      `json:"name"`
	Misc   bool        `json:"misc,omitempty"`
	Words  []WordEntry `json:"words"`
}

// IsMisc reports whether the set is the fallback group for untagged entries.
func (s WordSet) IsMisc() bool {
	return s.Misc
}
