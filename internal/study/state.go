// Package study holds the flashcard session state machine.
//
// State values are never mutated: Reduce returns a new State for every
// action, so a session can be stored, compared, or replayed freely.
package study

import (
	"math/rand/v2"
	"slices"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// State is a study session over the words of one set.
type State struct {
	// Order lists word positions in the order they are shown.
	Order    []int
	Index    int
	Flipped  bool
	Shuffled bool
}

// Current returns the position of the card being shown, or -1 for an empty session.
func (s State) Current() int {
	if s.Index < 0 || s.Index >= len(s.Order) {
		return -1
	}
	return s.Order[s.Index]
}

// Len returns the number of cards in the session.
func (s State) Len() int { return len(s.Order) }

// AtEnd reports whether the last card is shown.
func (s State) AtEnd() bool { return s.Index >= len(s.Order)-1 }

// Action is a session transition.
type Action interface {
	apply(State) State
}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// Start begins a session over n cards in set order.
type Start struct{ N int }

func (a Start) apply(State) State {
	return State{Order: identity(a.N)}
}

// Flip turns the current card over.
type Flip struct{}

func (Flip) apply(s State) State {
	if len(s.Order) == 0 {
		return s
	}
	next := s.clone()
	next.Flipped = !s.Flipped
	return next
}

// Next moves to the following card.
type Next struct{}

func (Next) apply(s State) State { return Jump{Index: s.Index + 1}.apply(s) }

// Prev moves to the preceding card.
type Prev struct{}

func (Prev) apply(s State) State { return Jump{Index: s.Index - 1}.apply(s) }

// Jump moves to the card at Index in the current order. Out of range is a no-op.
type Jump struct{ Index int }

func (a Jump) apply(s State) State {
	if a.Index < 0 || a.Index >= len(s.Order) || a.Index == s.Index {
		return s
	}
	next := s.clone()
	next.Index = a.Index
	next.Flipped = false
	return next
}

// Shuffle randomizes the order with a deterministic seed and restarts at the first card.
type Shuffle struct{ Seed uint64 }

func (a Shuffle) apply(s State) State {
	if len(s.Order) == 0 {
		return s
	}
	next := s.clone()
	r := rand.New(rand.NewPCG(a.Seed, a.Seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(next.Order), func(i, j int) {
		next.Order[i], next.Order[j] = next.Order[j], next.Order[i]
	})
	next.Index = 0
	next.Flipped = false
	next.Shuffled = true
	return next
}

// Unshuffle restores ascending position order, keeping the current card shown.
type Unshuffle struct{}

func (Unshuffle) apply(s State) State {
	if !s.Shuffled {
		return s
	}
	current := s.Current()
	next := s.clone()
	slices.Sort(next.Order)
	next.Shuffled = false
	next.Index = 0
	for i, p := range next.Order {
		if p == current {
			next.Index = i
			break
		}
	}
	return next
}

// Filter restricts the session to positions p with Keep[p] true (for example
// only words not yet known) and restarts at the first remaining card.
// Positions outside Keep are dropped.
type Filter struct{ Keep []bool }

func (a Filter) apply(s State) State {
	order := make([]int, 0, len(s.Order))
	for _, p := range s.Order {
		if p >= 0 && p < len(a.Keep) && a.Keep[p] {
			order = append(order, p)
		}
	}
	return State{Order: order, Shuffled: s.Shuffled}
}

func (s State) clone() State {
	next := s
	next.Order = append([]int(nil), s.Order...)
	return next
}

func identity(n int) []int {
	if n < 0 {
		n = 0
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// Unknown returns a Filter keep-mask selecting the words not yet marked known.
func Unknown(words []domain.SavedWord) []bool {
	keep := make([]bool, len(words))
	for _, w := range words {
		if w.Position >= 0 && w.Position < len(keep) {
			keep[w.Position] = !w.Known
		}
	}
	return keep
}
