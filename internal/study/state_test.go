package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

func run(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func TestStart(t *testing.T) {
	t.Parallel()

	s := Reduce(State{}, Start{N: 3})

	assert.Equal(t, []int{0, 1, 2}, s.Order)
	assert.Equal(t, 0, s.Current())
	assert.False(t, s.Flipped)
	assert.Equal(t, 3, s.Len())
}

func TestStart_Empty(t *testing.T) {
	t.Parallel()

	s := run(State{}, Start{N: 0}, Flip{}, Next{})

	assert.Equal(t, -1, s.Current())
	assert.False(t, s.Flipped)
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	s := run(State{}, Start{N: 3}, Flip{})
	require.True(t, s.Flipped)

	s = Reduce(s, Next{})
	assert.Equal(t, 1, s.Current())
	assert.False(t, s.Flipped, "moving to another card shows its front")

	s = run(s, Next{}, Next{})
	assert.Equal(t, 2, s.Current(), "next on the last card is a no-op")
	assert.True(t, s.AtEnd())

	s = run(s, Prev{}, Prev{}, Prev{})
	assert.Equal(t, 0, s.Current(), "prev on the first card is a no-op")
}

func TestJump_OutOfRangeIsNoop(t *testing.T) {
	t.Parallel()

	s := run(State{}, Start{N: 2}, Flip{})

	got := Reduce(s, Jump{Index: 5})
	assert.Equal(t, s, got)

	got = Reduce(s, Jump{Index: -1})
	assert.Equal(t, s, got)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := Reduce(State{}, Start{N: 5})
	before := append([]int(nil), s.Order...)

	_ = run(s, Shuffle{Seed: 42}, Next{}, Flip{})

	assert.Equal(t, before, s.Order)
	assert.Equal(t, 0, s.Index)
	assert.False(t, s.Flipped)
}

func TestShuffle_DeterministicAndComplete(t *testing.T) {
	t.Parallel()

	base := run(State{}, Start{N: 20}, Next{})

	a := Reduce(base, Shuffle{Seed: 7})
	b := Reduce(base, Shuffle{Seed: 7})

	assert.Equal(t, a.Order, b.Order)
	assert.True(t, a.Shuffled)
	assert.Equal(t, 0, a.Index)
	assert.ElementsMatch(t, base.Order, a.Order)
}

func TestUnshuffle_KeepsCurrentCard(t *testing.T) {
	t.Parallel()

	s := run(State{}, Start{N: 10}, Shuffle{Seed: 3}, Next{}, Next{})
	current := s.Current()

	u := Reduce(s, Unshuffle{})

	assert.False(t, u.Shuffled)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, u.Order)
	assert.Equal(t, current, u.Current())
}

func TestUnshuffle_NotShuffledIsNoop(t *testing.T) {
	t.Parallel()

	s := run(State{}, Start{N: 3}, Next{})
	assert.Equal(t, s, Reduce(s, Unshuffle{}))
}

func TestFilter_UnknownOnly(t *testing.T) {
	t.Parallel()

	words := []domain.SavedWord{
		{Position: 0, Word: "a", Known: true},
		{Position: 1, Word: "b"},
		{Position: 2, Word: "c", Known: true},
		{Position: 3, Word: "d"},
	}

	s := run(State{}, Start{N: len(words)}, Next{}, Filter{Keep: Unknown(words)})

	assert.Equal(t, []int{1, 3}, s.Order)
	assert.Equal(t, 1, s.Current())
	assert.Equal(t, 0, s.Index)
}

func TestFilter_DropsPositionsOutsideMask(t *testing.T) {
	t.Parallel()

	s := Reduce(State{Order: []int{-1, 0, 5, 1}, Index: 2}, Filter{Keep: []bool{true, true}})

	assert.Equal(t, []int{0, 1}, s.Order)
	assert.Equal(t, 0, s.Index)
}

func TestReduce_NilAction(t *testing.T) {
	t.Parallel()

	s := Reduce(State{}, Start{N: 1})
	assert.Equal(t, s, Reduce(s, nil))
}
