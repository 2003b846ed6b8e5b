package element_test

import (
	"testing"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
	"github.com/cory-johannsen/critcheck/internal/game/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	src := dice.NewSeededSource(1)
	cases := []struct {
		in   string
		kind element.Kind
		name string
		max  int
	}{
		{"d6", element.KindDie, "d6", 6},
		{" D20 ", element.KindDie, "d20", 20},
		{"coin", element.KindCoin, "coin", 2},
		{"Deck:4x13", element.KindDeck, "deck:4x13", 65},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := element.Parse(tc.in, src, element.RuleAllHeads)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, e.Kind())
			assert.Equal(t, tc.name, e.Name())
			assert.Equal(t, tc.max, e.Max())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	src := dice.NewSeededSource(1)
	for _, in := range []string{"", "  ", "d", "d0", "d-4", "dx", "deck:4", "deck:0x13", "deck:ax3", "deck:3xb", "card", "coins"} {
		t.Run(in, func(t *testing.T) {
			_, err := element.Parse(in, src, element.RuleAllHeads)
			assert.ErrorIs(t, err, element.ErrInvalidArgument)
		})
	}
}

// TestParse_ErrorReturnsNilElement verifies that a failed constructor never
// leaks a typed nil pointer through the Element interface.
func TestParse_ErrorReturnsNilElement(t *testing.T) {
	src := dice.NewSeededSource(1)
	for _, in := range []string{"d0", "deck:0x4", "deck:3x0", "d", "card"} {
		t.Run(in, func(t *testing.T) {
			e, err := element.Parse(in, src, element.RuleAllHeads)
			require.ErrorIs(t, err, element.ErrInvalidArgument)
			assert.True(t, e == nil, "element must be a nil interface on error, got %#v", e)
		})
	}
}

func TestParse_RejectsSignedCounts(t *testing.T) {
	src := dice.NewSeededSource(1)
	for _, in := range []string{"D+6", "d+6", "d 6", "deck:+2x+3", "deck:2x+3", "deck:-2x3", "deck:2x 3", "deck:x3", "deck:3x"} {
		t.Run(in, func(t *testing.T) {
			e, err := element.Parse(in, src, element.RuleAllHeads)
			assert.ErrorIs(t, err, element.ErrInvalidArgument)
			assert.Nil(t, e)
		})
	}
}

func TestParse_CoinCarriesRule(t *testing.T) {
	e, err := element.Parse("coin", dice.NewSeededSource(1), element.RuleLastFlip)
	require.NoError(t, err)
	c, ok := e.(*element.Coin)
	require.True(t, ok)
	assert.Equal(t, element.RuleLastFlip, c.Rule())
}

func TestParseList_SplitsByKind(t *testing.T) {
	dies, decks, coins, err := element.ParseList("d6,deck:3x18,coin,d12,deck:4x13,coin", dice.NewSeededSource(1), element.RuleAllHeads)
	require.NoError(t, err)
	require.Len(t, dies, 2)
	require.Len(t, decks, 2)
	require.Len(t, coins, 2)
	assert.Equal(t, "d6", dies[0].Name())
	assert.Equal(t, "d12", dies[1].Name())
	assert.Equal(t, "deck:4x13", decks[1].Name())
}

func TestParseList_PropagatesError(t *testing.T) {
	_, _, _, err := element.ParseList("d6,,coin", dice.NewSeededSource(1), element.RuleAllHeads)
	assert.ErrorIs(t, err, element.ErrInvalidArgument)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { element.MustParse("d0", dice.NewSeededSource(1)) })
	assert.NotPanics(t, func() { element.MustParse("coin", dice.NewSeededSource(1)) })
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "0", element.Value{}.String())
	assert.Equal(t, "7", element.Value{Number: 7}.String())
	assert.Equal(t, "heads", element.Value{Number: 1, Label: "heads"}.String())
}
