package element_test

import (
	"testing"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
	"github.com/cory-johannsen/critcheck/internal/game/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewDie_RejectsNonPositiveFaces(t *testing.T) {
	for _, faces := range []int{0, -1, -20} {
		_, err := element.NewDie(faces, 0, dice.NewSeededSource(1))
		assert.ErrorIs(t, err, element.ErrInvalidArgument, "faces=%d", faces)
	}
}

func TestNewDie_RejectsCurrentOutOfRange(t *testing.T) {
	_, err := element.NewDie(6, 7, dice.NewSeededSource(1))
	assert.ErrorIs(t, err, element.ErrInvalidArgument)
}

// TestDie_Generate_InRange_Property verifies every draw is in [1, faces].
func TestDie_Generate_InRange_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		faces := rapid.IntRange(1, 100).Draw(rt, "faces")
		seed := rapid.Uint64().Draw(rt, "seed")
		d, err := element.NewDie(faces, 0, dice.NewSeededSource(seed))
		require.NoError(rt, err)
		for i := 0; i < 20; i++ {
			v := d.Generate()
			assert.GreaterOrEqual(rt, v, 1)
			assert.LessOrEqual(rt, v, faces)
		}
	})
}

func TestDie_Generate_DoesNotChangeCurrent(t *testing.T) {
	d, err := element.NewDie(12, 1, &seqSource{vals: []int{9}})
	require.NoError(t, err)
	assert.Equal(t, 10, d.Generate())
	assert.Equal(t, 1, d.Current().Number)
}

func TestDie_Commit(t *testing.T) {
	d, err := element.NewDie(6, 0, &seqSource{vals: []int{3}})
	require.NoError(t, err)
	assert.False(t, d.Current().Committed())

	v := d.Commit()
	assert.Equal(t, element.Value{Kind: element.KindDie, Number: 4, Label: "d6: 4"}, v)
	assert.Equal(t, v, d.Current())
}

func TestDie_Metadata(t *testing.T) {
	d, err := element.NewDie(20, 0, dice.NewCryptoSource())
	require.NoError(t, err)
	assert.Equal(t, element.KindDie, d.Kind())
	assert.Equal(t, "d20", d.Name())
	assert.Equal(t, 20, d.Max())
	assert.Equal(t, 20, d.Faces())
}

func TestDie_SingleFace(t *testing.T) {
	d, err := element.NewDie(1, 0, dice.NewCryptoSource())
	require.NoError(t, err)
	assert.Equal(t, 1, d.Peek())
	assert.Equal(t, 1, d.Commit().Number)
}
