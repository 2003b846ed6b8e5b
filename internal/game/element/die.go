package element

import (
	"fmt"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
)

// Die is an N-faced die.
//
// Invariant: every draw is in [1, faces].
type Die struct {
	faces   int
	current int
	src     dice.Source
}

// NewDie creates a die with the given number of faces and an initial current
// value (0 for none).
//
// Precondition: faces >= 1; 0 <= current <= faces; src must be non-nil.
// Postcondition: Returns a *Die or an error wrapping ErrInvalidArgument.
func NewDie(faces, current int, src dice.Source) (*Die, error) {
	if faces < 1 {
		return nil, fmt.Errorf("%w: die faces must be >= 1, got %d", ErrInvalidArgument, faces)
	}
	if current < 0 || current > faces {
		return nil, fmt.Errorf("%w: die current value %d outside [0, %d]", ErrInvalidArgument, current, faces)
	}
	return &Die{faces: faces, current: current, src: src}, nil
}

// Faces returns the number of faces.
func (d *Die) Faces() int { return d.faces }

func (d *Die) Kind() Kind { return KindDie }

func (d *Die) Name() string { return fmt.Sprintf("d%d", d.faces) }

func (d *Die) Max() int { return d.faces }

// Peek rolls the die without storing the result.
func (d *Die) Peek() int {
	return dice.Between(d.src, 1, d.faces)
}

// Generate rolls the die. A die has no draw history, so this is identical to Peek.
func (d *Die) Generate() int {
	return d.Peek()
}

// Commit rolls the die and stores the result as the current value.
func (d *Die) Commit() Value {
	d.current = d.Generate()
	return d.Current()
}

func (d *Die) Current() Value {
	if d.current == 0 {
		return Value{Kind: KindDie}
	}
	return Value{
		Kind:   KindDie,
		Number: d.current,
		Label:  fmt.Sprintf("%s: %d", d.Name(), d.current),
	}
}
