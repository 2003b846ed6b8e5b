package element

import (
	"fmt"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
)

// Deck is a card deck of colors x values cards. Each draw picks a color and
// a value independently.
//
// Invariant: a drawn card has color in [1, colors] and value in [1, values].
type Deck struct {
	colors    int
	values    int
	color     int
	value     int
	committed bool
	src       dice.Source
}

// NewDeck creates a deck with the given numbers of colors and values.
//
// Precondition: colors >= 1; values >= 1; src must be non-nil.
// Postcondition: Returns a *Deck or an error wrapping ErrInvalidArgument.
func NewDeck(colors, values int, src dice.Source) (*Deck, error) {
	if colors < 1 {
		return nil, fmt.Errorf("%w: deck colors must be >= 1, got %d", ErrInvalidArgument, colors)
	}
	if values < 1 {
		return nil, fmt.Errorf("%w: deck values must be >= 1, got %d", ErrInvalidArgument, values)
	}
	return &Deck{colors: colors, values: values, src: src}, nil
}

// Colors returns the number of colors in the deck.
func (d *Deck) Colors() int { return d.colors }

// Values returns the number of values per color.
func (d *Deck) Values() int { return d.values }

// Card returns the color and value of the last drawn card; both are 0 before
// the first draw.
func (d *Deck) Card() (color, value int) { return d.color, d.value }

func (d *Deck) Kind() Kind { return KindDeck }

func (d *Deck) Name() string { return fmt.Sprintf("deck:%dx%d", d.colors, d.values) }

func (d *Deck) Max() int { return d.derive(d.colors, d.values) }

func (d *Deck) derive(color, value int) int {
	return value + color*d.values
}

func (d *Deck) draw() (color, value int) {
	color = dice.Between(d.src, 1, d.colors)
	value = dice.Between(d.src, 1, d.values)
	return color, value
}

// Peek draws a card and returns its derived value without keeping it.
func (d *Deck) Peek() int {
	return d.derive(d.draw())
}

// Generate draws a card, keeps it as the last drawn card and returns
// value + color*values.
func (d *Deck) Generate() int {
	d.color, d.value = d.draw()
	return d.derive(d.color, d.value)
}

// Commit draws a card and makes it the current value.
func (d *Deck) Commit() Value {
	d.Generate()
	d.committed = true
	return d.Current()
}

// Current returns the most recently drawn card once the deck has committed.
func (d *Deck) Current() Value {
	if !d.committed {
		return Value{Kind: KindDeck}
	}
	return Value{
		Kind:   KindDeck,
		Number: d.derive(d.color, d.value),
		Label:  fmt.Sprintf("color %d, value %d", d.color, d.value),
	}
}
