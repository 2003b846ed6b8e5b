// Package element defines the randomizable game elements (die, coin, card
// deck) and the capability contract they share.
package element

import (
	"errors"
	"strconv"
)

// ErrInvalidArgument is returned when an element is constructed or parsed
// with out-of-range parameters.
var ErrInvalidArgument = errors.New("element: invalid argument")

// Kind identifies the concrete variant behind an Element.
type Kind string

const (
	KindDie  Kind = "die"
	KindCoin Kind = "coin"
	KindDeck Kind = "deck"
)

// Value is the committed value of an element.
//
// Invariant: the zero Value (Number == 0) means nothing has been committed yet.
type Value struct {
	Kind   Kind
	Number int    // numeric value used in comparisons
	Label  string // human-readable rendering, e.g. "heads" or "color 2, value 7"
}

// String returns Label when set, otherwise the decimal Number.
func (v Value) String() string {
	if v.Label != "" {
		return v.Label
	}
	return strconv.Itoa(v.Number)
}

// Committed reports whether v holds a committed value.
func (v Value) Committed() bool {
	return v.Number != 0
}

// Element is a randomizable game element.
//
// Implementations are not safe for concurrent use: Generate and Commit may
// mutate instance state.
type Element interface {
	// Kind returns the element's variant.
	Kind() Kind
	// Name returns the element in notation form, e.g. "d6" or "deck:4x13".
	Name() string
	// Max returns the largest value Generate can return.
	Max() int
	// Peek returns a random draw without mutating any state.
	Peek() int
	// Generate returns a random draw and records whatever side effects the
	// variant tracks (coin counters, drawn card).
	Generate() int
	// Commit chooses a value, stores it as current and returns it.
	Commit() Value
	// Current returns the last committed value.
	Current() Value
}
