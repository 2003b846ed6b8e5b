package element

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
)

// Parse builds an element from its notation.
// Supported forms: "d6", "d20", "coin", "deck:4x13".
//
// Precondition: s must be non-empty; src must be non-nil.
// Postcondition: Returns a new Element or an error wrapping ErrInvalidArgument.
func Parse(s string, src dice.Source, rule CommitRule) (Element, error) {
	raw := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("%w: empty element notation", ErrInvalidArgument)
	}

	switch {
	case s == "coin":
		c, err := NewCoin(0, 0, rule, src)
		if err != nil {
			return nil, err
		}
		return c, nil

	case strings.HasPrefix(s, "deck:"):
		dims := s[len("deck:"):]
		xIdx := strings.Index(dims, "x")
		if xIdx < 0 {
			return nil, fmt.Errorf("%w: missing 'x' in deck notation %q", ErrInvalidArgument, raw)
		}
		colors, err := parseCount(dims[:xIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid deck colors in %q: %v", ErrInvalidArgument, raw, err)
		}
		values, err := parseCount(dims[xIdx+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid deck values in %q: %v", ErrInvalidArgument, raw, err)
		}
		d, err := NewDeck(colors, values, src)
		if err != nil {
			return nil, err
		}
		return d, nil

	case strings.HasPrefix(s, "d"):
		faces, err := parseCount(s[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid die faces in %q: %v", ErrInvalidArgument, raw, err)
		}
		d, err := NewDie(faces, 0, src)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	return nil, fmt.Errorf("%w: unrecognised element notation %q", ErrInvalidArgument, raw)
}

// parseCount parses an unsigned decimal count. Signs, spaces and other
// characters that strconv.Atoi would tolerate are rejected.
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing number")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a plain decimal number", s)
		}
	}
	return strconv.Atoi(s)
}

// ParseList parses a comma-separated list of element notations and splits
// the result into dice, decks and coins, preserving input order within each
// kind.
//
// Postcondition: Returns the three collections or the first parse error.
func ParseList(s string, src dice.Source, rule CommitRule) (dies, decks, coins []Element, err error) {
	for _, part := range strings.Split(s, ",") {
		e, err := Parse(part, src, rule)
		if err != nil {
			return nil, nil, nil, err
		}
		switch e.Kind() {
		case KindDie:
			dies = append(dies, e)
		case KindDeck:
			decks = append(decks, e)
		case KindCoin:
			coins = append(coins, e)
		}
	}
	return dies, decks, coins, nil
}

// MustParse parses s and panics on error. Useful for test fixtures.
//
// Precondition: s must be valid element notation.
func MustParse(s string, src dice.Source) Element {
	e, err := Parse(s, src, RuleAllHeads)
	if err != nil {
		panic("element: MustParse failed for " + s + ": " + err.Error())
	}
	return e
}
