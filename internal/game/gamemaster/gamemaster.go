// Package gamemaster selects one game element from pooled collections and
// evaluates critical-hit checks against it.
package gamemaster

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
	"github.com/cory-johannsen/critcheck/internal/game/element"
)

// ErrNoElements is returned when every collection handed to the game master is empty.
var ErrNoElements = errors.New("gamemaster: no elements to select from")

// ErrUnknownDenominator is returned for a Denominator other than DenominatorDraw or DenominatorMax.
var ErrUnknownDenominator = errors.New("gamemaster: unknown denominator")

// Pool names the collection the selected element came from.
type Pool string

const (
	PoolDice  Pool = "dice"
	PoolDecks Pool = "decks"
	PoolCoins Pool = "coins"
)

// Denominator decides what the first draw of a critical-hit check is divided by.
type Denominator string

const (
	// DenominatorDraw divides by a second independent draw.
	DenominatorDraw Denominator = "draw"
	// DenominatorMax divides by the element's largest possible value.
	DenominatorMax Denominator = "max"
)

// ParseDenominator converts a configuration string into a Denominator.
func ParseDenominator(s string) (Denominator, error) {
	switch d := Denominator(s); d {
	case DenominatorDraw, DenominatorMax:
		return d, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownDenominator, s)
	}
}

// Option configures a GameMaster.
type Option func(*GameMaster)

// WithDenominator sets how critical-hit ratios are computed. Defaults to
// DenominatorDraw; New rejects any other value with ErrUnknownDenominator.
func WithDenominator(d Denominator) Option {
	return func(gm *GameMaster) { gm.denominator = d }
}

// GameMaster owns the dice, decks and coins collections and the element
// chosen from them at construction.
//
// Invariant: selected is non-nil and belongs to exactly one collection.
// Not safe for concurrent use.
type GameMaster struct {
	dice        []element.Element
	decks       []element.Element
	coins       []element.Element
	selected    element.Element
	pool        Pool
	index       int
	denominator Denominator
	logger      *zap.Logger
}

// New creates a GameMaster and selects its active element uniformly across
// the concatenation dice, decks, coins.
//
// Precondition: src and logger must be non-nil.
// Postcondition: Returns a GameMaster with a selected element, ErrNoElements
// when all three collections are empty, or ErrUnknownDenominator.
func New(dies, decks, coins []element.Element, src dice.Source, logger *zap.Logger, opts ...Option) (*GameMaster, error) {
	pool, idx, err := SelectIndex(len(dies), len(decks), len(coins), src)
	if err != nil {
		return nil, err
	}

	gm := &GameMaster{
		dice:        dies,
		decks:       decks,
		coins:       coins,
		pool:        pool,
		index:       idx,
		denominator: DenominatorDraw,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(gm)
	}
	if _, err := ParseDenominator(string(gm.denominator)); err != nil {
		return nil, err
	}

	switch pool {
	case PoolDice:
		gm.selected = dies[idx]
	case PoolDecks:
		gm.selected = decks[idx]
	default:
		gm.selected = coins[idx]
	}

	logger.Debug("element selected",
		zap.String("pool", string(pool)),
		zap.Int("index", idx),
		zap.String("element", gm.selected.Name()),
	)
	return gm, nil
}

// SelectIndex draws a single index uniformly from [0, d+k+c) and maps it onto
// the dice range, then the decks range, then the coins range.
//
// Precondition: d, k, c >= 0; src must be non-nil.
// Postcondition: Returns the pool and the index within it, or ErrNoElements if d+k+c == 0.
func SelectIndex(d, k, c int, src dice.Source) (Pool, int, error) {
	total := d + k + c
	if total <= 0 {
		return "", 0, ErrNoElements
	}
	i := src.Intn(total)
	switch {
	case i < d:
		return PoolDice, i, nil
	case i < d+k:
		return PoolDecks, i - d, nil
	default:
		return PoolCoins, i - d - k, nil
	}
}

// Selected returns the active element.
func (gm *GameMaster) Selected() element.Element { return gm.selected }

// SelectedPool returns the collection the active element came from and its index within it.
func (gm *GameMaster) SelectedPool() (Pool, int) { return gm.pool, gm.index }

// Size returns the number of elements across all collections.
func (gm *GameMaster) Size() int { return len(gm.dice) + len(gm.decks) + len(gm.coins) }

// CriticalHit draws a = Generate() from the active element, takes the
// denominator b per the configured Denominator, and reports whether
// (a / b) * 100 < percentage. percentage is not range-checked.
//
// Postcondition: result.Hit == EvaluateCritical(result.A, result.B, percentage).
func (gm *GameMaster) CriticalHit(percentage float64) CritResult {
	a := gm.selected.Generate()
	var b int
	switch gm.denominator {
	case DenominatorDraw:
		b = gm.selected.Generate()
	case DenominatorMax:
		b = gm.selected.Max()
	}

	result := CritResult{
		ID:         uuid.New().String(),
		Element:    gm.selected.Name(),
		Pool:       gm.pool,
		A:          a,
		B:          b,
		Percentage: percentage,
		Hit:        EvaluateCritical(a, b, percentage),
	}
	gm.logger.Debug("critical hit check",
		zap.String("id", result.ID),
		zap.String("element", result.Element),
		zap.Int("a", a),
		zap.Int("b", b),
		zap.Float64("ratio", result.Ratio()),
		zap.Float64("percentage", percentage),
		zap.Bool("hit", result.Hit),
	)
	return result
}

// Commit commits a value on the active element and returns it.
func (gm *GameMaster) Commit() element.Value {
	v := gm.selected.Commit()
	gm.logger.Debug("element committed",
		zap.String("element", gm.selected.Name()),
		zap.Int("value", v.Number),
		zap.String("label", v.Label),
	)
	return v
}

// EvaluateCritical reports whether (a / b) * 100 < percentage.
//
// Precondition: b != 0.
func EvaluateCritical(a, b int, percentage float64) bool {
	return ratio(a, b) < percentage
}

func ratio(a, b int) float64 {
	return float64(a) / float64(b) * 100
}
