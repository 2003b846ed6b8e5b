// Package inventory loads the collections of game elements a game master
// chooses from.
package inventory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
	"github.com/cory-johannsen/critcheck/internal/game/element"
)

// DieSpec describes one die.
type DieSpec struct {
	Faces   int `yaml:"faces"`
	Current int `yaml:"current"` // initial current value; 0 means none
}

// DeckSpec describes one card deck.
type DeckSpec struct {
	Colors int `yaml:"colors"`
	Values int `yaml:"values"`
}

// CoinSpec describes one coin and its prior flip history.
type CoinSpec struct {
	Flips int `yaml:"flips"`
	Heads int `yaml:"heads"`
}

// Inventory is the YAML-defined set of dice, decks and coins.
type Inventory struct {
	Dice  []DieSpec  `yaml:"dice"`
	Decks []DeckSpec `yaml:"decks"`
	Coins []CoinSpec `yaml:"coins"`
}

// Default returns the demonstration inventory: a d6, a d12 showing 1, decks of
// 3x18 and 4x13, and two fresh coins.
func Default() *Inventory {
	return &Inventory{
		Dice:  []DieSpec{{Faces: 6}, {Faces: 12, Current: 1}},
		Decks: []DeckSpec{{Colors: 3, Values: 18}, {Colors: 4, Values: 13}},
		Coins: []CoinSpec{{}, {}},
	}
}

// Size returns the total number of elements.
func (inv *Inventory) Size() int {
	return len(inv.Dice) + len(inv.Decks) + len(inv.Coins)
}

// Validate checks every entry and reports all violations.
//
// Precondition: inv must not be nil.
// Postcondition: Returns nil iff every entry can be built into an element.
func (inv *Inventory) Validate() error {
	var errs []string
	for i, d := range inv.Dice {
		if d.Faces < 1 {
			errs = append(errs, fmt.Sprintf("dice[%d]: faces must be >= 1, got %d", i, d.Faces))
		} else if d.Current < 0 || d.Current > d.Faces {
			errs = append(errs, fmt.Sprintf("dice[%d]: current must be in [0, %d], got %d", i, d.Faces, d.Current))
		}
	}
	for i, d := range inv.Decks {
		if d.Colors < 1 {
			errs = append(errs, fmt.Sprintf("decks[%d]: colors must be >= 1, got %d", i, d.Colors))
		}
		if d.Values < 1 {
			errs = append(errs, fmt.Sprintf("decks[%d]: values must be >= 1, got %d", i, d.Values))
		}
	}
	for i, c := range inv.Coins {
		if c.Flips < 0 || c.Heads < 0 || c.Heads > c.Flips {
			errs = append(errs, fmt.Sprintf("coins[%d]: need 0 <= heads <= flips, got heads=%d flips=%d", i, c.Heads, c.Flips))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("inventory validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Build constructs the elements, sharing src between them.
//
// Precondition: src must be non-nil; rule must be a valid coin commit rule.
// Postcondition: len(dies) == len(inv.Dice), and likewise for decks and coins.
func (inv *Inventory) Build(src dice.Source, rule element.CommitRule) (dies, decks, coins []element.Element, err error) {
	for i, s := range inv.Dice {
		d, err := element.NewDie(s.Faces, s.Current, src)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("building dice[%d]: %w", i, err)
		}
		dies = append(dies, d)
	}
	for i, s := range inv.Decks {
		d, err := element.NewDeck(s.Colors, s.Values, src)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("building decks[%d]: %w", i, err)
		}
		decks = append(decks, d)
	}
	for i, s := range inv.Coins {
		c, err := element.NewCoin(s.Flips, s.Heads, rule, src)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("building coins[%d]: %w", i, err)
		}
		coins = append(coins, c)
	}
	return dies, decks, coins, nil
}

// LoadFromBytes parses an inventory from raw YAML bytes.
//
// Postcondition: Returns a validated *Inventory, or an error.
func LoadFromBytes(data []byte) (*Inventory, error) {
	var inv Inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parsing inventory YAML: %w", err)
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return &inv, nil
}

// LoadFile reads and parses the inventory file at path.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a validated *Inventory, or an error.
func LoadFile(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory %q: %w", path, err)
	}
	inv, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return inv, nil
}
