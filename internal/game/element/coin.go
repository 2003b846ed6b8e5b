package element

import (
	"fmt"

	"github.com/cory-johannsen/critcheck/internal/game/dice"
)

const (
	// Heads is the coin value for heads.
	Heads = 1
	// Tails is the coin value for tails.
	Tails = 2
)

// CommitRule decides which face a Coin commits.
type CommitRule string

const (
	// RuleAllHeads commits heads only when every recorded flip was heads.
	RuleAllHeads CommitRule = "all_heads"
	// RuleLastFlip commits the face of the most recent recorded flip.
	RuleLastFlip CommitRule = "last_flip"
)

// ParseCommitRule converts a configuration string into a CommitRule.
func ParseCommitRule(s string) (CommitRule, error) {
	switch r := CommitRule(s); r {
	case RuleAllHeads, RuleLastFlip:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown coin commit rule %q", ErrInvalidArgument, s)
	}
}

// Coin is a two-faced coin that keeps a flip history.
//
// Invariant: 0 <= heads <= flips.
type Coin struct {
	flips   int
	heads   int
	last    int
	current int
	rule    CommitRule
	src     dice.Source
}

// NewCoin creates a coin with prior flip counters and a commit rule.
//
// Precondition: 0 <= heads <= flips; rule is RuleAllHeads or RuleLastFlip; src must be non-nil.
// Postcondition: Returns a *Coin or an error wrapping ErrInvalidArgument.
func NewCoin(flips, heads int, rule CommitRule, src dice.Source) (*Coin, error) {
	if flips < 0 || heads < 0 {
		return nil, fmt.Errorf("%w: coin counters must be >= 0, got flips=%d heads=%d", ErrInvalidArgument, flips, heads)
	}
	if heads > flips {
		return nil, fmt.Errorf("%w: coin heads %d exceeds flips %d", ErrInvalidArgument, heads, flips)
	}
	if _, err := ParseCommitRule(string(rule)); err != nil {
		return nil, err
	}
	return &Coin{flips: flips, heads: heads, rule: rule, src: src}, nil
}

// Flips returns the number of recorded flips.
func (c *Coin) Flips() int { return c.flips }

// HeadsCount returns the number of recorded flips that landed heads.
func (c *Coin) HeadsCount() int { return c.heads }

// Rule returns the coin's commit rule.
func (c *Coin) Rule() CommitRule { return c.rule }

func (c *Coin) Kind() Kind { return KindCoin }

func (c *Coin) Name() string { return "coin" }

func (c *Coin) Max() int { return Tails }

// Peek flips the coin without recording the flip.
func (c *Coin) Peek() int {
	return dice.Between(c.src, Heads, Tails)
}

// Generate flips the coin and records it in the flip counters.
//
// Postcondition: Flips() increases by 1; HeadsCount() increases by 1 iff the result is Heads.
func (c *Coin) Generate() int {
	result := c.Peek()
	c.flips++
	if result == Heads {
		c.heads++
	}
	c.last = result
	return result
}

// Commit stores a face chosen by the coin's rule. Commit does not flip.
//
// Under RuleAllHeads the face is Heads iff HeadsCount() == Flips(). Under
// RuleLastFlip it is the face of the last recorded flip, falling back to
// RuleAllHeads when no flip has been recorded by this coin.
func (c *Coin) Commit() Value {
	if c.rule == RuleLastFlip && c.last != 0 {
		c.current = c.last
		return c.Current()
	}
	if c.heads == c.flips {
		c.current = Heads
	} else {
		c.current = Tails
	}
	return c.Current()
}

func (c *Coin) Current() Value {
	switch c.current {
	case Heads:
		return Value{Kind: KindCoin, Number: Heads, Label: "heads"}
	case Tails:
		return Value{Kind: KindCoin, Number: Tails, Label: "tails"}
	default:
		return Value{Kind: KindCoin}
	}
}
