package gamemaster

import "fmt"

// CritResult holds the audit trail for a single critical-hit check.
//
// Postcondition: Hit == (Ratio() < Percentage).
type CritResult struct {
	ID         string  // unique check identifier
	Element    string  // notation of the element that was drawn from
	Pool       Pool    // collection the element belongs to
	A          int     // first draw
	B          int     // denominator: second draw or element maximum
	Percentage float64 // threshold the ratio is compared against
	Hit        bool
}

// Ratio returns (A / B) * 100.
func (r CritResult) Ratio() float64 {
	return ratio(r.A, r.B)
}

// String returns a human-readable audit string in the format:
//
//	"d6: (5 / 10) * 100 = 50.00 < 75 → hit"
func (r CritResult) String() string {
	outcome := "miss"
	if r.Hit {
		outcome = "hit"
	}
	return fmt.Sprintf("%s: (%d / %d) * 100 = %.2f < %g → %s", r.Element, r.A, r.B, r.Ratio(), r.Percentage, outcome)
}
