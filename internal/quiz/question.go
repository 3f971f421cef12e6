// Package quiz implements the quiz session core: the question catalog,
// the plan builder, and the per-user session state machine. The package
// performs no I/O; the catalog is built once at startup and sessions
// live only for the lifetime of the process.
package quiz

import "strconv"

const (
	// MinTier and MaxTier bound the difficulty scale.
	MinTier = 1
	MaxTier = 5

	// DefaultTier is assigned to questions that do not declare a difficulty.
	DefaultTier = 3

	// PlanSize is the target number of questions per quiz session.
	PlanSize = 10

	// PerTierTarget is how many questions a stratified plan draws from each tier.
	PerTierTarget = 2
)

// Question is a single catalog entry. Questions are immutable once loaded;
// ID is the stable load-order identifier used for deduplication.
type Question struct {
	ID            int
	Text          string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Tier          int
}

// Selector picks which difficulty tiers a session draws from:
// a specific tier 1..5, or AllTiers.
type Selector int

// AllTiers selects stratified plans spanning every tier.
const AllTiers Selector = 0

// IsAll reports whether the selector spans all tiers.
func (s Selector) IsAll() bool { return s == AllTiers }

// Valid reports whether the selector is AllTiers or a tier within bounds.
func (s Selector) Valid() bool {
	return s == AllTiers || (int(s) >= MinTier && int(s) <= MaxTier)
}

func (s Selector) String() string {
	if s.IsAll() {
		return "all"
	}
	return strconv.Itoa(int(s))
}
