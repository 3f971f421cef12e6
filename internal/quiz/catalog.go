package quiz

// Catalog is an immutable collection of questions grouped by difficulty
// tier. An empty catalog is valid; the controller reports unavailability
// instead of failing.
type Catalog struct {
	byTier map[int][]Question
	total  int
}

// NewCatalog groups the provided questions by tier. Loaders reject
// out-of-range tiers before this point; anything that slips through is
// dropped rather than kept in an unreachable bucket.
func NewCatalog(questions []Question) *Catalog {
	c := &Catalog{byTier: make(map[int][]Question, MaxTier)}
	for _, q := range questions {
		if q.Tier < MinTier || q.Tier > MaxTier {
			continue
		}
		c.byTier[q.Tier] = append(c.byTier[q.Tier], q)
		c.total++
	}
	return c
}

// ByTier returns the questions of a single tier. The returned slice is
// shared; callers must not mutate it.
func (c *Catalog) ByTier(tier int) []Question {
	return c.byTier[tier]
}

// Len returns the total number of questions across all tiers.
func (c *Catalog) Len() int { return c.total }

// Empty reports whether the catalog holds no questions at all.
func (c *Catalog) Empty() bool { return c.total == 0 }

// TierCounts returns the number of questions per tier, keyed 1..5.
func (c *Catalog) TierCounts() map[int]int {
	counts := make(map[int]int, MaxTier)
	for tier := MinTier; tier <= MaxTier; tier++ {
		counts[tier] = len(c.byTier[tier])
	}
	return counts
}
