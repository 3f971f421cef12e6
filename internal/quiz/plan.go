package quiz

import "math/rand"

// Plan is the fixed ordered sequence of questions served in one quiz
// session. It is never mutated after creation; the session only advances
// a position index into it.
type Plan []Question

// BuildStratifiedPlan draws up to PerTierTarget questions uniformly at
// random from each tier. When the tiers cannot fill PlanSize slots, the
// remainder is backfilled from a combined shuffled pool of the questions
// not yet selected. The final plan is shuffled again so tier ordering
// does not leak, and truncated to PlanSize. A catalog with fewer than
// PlanSize questions yields a short plan; the session simply ends early.
func BuildStratifiedPlan(c *Catalog, rng *rand.Rand) Plan {
	plan := make(Plan, 0, PlanSize)
	for tier := MinTier; tier <= MaxTier; tier++ {
		pool := shuffledCopy(c.ByTier(tier), rng)
		take := PerTierTarget
		if take > len(pool) {
			take = len(pool)
		}
		plan = append(plan, pool[:take]...)
	}

	if len(plan) < PlanSize {
		selected := make(map[int]struct{}, len(plan))
		for _, q := range plan {
			selected[q.ID] = struct{}{}
		}
		var remainder []Question
		for tier := MinTier; tier <= MaxTier; tier++ {
			for _, q := range c.ByTier(tier) {
				if _, ok := selected[q.ID]; ok {
					continue
				}
				remainder = append(remainder, q)
			}
		}
		rng.Shuffle(len(remainder), func(i, j int) {
			remainder[i], remainder[j] = remainder[j], remainder[i]
		})
		need := PlanSize - len(plan)
		if need > len(remainder) {
			need = len(remainder)
		}
		plan = append(plan, remainder[:need]...)
	}

	rng.Shuffle(len(plan), func(i, j int) {
		plan[i], plan[j] = plan[j], plan[i]
	})
	if len(plan) > PlanSize {
		plan = plan[:PlanSize]
	}
	return plan
}

// BuildSingleTierPlan shuffles one tier's pool and takes up to PlanSize
// questions. An empty tier yields an empty plan; the caller reports
// "no questions for this tier" distinctly from an empty catalog.
func BuildSingleTierPlan(c *Catalog, tier int, rng *rand.Rand) Plan {
	pool := shuffledCopy(c.ByTier(tier), rng)
	if len(pool) > PlanSize {
		pool = pool[:PlanSize]
	}
	return Plan(pool)
}

func shuffledCopy(qs []Question, rng *rand.Rand) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
