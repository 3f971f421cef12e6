package quiz

import (
	"fmt"
	"math/rand"
	"testing"
)

// buildCatalog creates a catalog with the given number of questions per
// tier. IDs are unique across the whole catalog.
func buildCatalog(perTier map[int]int) *Catalog {
	var qs []Question
	id := 0
	for tier := MinTier; tier <= MaxTier; tier++ {
		for i := 0; i < perTier[tier]; i++ {
			id++
			qs = append(qs, Question{
				ID:            id,
				Text:          fmt.Sprintf("question %d", id),
				Options:       []string{"yes", "no"},
				CorrectAnswer: "yes",
				Tier:          tier,
			})
		}
	}
	return NewCatalog(qs)
}

func tierHistogram(p Plan) map[int]int {
	h := make(map[int]int)
	for _, q := range p {
		h[q.Tier]++
	}
	return h
}

func assertDistinct(t *testing.T, p Plan) {
	t.Helper()
	seen := make(map[int]struct{}, len(p))
	for _, q := range p {
		if _, dup := seen[q.ID]; dup {
			t.Fatalf("duplicate question id %d in plan", q.ID)
		}
		seen[q.ID] = struct{}{}
	}
}

func TestBuildStratifiedPlanBalanced(t *testing.T) {
	cat := buildCatalog(map[int]int{1: 4, 2: 4, 3: 4, 4: 4, 5: 4})
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 20; run++ {
		plan := BuildStratifiedPlan(cat, rng)
		if len(plan) != PlanSize {
			t.Fatalf("plan length = %d, want %d", len(plan), PlanSize)
		}
		assertDistinct(t, plan)
		for tier, n := range tierHistogram(plan) {
			if n != PerTierTarget {
				t.Fatalf("tier %d supplied %d questions, want %d", tier, n, PerTierTarget)
			}
		}
	}
}

func TestBuildStratifiedPlanBackfill(t *testing.T) {
	tests := []struct {
		name    string
		perTier map[int]int
	}{
		{"one scarce tier", map[int]int{1: 1, 2: 4, 3: 4, 4: 4, 5: 4}},
		{"two scarce tiers", map[int]int{1: 0, 2: 1, 3: 5, 4: 5, 5: 5}},
		{"single rich tier", map[int]int{1: 0, 2: 0, 3: 12, 4: 0, 5: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := buildCatalog(tt.perTier)
			rng := rand.New(rand.NewSource(7))
			plan := BuildStratifiedPlan(cat, rng)
			if len(plan) != PlanSize {
				t.Fatalf("plan length = %d, want %d (catalog holds %d)", len(plan), PlanSize, cat.Len())
			}
			assertDistinct(t, plan)
		})
	}
}

func TestBuildStratifiedPlanScarceCatalog(t *testing.T) {
	tests := []struct {
		name    string
		perTier map[int]int
		want    int
	}{
		{"one per tier", map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1}, 5},
		{"seven total", map[int]int{1: 2, 2: 2, 3: 3}, 7},
		{"empty catalog", map[int]int{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := buildCatalog(tt.perTier)
			rng := rand.New(rand.NewSource(3))
			plan := BuildStratifiedPlan(cat, rng)
			if len(plan) != tt.want {
				t.Fatalf("plan length = %d, want %d", len(plan), tt.want)
			}
			assertDistinct(t, plan)
		})
	}
}

func TestBuildSingleTierPlan(t *testing.T) {
	cat := buildCatalog(map[int]int{2: 3, 3: 15})
	rng := rand.New(rand.NewSource(11))

	plan := BuildSingleTierPlan(cat, 3, rng)
	if len(plan) != PlanSize {
		t.Fatalf("rich tier plan length = %d, want %d", len(plan), PlanSize)
	}
	assertDistinct(t, plan)
	for _, q := range plan {
		if q.Tier != 3 {
			t.Fatalf("question %d has tier %d, want 3", q.ID, q.Tier)
		}
	}

	plan = BuildSingleTierPlan(cat, 2, rng)
	if len(plan) != 3 {
		t.Fatalf("scarce tier plan length = %d, want 3", len(plan))
	}

	plan = BuildSingleTierPlan(cat, 5, rng)
	if len(plan) != 0 {
		t.Fatalf("empty tier plan length = %d, want 0", len(plan))
	}
}

// Repeated builds over the same catalog must not always produce the same
// ordering. This is a statistical check, not an exact-order guarantee.
func TestPlanOrderingVaries(t *testing.T) {
	cat := buildCatalog(map[int]int{1: 6, 2: 6, 3: 6, 4: 6, 5: 6})
	rng := rand.New(rand.NewSource(42))

	orders := make(map[string]struct{})
	for run := 0; run < 30; run++ {
		plan := BuildStratifiedPlan(cat, rng)
		key := ""
		for _, q := range plan {
			key += fmt.Sprintf("%d,", q.ID)
		}
		orders[key] = struct{}{}
	}
	if len(orders) < 2 {
		t.Fatalf("30 builds produced %d distinct orderings, want at least 2", len(orders))
	}
}

func TestPlanDoesNotMutateCatalog(t *testing.T) {
	cat := buildCatalog(map[int]int{3: 8})
	before := make([]int, 0, 8)
	for _, q := range cat.ByTier(3) {
		before = append(before, q.ID)
	}

	rng := rand.New(rand.NewSource(5))
	BuildSingleTierPlan(cat, 3, rng)
	BuildStratifiedPlan(cat, rng)

	for i, q := range cat.ByTier(3) {
		if q.ID != before[i] {
			t.Fatalf("catalog pool reordered at %d: got id %d, want %d", i, q.ID, before[i])
		}
	}
}
