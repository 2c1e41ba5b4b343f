package gai

import (
	"testing"

	"pgregory.net/rapid"
)

// genInterval draws a single run-length Interval with a small, biased range
// so generated instances actually exercise groups instead of degenerating
// into all-singleton multisets.
func genInterval(t *rapid.T) Interval {
	bottom := rapid.IntRange(1, 8).Draw(t, "bottom")
	top := bottom + rapid.IntRange(0, 6).Draw(t, "span")
	amount := rapid.IntRange(1, 4).Draw(t, "amount")
	return Interval{Bottom: bottom, Top: top, Amount: amount}
}

func genMultiset(t *rapid.T) *IntervalMultiset {
	n := rapid.IntRange(0, 6).Draw(t, "nEntries")
	intervals := make([]Interval, n)
	for i := range intervals {
		intervals[i] = genInterval(t)
	}
	return NewIntervalMultiset(intervals, Stack{})
}

// TestProperty_SolverEquivalence pins spec.md §8 invariant 3 over randomly
// generated instances: all three strategies must agree on solutionFound.
func TestProperty_SolverEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMultiset(t)

		bfs := SolveBreadthFirst(m.Copy(), "prop")
		dfs := SolveDepthFirst(m.Copy(), "prop")
		par := SolveParallel(m.Copy(), "prop", 3)

		if bfs.SolutionFound != dfs.SolutionFound {
			t.Fatalf("bfs/dfs disagree: bfs=%v dfs=%v input=%+v", bfs.SolutionFound, dfs.SolutionFound, m.Intervals)
		}
		if bfs.SolutionFound != par.SolutionFound {
			t.Fatalf("bfs/parallel disagree: bfs=%v parallel=%v input=%+v", bfs.SolutionFound, par.SolutionFound, m.Intervals)
		}
	})
}

// TestProperty_DominanceIdempotence pins spec.md §8 invariant 4.
func TestProperty_DominanceIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nSets := rapid.IntRange(0, 6).Draw(t, "nSets")
		c := &Cell{Marks: NewMarkStorage()}
		for i := 0; i < nSets; i++ {
			c.Add(genMultiset(t))
		}

		c.RemoveDominatedSets()
		first := c.NumSets()

		c.RemoveDominatedSets()
		if c.NumSets() != first {
			t.Fatalf("second RemoveDominatedSets changed set count: %d -> %d", first, c.NumSets())
		}
	})
}

// TestProperty_CardinalityPreservation pins spec.md §8 invariant 5.
func TestProperty_CardinalityPreservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMultiset(t)
		v := rapid.IntRange(1, 10).Draw(t, "v")
		g := rapid.IntRange(1, 4).Draw(t, "g")

		if m.CountContaining(v) < g {
			t.Skip("precondition not met")
		}

		before := m.CountIntervals()
		out := m.WithoutFirstGIncluding(v, g)
		if out.CountIntervals() != before-g {
			t.Fatalf("cardinality mismatch: before=%d after=%d g=%d", before, out.CountIntervals(), g)
		}
	})
}

// TestProperty_LowestPartDecomposition pins spec.md §8 invariant 6.
func TestProperty_LowestPartDecomposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMultiset(t)
		j := rapid.IntRange(1, 10).Draw(t, "j")

		hasStack := rapid.Bool().Draw(t, "hasStack")
		if hasStack {
			m.Stack = Stack{}.Push(Coord{I: rapid.IntRange(1, 8).Draw(t, "pivot"), S: 1})
		}

		total := m.CountIntervals()
		lowest := m.CountLowestPartGreaterEqual(j)
		inverse := m.InverseLowestPartGreaterEqual(j)

		if hasStack && lowest+inverse.CountIntervals() != total {
			t.Fatalf("decomposition mismatch: lowest=%d inverse=%d total=%d", lowest, inverse.CountIntervals(), total)
		}
		if !hasStack && inverse.CountIntervals() != 0 {
			t.Fatalf("empty-stack inverse must be empty, got %d", inverse.CountIntervals())
		}
	})
}

// TestProperty_SortByBottomIdempotent pins spec.md §8 invariant 8 over
// random instances (TestMultiset_SortByBottom_Idempotent pins a fixed case).
func TestProperty_SortByBottomIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMultiset(t)
		m.SortByBottom()
		once := append([]Interval(nil), m.Intervals...)

		m.SortByBottom()
		if len(once) != len(m.Intervals) {
			t.Fatalf("length changed across re-sort")
		}
		for i := range once {
			if once[i] != m.Intervals[i] {
				t.Fatalf("re-sort changed order at index %d: %+v vs %+v", i, once[i], m.Intervals[i])
			}
		}
	})
}

// TestProperty_WitnessExistsForYesInstances checks the witness property noted
// at the end of spec.md §8 in its counting form: every YES instance with
// n > 0 reports at least one residual on column n (NSolutions > 0).
func TestProperty_WitnessExistsForYesInstances(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMultiset(t)
		info := SolveBreadthFirst(m, "witness-prop")

		if !info.SolutionFound {
			t.Skip("no solution on this instance")
		}
		if info.NIntervals == 0 {
			t.Skip("n=0 trivially has no base cell to trace")
		}
		if info.NSolutions == 0 {
			t.Fatalf("solutionFound=true but NSolutions=0")
		}
	})
}
