// Package gaigen implements the instance generator contract of spec.md §6:
// each generator returns an InstanceInfo carrying the generated
// IntervalMultiset, a family name, and an integer metadata vector. Ported
// from original_source/src/instanceGen.c.
package gaigen

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rettertyp/gai/pkg/gai"
)

// InstanceInfo is one generated problem instance, per spec.md §6's
// generator contract.
type InstanceInfo struct {
	Multiset *gai.IntervalMultiset
	Name     string
	Metadata []int
}

// Families lists every recognised generator name, in the order spec.md §6
// lists them.
var Families = []string{
	"SimpleYes",
	"SimpleNo",
	"MaxWitnessesYes",
	"MaxWitnessesNo",
	"MaxGroupWitnessesYes",
	"MaxGroupWitnessesNo",
	"HardYesAmountVersion",
	"HardNoAmountVersion",
	"AllFull",
}

// newRand builds a fresh, unshared generator seeded from seed, replacing
// the original's srand(time(NULL)) wall-clock seeding with an explicit seed
// so runs are reproducible. Each call to Generate owns its *rand.Rand
// outright: no state is shared across calls, so concurrent callers (e.g.
// cmd/gai/cmd/bench.go's per-combo goroutines) never race over a package
// global.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// randRange returns a uniform random integer in [lo, hi], inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Generate dispatches to the named family, seeding a fresh generator from
// seed and returning an error for unknown names so the CLI can report a
// clean usage error instead of panicking.
func Generate(family string, n int, seed int64) (InstanceInfo, error) {
	rng := newRand(seed)

	switch family {
	case "SimpleYes":
		return SimpleYes(rng, n), nil
	case "SimpleNo":
		return SimpleNo(rng, n), nil
	case "MaxWitnessesYes":
		return MaxWitnessesYes(n), nil
	case "MaxWitnessesNo":
		return MaxWitnessesNo(n), nil
	case "MaxGroupWitnessesYes":
		return MaxGroupWitnessesYes(n), nil
	case "MaxGroupWitnessesNo":
		return MaxGroupWitnessesNo(n), nil
	case "HardYesAmountVersion":
		return HardYesAmountVersion(n), nil
	case "HardNoAmountVersion":
		return HardNoAmountVersion(n), nil
	case "AllFull":
		return AllFull(n), nil
	default:
		return InstanceInfo{}, fmt.Errorf("gaigen: unknown instance family %q", family)
	}
}

func newInstance(intervals []gai.Interval, name string, metadata []int) InstanceInfo {
	return InstanceInfo{
		Multiset: gai.NewIntervalMultiset(intervals, gai.Stack{}),
		Name:     name,
		Metadata: metadata,
	}
}

// getIntervalContainingI returns a random Interval containing i, with
// bounds scaled relative to i and n the way instanceGen.c's
// getIntervalContainingI does.
func getIntervalContainingI(rng *rand.Rand, i, n int) gai.Interval {
	start := randRange(rng, max(1, i/2), i)
	end := randRange(rng, i, min(n, i*2))
	return gai.Interval{Bottom: start, Top: end, Amount: 1}
}

// getRandomGroups generates group sizes summing to at most n, stopping
// early the moment the running sum hits n.
func getRandomGroups(rng *rand.Rand, n int) []int {
	if n <= 0 {
		return nil
	}
	groups := make([]int, 0, n)
	sum := 0
	for i := 0; i < n; i++ {
		g := randRange(rng, 1, n-sum)
		groups = append(groups, g)
		sum += g
		if sum == n {
			break
		}
	}
	return groups
}

// getIntervalsContainingI builds, for each group size g in groups, g
// intervals each containing g.
func getIntervalsContainingI(rng *rand.Rand, groups []int, n int) []gai.Interval {
	var intervals []gai.Interval
	for _, g := range groups {
		for j := 0; j < g; j++ {
			intervals = append(intervals, getIntervalContainingI(rng, g, n))
		}
	}
	return intervals
}

// addImpossibleGroup appends one interval [i, i] to intervals such that no
// legal group of size i can be formed, because fewer than i-1 of the
// existing n-1 entries contain i. Mirrors instanceGen.c's
// addImpossibleGroup, including its object-count (not amount-weighted)
// containment check.
func addImpossibleGroup(intervals []gai.Interval, n int) []gai.Interval {
	for i := 1; i <= n; i++ {
		nIncluding := 0
		for _, iv := range intervals {
			if iv.Contains(i) {
				nIncluding++
			}
		}
		if nIncluding < i-1 {
			return append(intervals, gai.Interval{Bottom: i, Top: i, Amount: 1})
		}
	}
	return append(intervals, gai.Interval{Bottom: n, Top: n, Amount: 1})
}

// SimpleYes builds n intervals from random group sizes summing to n, each
// group filled with intervals containing its own size — always solvable
// by construction.
func SimpleYes(rng *rand.Rand, n int) InstanceInfo {
	groups := getRandomGroups(rng, n)
	intervals := getIntervalsContainingI(rng, groups, n)
	return newInstance(intervals, "SimpleYes", groups)
}

// SimpleNo is SimpleYes built over n-1 intervals, with one final interval
// appended that breaks the solution.
func SimpleNo(rng *rand.Rand, n int) InstanceInfo {
	if n < 1 {
		return newInstance(nil, "SimpleNo", nil)
	}
	groups := getRandomGroups(rng, n-1)
	intervals := getIntervalsContainingI(rng, groups, n-1)
	intervals = addImpossibleGroup(intervals, n)
	return newInstance(intervals, "SimpleNo", groups)
}

// calcWitnessSize returns how many interval instances a witness spanning
// [start, end] contributes.
func calcWitnessSize(start, end int) int {
	if start >= end {
		return 0
	}
	return 3 * (end - 1)
}

// getWitness appends one witness block to intervals: a top interval, a
// middle group, a bottom group, and a key group that together force the
// DP table to carry maximal ambiguity. Ported from instanceGen.c's
// getWhitness.
func getWitness(intervals []gai.Interval, start, end int) []gai.Interval {
	nPerGroup := end - 1
	intervals = append(intervals, gai.Interval{Bottom: start, Top: end, Amount: 1})
	for j := 0; j < nPerGroup; j++ {
		intervals = append(intervals, gai.Interval{Bottom: start + 1, Top: end - 1, Amount: 1})
	}
	for j := 0; j < nPerGroup-1; j++ {
		intervals = append(intervals, gai.Interval{Bottom: start + 2, Top: end - 2, Amount: 1})
	}
	for j := 0; j < nPerGroup; j++ {
		intervals = append(intervals, gai.Interval{Bottom: end - 1, Top: end, Amount: 1})
	}
	return intervals
}

func fillRemainingSpace(intervals []gai.Interval, n int) []gai.Interval {
	for len(intervals) < n {
		intervals = append(intervals, gai.Interval{Bottom: 1, Top: 1, Amount: 1})
	}
	return intervals
}

// getMaxNumWitnesses packs as many fixed-width-4 witness blocks as fit
// into n slots, growing [start, end] by the witness width each time.
//
// This simplifies instanceGen.c's calcEndValues, which additionally
// searches for a left-shift of the packed witnesses to use any leftover
// space; that refinement is a local optimization over an already-adversarial
// construction, not a correctness requirement, so it is dropped here (see
// DESIGN.md).
func getMaxNumWitnesses(n int) ([]gai.Interval, int) {
	const width = 4
	start := min(3, n)
	end := start + width
	var intervals []gai.Interval
	nWitnesses := 0

	for len(intervals) < n {
		size := calcWitnessSize(start, end)
		if len(intervals)+size >= n {
			break
		}
		intervals = getWitness(intervals, start, end)
		nWitnesses++
		start += width / 2
		end += width
	}

	intervals = fillRemainingSpace(intervals, n)
	return intervals, nWitnesses
}

// getMaxGroupWitnesses packs witnesses of width 6 starting near
// 2*sqrt(n), shrinking the upper bound when the next witness would
// overflow the remaining space. Ported from instanceGen.c's
// getMaxGroupWhitnesses.
func getMaxGroupWitnesses(n int) ([]gai.Interval, int) {
	const width = 6
	var intervals []gai.Interval
	start := min(3, n)
	end := int(2 * math.Sqrt(float64(n)))
	nWitnesses := 0

	for len(intervals) < n {
		size := calcWitnessSize(start, end)
		for len(intervals)+size >= n && end > start {
			end--
			size = calcWitnessSize(start, end)
		}
		if end-start < width {
			intervals = fillRemainingSpace(intervals, n)
			break
		}
		intervals = getWitness(intervals, start, end)
		nWitnesses++
		start += width / 2
		end -= width / 2
	}

	return intervals, nWitnesses
}

// MaxWitnessesYes packs the maximum number of witness blocks that fit in n
// intervals; always solvable (every witness block is self-contained). The
// witness packing is deterministic given n, so unlike SimpleYes/SimpleNo it
// takes no *rand.Rand.
func MaxWitnessesYes(n int) InstanceInfo {
	intervals, nW := getMaxNumWitnesses(n)
	return newInstance(intervals, "MaxWitnessesYes", []int{nW})
}

// MaxWitnessesNo is MaxWitnessesYes built over n-1 intervals, with an
// appended group-breaking singleton.
func MaxWitnessesNo(n int) InstanceInfo {
	intervals, nW := getMaxNumWitnesses(n - 1)
	intervals = addImpossibleGroup(intervals, n)
	return newInstance(intervals, "MaxWitnessesNo", []int{nW})
}

// MaxGroupWitnessesYes packs witnesses sized to maximize the number of
// groups the solver builds, rather than the witness count.
func MaxGroupWitnessesYes(n int) InstanceInfo {
	intervals, nW := getMaxGroupWitnesses(n)
	return newInstance(intervals, "MaxGroupWitnessesYes", []int{nW})
}

// MaxGroupWitnessesNo is MaxGroupWitnessesYes over n-1 intervals, with an
// appended group-breaking singleton.
func MaxGroupWitnessesNo(n int) InstanceInfo {
	intervals, nW := getMaxGroupWitnesses(n - 1)
	intervals = addImpossibleGroup(intervals, n)
	return newInstance(intervals, "MaxGroupWitnessesNo", []int{nW})
}

// getWitnessAmountVersion builds one witness block using Amount to
// compress the middle/bottom/key groups into three run-length entries
// instead of one Interval per instance. Ported from instanceGen.c's
// getWhitnessAmountVersion.
func getWitnessAmountVersion(intervals []gai.Interval, start, end int) []gai.Interval {
	nPerGroup := end - 1
	intervals = append(intervals, gai.Interval{Bottom: start, Top: end, Amount: 1})
	intervals = append(intervals, gai.Interval{Bottom: start + 1, Top: end - 1, Amount: nPerGroup})
	intervals = append(intervals, gai.Interval{Bottom: start + 2, Top: end - 2, Amount: nPerGroup - 1})
	intervals = append(intervals, gai.Interval{Bottom: end - 1, Top: end, Amount: nPerGroup})
	return intervals
}

// getWitnessesAmountVersion packs amount-compressed witnesses. Here n
// counts Interval *objects*, not cardinality (matching instanceGen.c's
// doc comment distinguishing "number of interval-objects" from instance
// count) — the amount compression means the resulting multiset's
// cardinality is far larger than n.
func getWitnessesAmountVersion(n int) ([]gai.Interval, int) {
	const size = 4
	var intervals []gai.Interval
	start := min(3, n)
	end := n
	nWitnesses := 0

	for len(intervals) < n {
		if len(intervals)+size >= n || start+size >= end {
			for len(intervals) < n {
				intervals = append(intervals, gai.Interval{Bottom: 1, Top: 1, Amount: 1})
			}
			break
		}
		intervals = getWitnessAmountVersion(intervals, start, end)
		nWitnesses++
		start += 2
		end -= 2
	}

	return intervals, nWitnesses
}

// HardYesAmountVersion is the amount-compressed sibling of
// MaxWitnessesYes: it forces the largest residual sets the DP table can
// carry for a given object count, using Amount to keep the object count
// itself small.
func HardYesAmountVersion(n int) InstanceInfo {
	intervals, nW := getWitnessesAmountVersion(n)
	return newInstance(intervals, "HardYesAmountVersion", []int{nW})
}

// HardNoAmountVersion is HardYesAmountVersion over n-1 objects, with an
// appended group-breaking singleton.
func HardNoAmountVersion(n int) InstanceInfo {
	intervals, nW := getWitnessesAmountVersion(n - 1)
	intervals = addImpossibleGroup(intervals, n)
	return newInstance(intervals, "HardNoAmountVersion", []int{nW})
}

// AllFull returns n copies of the interval [1, n]: the maximal-ambiguity
// instance, since every interval can join any group.
func AllFull(n int) InstanceInfo {
	intervals := make([]gai.Interval, n)
	for i := range intervals {
		intervals[i] = gai.Interval{Bottom: 1, Top: n, Amount: 1}
	}
	return newInstance(intervals, "AllFull", nil)
}
