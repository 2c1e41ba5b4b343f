package gai

import "time"

// Metrics accumulates solver-internal counters as a value threaded through
// a solve, rather than as global mutable state: each solver owns one and
// folds it into a RunInfo at the end of the run.
type Metrics struct {
	NGroupsBuilt int
	NGroupsKept  int
	NSteps       int
	NMarkedSets  int
}

// RecordGroupBuilt counts one successful Assign/AssignRest call.
func (m *Metrics) RecordGroupBuilt() { m.NGroupsBuilt++ }

// RecordGroupKept counts one residual surviving a dominance filter pass.
func (m *Metrics) RecordGroupKept() { m.NGroupsKept++ }

// RecordStep counts one (i, s) cell population.
func (m *Metrics) RecordStep() { m.NSteps++ }

// RecordMark counts one multiset marked during backtrack.
func (m *Metrics) RecordMark() { m.NMarkedSets++ }

// RunInfo is the metrics record produced per solve.
type RunInfo struct {
	Description    string
	SolutionFound  bool
	NIntervals     int
	NGroupsBuilt   int
	NGroupsKept    int
	NSolutions     int
	NSteps         int
	NUsedNodes     int
	AvgIncoming    float64
	MaxIncoming    int
	AvgOutgoing    float64
	MaxOutgoing    int
	NEdges         int
	NMarkedSets    int
	MaxSetsPerCell int
	MinSetsPerCell int
	LongestPath    int
	ShortestPath   int
	RunTime        time.Duration
	// Metadata carries the instance generator's arbitrary integer vector
	// through to the run report, per spec.md §6's generator contract. The
	// solver itself never populates this field — callers that built the
	// input via pkg/gaigen attach the generator's Metadata after solving.
	Metadata []int
}

// BuildRunInfo walks a closed Table and folds it, together with metrics
// accumulated during the solve, into a RunInfo.
func BuildRunInfo(table *Table, description string, metrics Metrics, runTime time.Duration) RunInfo {
	n := table.N

	var (
		nUsedNodes               int
		sumIncoming, sumOutgoing int
		maxIncoming, maxOutgoing int
		nEdges                   int
		maxSets                  int
		minSets                  = -1
	)

	for i := 1; i <= n; i++ {
		for s := 1; s <= n; s++ {
			cell := table.At(i, s)
			in, out := cell.Incoming.Len(), cell.Outgoing.Len()
			sumIncoming += in
			sumOutgoing += out
			nEdges += out
			if in > maxIncoming {
				maxIncoming = in
			}
			if out > maxOutgoing {
				maxOutgoing = out
			}

			ns := cell.NumSets()
			if ns > 0 {
				nUsedNodes++
				if ns > maxSets {
					maxSets = ns
				}
				if minSets == -1 || ns < minSets {
					minSets = ns
				}
			}
		}
	}
	if minSets == -1 {
		minSets = 0
	}

	totalCells := n * n
	var avgIncoming, avgOutgoing float64
	if totalCells > 0 {
		avgIncoming = float64(sumIncoming) / float64(totalCells)
		avgOutgoing = float64(sumOutgoing) / float64(totalCells)
	}

	winning := table.WinningCells()
	nSolutions := 0
	for _, c := range winning {
		nSolutions += c.NumSets()
	}

	longest, shortest := -1, -1
	if len(winning) > 0 {
		longestMemo := make(map[Coord]int)
		shortestMemo := make(map[Coord]int)
		for _, c := range winning {
			if d := longestDepth(table, c.Coord, longestMemo); longest == -1 || d > longest {
				longest = d
			}
			if d := shortestDepth(table, c.Coord, shortestMemo); shortest == -1 || d < shortest {
				shortest = d
			}
		}
	}

	return RunInfo{
		Description:    description,
		SolutionFound:  len(winning) > 0,
		NIntervals:     n,
		NGroupsBuilt:   metrics.NGroupsBuilt,
		NGroupsKept:    metrics.NGroupsKept,
		NSolutions:     nSolutions,
		NSteps:         metrics.NSteps,
		NUsedNodes:     nUsedNodes,
		AvgIncoming:    avgIncoming,
		MaxIncoming:    maxIncoming,
		AvgOutgoing:    avgOutgoing,
		MaxOutgoing:    maxOutgoing,
		NEdges:         nEdges,
		NMarkedSets:    metrics.NMarkedSets,
		MaxSetsPerCell: maxSets,
		MinSetsPerCell: minSets,
		LongestPath:    longest,
		ShortestPath:   shortest,
		RunTime:        runTime,
	}
}

// longestDepth returns the longest chain of incoming edges reachable from
// c, memoized per coordinate. The Table's dependency DAG (mass strictly
// decreases along any incoming edge) guarantees termination.
func longestDepth(t *Table, c Coord, memo map[Coord]int) int {
	if v, ok := memo[c]; ok {
		return v
	}
	cell := t.At(c.I, c.S)
	best := 0
	for _, pred := range cell.Incoming.Coords() {
		if d := 1 + longestDepth(t, pred, memo); d > best {
			best = d
		}
	}
	memo[c] = best
	return best
}

// shortestDepth mirrors longestDepth but takes the minimum chain length.
func shortestDepth(t *Table, c Coord, memo map[Coord]int) int {
	if v, ok := memo[c]; ok {
		return v
	}
	cell := t.At(c.I, c.S)
	preds := cell.Incoming.Coords()
	if len(preds) == 0 {
		memo[c] = 0
		return 0
	}
	best := -1
	for _, pred := range preds {
		if d := 1 + shortestDepth(t, pred, memo); best == -1 || d < best {
			best = d
		}
	}
	memo[c] = best
	return best
}
