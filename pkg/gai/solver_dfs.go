package gai

import "time"

// SolveDepthFirst extends a single chain of cells at a time, starting from
// each base cell and descending through group sizes no larger than the
// previous one,
// pruning with the dominance filter's ShouldBeAdded test at every step. It
// short-circuits as soon as any cell on column n receives a residual.
func SolveDepthFirst(input *IntervalMultiset, description string) RunInfo {
	start := time.Now()

	sorted := input.Copy()
	sorted.SortByBottom()
	n := sorted.CountIntervals()
	table := NewTable(n)
	var metrics Metrics

	for i := 1; i <= n; i++ {
		r := Assign(sorted, i)
		if r.Status != StatusSuccess {
			continue
		}
		metrics.RecordGroupBuilt()
		base := table.At(i, i)
		if base.ShouldBeAdded(r.Residual) {
			base.Add(r.Residual)
			metrics.RecordGroupKept()
		}
	}

	if !table.HasSolution() {
		for i := 1; i <= n; i++ {
			base := table.At(i, i)
			solved := false
			for _, m := range base.Sets {
				if dfsDescend(table, base, m, n, &metrics) {
					solved = true
					break
				}
			}
			if solved {
				break
			}
		}
	}

	return BuildRunInfo(table, description, metrics, time.Since(start))
}

// dfsDescend tries every feasible next group size, descending from
// predCell (currently holding m) toward column n.
func dfsDescend(table *Table, predCell *Cell, m *IntervalMultiset, n int, metrics *Metrics) bool {
	iCur, sCur := predCell.Coord.I, predCell.Coord.S
	if sCur == n {
		return true
	}

	maxJ := iCur
	if rem := n - sCur; rem < maxJ {
		maxJ = rem
	}

	for j := maxJ; j >= 1; j-- {
		dest := table.At(j, sCur+j)
		l := m.LowestPart()
		r := Assign(l, j)

		switch r.Status {
		case StatusSuccess:
			metrics.RecordGroupBuilt()
			residual := r.Residual
			residual.Stack = residual.Stack.Push(predCell.Coord)
			if !dest.ShouldBeAdded(residual) {
				continue
			}
			dest.Add(residual)
			metrics.RecordGroupKept()
			ConnectFrom(predCell, dest)
			if dfsDescend(table, dest, residual, n, metrics) {
				return true
			}
		case StatusErrEventual:
			before := dest.NumSets()
			backtrackBFS(predCell, dest, m, m.Stack.Copy(), table, metrics)
			for _, recovered := range dest.Sets[before:] {
				if dfsDescend(table, dest, recovered, n, metrics) {
					return true
				}
			}
		case StatusErrDefinitional:
		}
	}

	return false
}
