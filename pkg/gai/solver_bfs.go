package gai

import "time"

// SolveBreadthFirst is the canonical solver: it fills the DP Table
// bottom-up, backtracking into ancestor cells whenever a direct extension
// is only eventually blocked.
func SolveBreadthFirst(input *IntervalMultiset, description string) RunInfo {
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
		table.At(i, i).Add(r.Residual)
		metrics.RecordGroupKept()
	}

	for i := n; i >= 1; i-- {
		for s := i + 1; s <= n; s++ {
			metrics.RecordStep()
			C := table.At(i, s)
			C.Marks.Reset()
			sp := s - i

			for ip := i; ip <= n; ip++ {
				P := table.At(ip, sp)
				for _, M := range P.Sets {
					populateCellFromPredecessor(P, C, M, i, table, &metrics)
				}
			}

			C.RemoveDominatedSets()
			for range C.Sets {
				metrics.RecordGroupKept()
			}
		}
	}

	return BuildRunInfo(table, description, metrics, time.Since(start))
}

func populateCellFromPredecessor(P, C *Cell, M *IntervalMultiset, pivot int, table *Table, metrics *Metrics) {
	L := M.LowestPart()
	r := Assign(L, pivot)

	switch r.Status {
	case StatusSuccess:
		metrics.RecordGroupBuilt()
		residual := r.Residual
		residual.Stack = residual.Stack.Push(P.Coord)
		C.Add(residual)
		ConnectFrom(P, C)
	case StatusErrEventual:
		backtrackBFS(P, C, M, M.Stack.Copy(), table, metrics)
	case StatusErrDefinitional:
	}
}

// backtrackBFS recovers feasibility when a direct extension of M into C is
// only eventually blocked, by dipping into M's own ancestor commitments.
func backtrackBFS(predCell, currCell *Cell, m *IntervalMultiset, workingStack Stack, table *Table, metrics *Metrics) {
	if currCell.Marks.IsMarked(m) {
		return
	}
	currCell.Marks.Add(m)
	metrics.RecordMark()

	pivot := currCell.Coord.I
	nLow := m.CountLowestPartGreaterEqual(pivot)
	rest := currCell.Coord.S - predCell.Coord.S - nLow

	iv := m.InverseLowestPartGreaterEqual(pivot)
	r := AssignRest(iv, pivot, rest)

	switch r.Status {
	case StatusSuccess:
		metrics.RecordGroupBuilt()
		currCell.Add(r.Residual)
		ConnectFrom(predCell, currCell)
	case StatusErrEventual:
		rest2, nextPredCoord, ok := workingStack.Pop()
		if !ok {
			return
		}
		nextPred := table.At(nextPredCoord.I, nextPredCoord.S)
		for _, mp := range nextPred.Sets {
			if currCell.Marks.IsMarked(mp) {
				continue
			}
			if !mp.Stack.Equals(rest2) {
				continue
			}
			backtrackBFS(nextPred, currCell, mp, rest2, table, metrics)
		}
	case StatusErrDefinitional:
	}
}
