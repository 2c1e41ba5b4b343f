package gai

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rettertyp/gai/internal/parallel"
)

// SolveParallel runs the breadth-first recurrence over a worker pool,
// dispatched in bulk-synchronous wavefronts over the DP Table's dependency
// DAG: cell (i, s) depends on every cell (i', s-i) for i' in [i, n]. Cells
// whose full dependency set has closed are dispatched together; the next
// wavefront is computed once the batch completes. numWorkers <= 0 selects
// runtime.NumCPU().
func SolveParallel(input *IntervalMultiset, description string, numWorkers int) RunInfo {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	start := time.Now()

	sorted := input.Copy()
	sorted.SortByBottom()
	n := sorted.CountIntervals()
	table := NewTable(n)
	var metrics Metrics
	var mu sync.Mutex

	for i := 1; i <= n; i++ {
		r := Assign(sorted, i)
		if r.Status != StatusSuccess {
			continue
		}
		metrics.RecordGroupBuilt()
		table.At(i, i).Add(r.Residual)
		metrics.RecordGroupKept()
	}

	pool := parallel.NewWorkerPool(numWorkers)
	defer pool.Shutdown()
	ctx := context.Background()

	closed := make(map[Coord]bool, n*n)
	for i := 1; i <= n; i++ {
		closed[Coord{I: i, S: i}] = true
	}

	pending := buildCellGraph(n)

	for len(pending) > 0 {
		batch := popReady(pending, closed)
		if len(batch) == 0 {
			// No cell's dependencies are fully closed: the dependency
			// graph is malformed. Treat as done rather than spin forever.
			break
		}

		var wg sync.WaitGroup
		for _, coord := range batch {
			coord := coord
			wg.Add(1)
			task := func() {
				defer wg.Done()
				populateCellConcurrent(table, coord, &mu, &metrics)
			}
			if err := pool.Submit(ctx, task); err != nil {
				wg.Done()
			}
		}
		wg.Wait()

		for _, coord := range batch {
			closed[coord] = true
		}
	}

	return BuildRunInfo(table, description, metrics, time.Since(start))
}

// cellNode is one (i, s) population task and the coordinates it depends on.
type cellNode struct {
	coord Coord
	preds []Coord
}

func buildCellGraph(n int) map[Coord]*cellNode {
	pending := make(map[Coord]*cellNode)
	for i := 1; i <= n; i++ {
		for s := i + 1; s <= n; s++ {
			sp := s - i
			predSet := make(map[Coord]struct{}, n-i+1)
			for ip := i; ip <= n; ip++ {
				predSet[Coord{I: ip, S: sp}] = struct{}{}
			}
			preds := make([]Coord, 0, len(predSet))
			for c := range predSet {
				preds = append(preds, c)
			}
			coord := Coord{I: i, S: s}
			pending[coord] = &cellNode{coord: coord, preds: preds}
		}
	}
	return pending
}

// popReady removes and returns every node all of whose predecessors are
// closed.
func popReady(pending map[Coord]*cellNode, closed map[Coord]bool) []Coord {
	var ready []Coord
	for coord, nd := range pending {
		allClosed := true
		for _, p := range nd.preds {
			if !closed[p] {
				allClosed = false
				break
			}
		}
		if allClosed {
			ready = append(ready, coord)
			delete(pending, coord)
		}
	}
	return ready
}

// populateCellConcurrent is one worker's cell-population task. mu
// serializes access to the Table cells being read and written — a cell's
// own predecessors are guaranteed closed (read-only) by the wavefront
// barrier, but two concurrently-running workers may still touch shared
// cell state (e.g. two cells both reading the same closed predecessor), so
// writes to C and metrics are still guarded.
func populateCellConcurrent(table *Table, coord Coord, mu *sync.Mutex, metrics *Metrics) {
	mu.Lock()
	metrics.RecordStep()
	mu.Unlock()

	i, s := coord.I, coord.S
	c := table.At(i, s)
	c.Marks.Reset()
	sp := s - i

	for ip := i; ip <= table.N; ip++ {
		p := table.At(ip, sp)
		for _, m := range p.Sets {
			mu.Lock()
			populateCellFromPredecessor(p, c, m, i, table, metrics)
			mu.Unlock()
		}
	}

	mu.Lock()
	c.RemoveDominatedSets()
	for range c.Sets {
		metrics.RecordGroupKept()
	}
	mu.Unlock()
}
