package gai

// Cell is one node of the DP Table: the set of surviving residual
// IntervalMultisets reachable at a given (pivot, mass) coordinate, plus its
// adjacency to the cells that feed it and the cells it feeds.
type Cell struct {
	Coord    Coord
	Sets     []*IntervalMultiset
	Marks    *MarkStorage
	Incoming EdgeStorage
	Outgoing EdgeStorage
}

// NumSets returns the number of residual multisets currently held.
func (c *Cell) NumSets() int {
	return len(c.Sets)
}

// ShouldBeAdded reports whether m is not already dominated by a residual
// currently held in c. Call before Add to avoid growing the cell with a
// multiset the dominance pass would remove on the next RemoveDominatedSets
// anyway.
func (c *Cell) ShouldBeAdded(m *IntervalMultiset) bool {
	for _, existing := range c.Sets {
		if m.IsDominatedBy(existing) {
			return false
		}
	}
	return true
}

// Add appends m to c's residual sets unconditionally.
func (c *Cell) Add(m *IntervalMultiset) {
	c.Sets = append(c.Sets, m)
}

// RemoveDominatedSets prunes c's residual sets to their Pareto frontier: any
// residual dominated by another surviving residual is dropped. Idempotent —
// a second call removes nothing further, since no two survivors dominate
// each other.
func (c *Cell) RemoveDominatedSets() {
	removed := make([]bool, len(c.Sets))

	for i := range c.Sets {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(c.Sets); j++ {
			if removed[j] {
				continue
			}
			if c.Sets[i].IsDominatedBy(c.Sets[j]) {
				removed[i] = true
				break
			}
			if c.Sets[j].IsDominatedBy(c.Sets[i]) {
				removed[j] = true
			}
		}
	}

	kept := c.Sets[:0]
	for i, m := range c.Sets {
		if !removed[i] {
			kept = append(kept, m)
		}
	}
	c.Sets = kept
}

// ConnectFrom records pred as a predecessor of c and c as a successor of
// pred, idempotently in both directions.
func ConnectFrom(pred, c *Cell) {
	if c.Incoming.Connect(pred.Coord) {
		pred.Outgoing.Connect(c.Coord)
	}
}
