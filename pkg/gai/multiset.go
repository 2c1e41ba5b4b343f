package gai

// IntervalMultiset is an ordered sequence of distinct Intervals (each
// carrying its own multiplicity via Amount) together with the predecessor
// Stack that records the DP trajectory that produced it.
//
// A multiset exclusively owns its Intervals slice. Its Stack is owned too:
// constructors take a deep copy of the caller's Stack via Stack.Copy.
type IntervalMultiset struct {
	Intervals []Interval
	Stack     Stack
}

// NewIntervalMultiset creates a multiset owning a fresh copy of intervals,
// with a copy of stack (an empty Stack if the caller passes none).
func NewIntervalMultiset(intervals []Interval, stack Stack) *IntervalMultiset {
	cp := make([]Interval, len(intervals))
	copy(cp, intervals)
	return &IntervalMultiset{Intervals: cp, Stack: stack.Copy()}
}

// Copy returns a structurally independent deep copy of m.
func (m *IntervalMultiset) Copy() *IntervalMultiset {
	return NewIntervalMultiset(m.Intervals, m.Stack)
}

// CountIntervals returns the multiset's cardinality: the sum of Amount
// over all entries.
func (m *IntervalMultiset) CountIntervals() int {
	count := 0
	for _, iv := range m.Intervals {
		count += iv.Amount
	}
	return count
}

// SortByBottom sorts m's Intervals in place so that Bottom is
// non-decreasing, via heap sort. Stability is not required or provided.
func (m *IntervalMultiset) SortByBottom() {
	heapSortByBottom(m.Intervals)
}

func heapSortByBottom(a []Interval) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end)
	}
}

// siftDown maintains a max-heap (by Bottom) rooted at i within a[:n], so
// that repeatedly extracting the root and shrinking n yields ascending
// order.
func siftDown(a []Interval, i, n int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && a[left].Bottom > a[largest].Bottom {
			largest = left
		}
		if right < n && a[right].Bottom > a[largest].Bottom {
			largest = right
		}
		if largest == i {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		i = largest
	}
}

// IsDominatedBy reports whether m is dominated by other: both have equal
// cardinality, and when both are expanded instance-by-instance in their
// current order, every instance of other has a Bottom no greater than the
// paired instance of m. A cardinality mismatch is never dominance.
func (m *IntervalMultiset) IsDominatedBy(other *IntervalMultiset) bool {
	total := m.CountIntervals()
	if total != other.CountIntervals() {
		return false
	}

	ti, tj, oi, oj := 0, 0, 0, 0
	for u := 0; u < total; u++ {
		if other.Intervals[oi].Bottom > m.Intervals[ti].Bottom {
			return false
		}

		tj++
		oj++
		if tj == m.Intervals[ti].Amount {
			ti++
			tj = 0
		}
		if oj == other.Intervals[oi].Amount {
			oi++
			oj = 0
		}
	}
	return true
}

// CountGreaterThan returns the cardinality of entries strictly above v.
func (m *IntervalMultiset) CountGreaterThan(v int) int {
	return m.countWhere(func(iv Interval) bool { return iv.GreaterThan(v) })
}

// CountContaining returns the cardinality of entries containing v.
func (m *IntervalMultiset) CountContaining(v int) int {
	return m.countWhere(func(iv Interval) bool { return iv.Contains(v) })
}

// CountGreaterEqual returns the cardinality of entries with GreaterEqual(v).
func (m *IntervalMultiset) CountGreaterEqual(v int) int {
	return m.countWhere(func(iv Interval) bool { return iv.GreaterEqual(v) })
}

func (m *IntervalMultiset) countWhere(pred func(Interval) bool) int {
	count := 0
	for _, iv := range m.Intervals {
		if pred(iv) {
			count += iv.Amount
		}
	}
	return count
}

// FirstContaining returns the first entry containing v, in m's current
// order.
func (m *IntervalMultiset) FirstContaining(v int) (Interval, bool) {
	for _, iv := range m.Intervals {
		if iv.Contains(v) {
			return iv, true
		}
	}
	return Interval{}, false
}

// WithoutFirstGIncluding returns a new multiset identical to m except that
// the first g instances (honoring Amount) of entries containing v have
// been removed. Entries are visited in m's current order; an entry whose
// instances are only partially removed keeps its remaining instances under
// the same Bottom/Top, preserving run-length encoding.
func (m *IntervalMultiset) WithoutFirstGIncluding(v, g int) *IntervalMultiset {
	result := make([]Interval, 0, len(m.Intervals))
	nAssigned := 0

	for _, cur := range m.Intervals {
		containsV := cur.Contains(v)
		kept := 0
		for u := 0; u < cur.Amount; u++ {
			if nAssigned < g && containsV {
				nAssigned++
			} else {
				kept++
			}
		}
		if kept > 0 {
			result = append(result, Interval{Bottom: cur.Bottom, Top: cur.Top, Amount: kept})
		}
	}

	return &IntervalMultiset{Intervals: result, Stack: m.Stack.Copy()}
}

// LowestPart returns the sub-multiset of m left of the most recently
// pivoted-on cell and above that cell's bottom floor.
//
// If m's Stack is empty, LowestPart returns a copy of m (there is no prior
// commitment to restrict against). Otherwise, letting predV be the pivot
// of the Stack's top cell and b the Bottom of the first entry containing
// predV (or 0 if none), LowestPart returns the entries x with
// x.LessThan(predV) && x.Bottom >= b.
func (m *IntervalMultiset) LowestPart() *IntervalMultiset {
	pred, ok := m.Stack.Top()
	if !ok {
		return m.Copy()
	}

	predV := pred.I
	b := 0
	if iv, found := m.FirstContaining(predV); found {
		b = iv.Bottom
	}

	var filtered []Interval
	for _, iv := range m.Intervals {
		if iv.LessThan(predV) && iv.Bottom >= b {
			filtered = append(filtered, iv)
		}
	}

	return &IntervalMultiset{Intervals: filtered, Stack: m.Stack.Copy()}
}

// CountLowestPartGreaterEqual returns the cardinality of LowestPart(m)
// further restricted to entries with GreaterEqual(j), without allocating
// the intermediate multiset. If m's Stack is empty, it is equivalent to
// CountGreaterEqual(j).
func (m *IntervalMultiset) CountLowestPartGreaterEqual(j int) int {
	pred, ok := m.Stack.Top()
	if !ok {
		return m.CountGreaterEqual(j)
	}

	predV := pred.I
	b := 0
	if iv, found := m.FirstContaining(predV); found {
		b = iv.Bottom
	}

	count := 0
	for _, iv := range m.Intervals {
		if iv.LessThan(predV) && iv.Bottom >= b && iv.GreaterEqual(j) {
			count += iv.Amount
		}
	}
	return count
}

// InverseLowestPartGreaterEqual returns the entries of m that do NOT
// satisfy the LowestPart-and-GreaterEqual(j) filter used by
// CountLowestPartGreaterEqual. If m's Stack is empty, the result is the
// empty multiset (with a fresh, empty Stack of its own).
func (m *IntervalMultiset) InverseLowestPartGreaterEqual(j int) *IntervalMultiset {
	pred, ok := m.Stack.Top()
	if !ok {
		return &IntervalMultiset{}
	}

	predV := pred.I
	b := 0
	if iv, found := m.FirstContaining(predV); found {
		b = iv.Bottom
	}

	var filtered []Interval
	for _, iv := range m.Intervals {
		if !(iv.LessThan(predV) && iv.Bottom >= b && iv.GreaterEqual(j)) {
			filtered = append(filtered, iv)
		}
	}

	return &IntervalMultiset{Intervals: filtered, Stack: m.Stack.Copy()}
}
