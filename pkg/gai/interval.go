package gai

// Interval represents a run-length compressed span of identical integer
// intervals: Amount copies of the interval [Bottom, Top]. 1 <= Bottom <=
// Top and Amount >= 1 for any valid Interval; the zero value is never
// used as a real interval.
type Interval struct {
	Bottom int
	Top    int
	Amount int
}

// Contains reports whether v falls within [i.Bottom, i.Top].
func (i Interval) Contains(v int) bool {
	return i.Bottom <= v && v <= i.Top
}

// GreaterThan reports whether i lies strictly above v, i.e. i.Bottom > v.
func (i Interval) GreaterThan(v int) bool {
	return i.Bottom > v
}

// GreaterEqual reports whether i.Top >= v.
//
// This is the observed semantics from the original sources
// (intervalGreaterEqual computes v <= x.top), not the "interval entirely
// >= v" meaning its name suggests. See spec.md §9 Open Questions: the
// discrepancy is intentional and pinned by TestInterval_GreaterEqual_ObservedSemantics.
func (i Interval) GreaterEqual(v int) bool {
	return i.Top >= v
}

// LessThan reports whether i lies strictly below v, i.e. i.Top < v.
func (i Interval) LessThan(v int) bool {
	return i.Top < v
}
