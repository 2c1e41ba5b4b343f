package gai

import "fmt"

// AssignStatus is the closed outcome of an assignment attempt.
type AssignStatus int

const (
	// StatusSuccess means the assignment produced a residual.
	StatusSuccess AssignStatus = iota
	// StatusErrEventual means not enough containers exist right now; a
	// backtrack into ancestor commitments may still recover feasibility.
	StatusErrEventual
	// StatusErrDefinitional means an interval strictly greater than the
	// pivot exists; this branch is permanently dead and not recoverable.
	StatusErrDefinitional
)

// String renders the status for logs and test failure messages.
func (s AssignStatus) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusErrEventual:
		return "ERROR_evtl"
	case StatusErrDefinitional:
		return "ERROR_defn"
	default:
		return fmt.Sprintf("AssignStatus(%d)", int(s))
	}
}

// AssignResult is the outcome of Assign or AssignRest: a residual on
// success, or none on failure.
type AssignResult struct {
	Residual *IntervalMultiset
	Status   AssignStatus
}

// Assign attempts to form a group of size g out of m.
//
//  1. If an interval strictly above g exists, the branch is a permanent
//     dead end (it could never have been consumed by any smaller future
//     group): StatusErrDefinitional.
//  2. Else if fewer than g entries contain g right now, a backtrack may
//     still recover feasibility: StatusErrEventual.
//  3. Else succeed, returning m with its first g instances containing g
//     removed.
func Assign(m *IntervalMultiset, g int) AssignResult {
	return assignN(m, g, g)
}

// AssignRest is Assign's counterpart used during backtracking, where some
// of the g required instances were already satisfied by higher-cell
// commitments: it requires and removes only rest containers, but still
// tests the definitional dead-end against the full pivot g.
func AssignRest(m *IntervalMultiset, g, rest int) AssignResult {
	return assignN(m, g, rest)
}

func assignN(m *IntervalMultiset, g, need int) AssignResult {
	if m.CountGreaterThan(g) > 0 {
		return AssignResult{Status: StatusErrDefinitional}
	}
	if m.CountContaining(g) < need {
		return AssignResult{Status: StatusErrEventual}
	}
	return AssignResult{
		Residual: m.WithoutFirstGIncluding(g, need),
		Status:   StatusSuccess,
	}
}
