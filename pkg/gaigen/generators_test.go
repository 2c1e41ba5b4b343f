package gaigen

import (
	"testing"

	"github.com/rettertyp/gai/pkg/gai"
)

func TestFamiliesGenerateValidMultisets(t *testing.T) {
	const n = 30
	for _, family := range Families {
		family := family
		t.Run(family, func(t *testing.T) {
			inst, err := Generate(family, n, 42)
			if err != nil {
				t.Fatalf("Generate(%q, %d): %v", family, n, err)
			}
			if inst.Name != family {
				t.Errorf("Name = %q, want %q", inst.Name, family)
			}
			for _, iv := range inst.Multiset.Intervals {
				if iv.Bottom < 1 || iv.Bottom > iv.Top {
					t.Errorf("%s: invalid interval %+v", family, iv)
				}
				if iv.Amount < 1 {
					t.Errorf("%s: non-positive amount in %+v", family, iv)
				}
			}
		})
	}
}

func TestGenerateUnknownFamily(t *testing.T) {
	if _, err := Generate("NotAFamily", 10, 1); err == nil {
		t.Error("expected an error for an unknown family")
	}
}

func TestSimpleYesIsSolvableByConstruction(t *testing.T) {
	rng := newRand(7)
	for i := 0; i < 20; i++ {
		inst := SimpleYes(rng, 12)
		info := gai.SolveBreadthFirst(inst.Multiset, "simple-yes-check")
		if !info.SolutionFound {
			t.Fatalf("SimpleYes(12) iteration %d: expected a solution, metadata=%v", i, inst.Metadata)
		}
	}
}

func TestSimpleNoHasNoSolutionByConstruction(t *testing.T) {
	rng := newRand(11)
	for i := 0; i < 20; i++ {
		inst := SimpleNo(rng, 12)
		info := gai.SolveBreadthFirst(inst.Multiset, "simple-no-check")
		if info.SolutionFound {
			t.Fatalf("SimpleNo(12) iteration %d: expected no solution, metadata=%v", i, inst.Metadata)
		}
	}
}

func TestAllFullCardinality(t *testing.T) {
	inst := AllFull(9)
	if got := inst.Multiset.CountIntervals(); got != 9 {
		t.Errorf("CountIntervals() = %d, want 9", got)
	}
	for _, iv := range inst.Multiset.Intervals {
		if iv.Bottom != 1 || iv.Top != 9 {
			t.Errorf("expected every interval to be [1, 9], got %+v", iv)
		}
	}
}
