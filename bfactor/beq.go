package bfactor

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/tikz/bdb/pdb"
)

// BeqMargin is the absolute tolerance for comparing a reported B-factor
// with the equivalent isotropic B-factor computed from an ANISOU tensor,
// in square Angstroms. It is deliberately looser than GroupMargin; the
// two must not be conflated.
const BeqMargin = 0.015

// BeqResult reports whether the B-factors in the ATOM records could be
// reproduced from the ANISOU records. Both fields are nil when the entry
// has no ANISOU records at all.
type BeqResult struct {
	// BeqIdentical is the fraction of atoms with a tensor whose reported
	// B-factor could be reproduced within BeqMargin.
	BeqIdentical *float64 `json:"beq_identical"`

	// CorrectUij is false if any atom needed a non-standard combination
	// of Uij values to reproduce its B-factor.
	CorrectUij *bool `json:"correct_uij"`
}

// Beq computes the equivalent isotropic B-factor from the first three
// tensor components: Beq = 8*pi^2 * (U11+U22+U33) / 3.
func Beq(u [6]float64) float64 {
	return beqOf(u[:], 0, 1, 2)
}

func beqOf(u []float64, i, j, k int) float64 {
	return 8 * math.Pi * math.Pi * (u[i] + u[j] + u[k]) / 3
}

// CheckBeq determines if the Beq values computed from the ANISOU records
// are the same as the reported B-factors.
//
// An atom whose reported value only matches a non-standard combination of
// tensor components still counts as reproduced, but latches CorrectUij to
// false for the whole structure. Atoms without a tensor are skipped.
func CheckBeq(p *pdb.PDB) (BeqResult, []Diagnostic, error) {
	if p == nil {
		return BeqResult{}, nil, errors.New("could not check Beq values in ANISOU records: no structure")
	}

	var ds diagnostics
	hasAnisou := false
	eq, ne := 0, 0
	correctUij := true

	for _, atom := range p.AllAtoms() {
		if atom.Anisou == nil {
			continue
		}
		hasAnisou = true

		beq := Beq(*atom.Anisou)
		b := atom.BFactor
		switch {
		case scalar.EqualWithinAbs(b, beq, BeqMargin):
			eq++
		case checkCombinations(atom.Anisou[:], b, BeqMargin):
			// e.g. 2a83, 2p6e, 2qik, 3bik, 3d95, 3d96, 3g5t
			eq++
			correctUij = false
			ds.add(Info, atom.FullID(),
				"B-factor reproduced by non-standard combination of Uij values in the ANISOU record")
		default:
			// e.g. 1g8t, 1kr7, 1llr, 1mgr, 1o9g, 1pm1, 1q7l, 1qjp
			ne++
			ds.add(Info, atom.FullID(),
				"Beq not identical to B-factor in ATOM record: %3.2f %3.2f", b, beq)
		}
	}

	var result BeqResult
	if hasAnisou {
		reproduced := float64(eq) / float64(eq+ne)
		result.BeqIdentical = &reproduced
		result.CorrectUij = &correctUij
	}
	return result, ds, nil
}

// checkCombinations reports whether the B-factor can be reproduced by a
// non-standard combination of three of the six tensor components. The 20
// index triples are tried in lexicographic order, the standard (0,1,2)
// triple is skipped, and the first match stops the search.
//
// The tensor must have exactly six components; anything else is a
// contract violation and panics.
func checkCombinations(u []float64, b, margin float64) bool {
	if len(u) != 6 {
		panic(fmt.Sprintf("checkCombinations: tensor has %d components, want 6", len(u)))
	}
	for _, c := range combin.Combinations(6, 3) {
		if c[0] == 0 && c[1] == 1 && c[2] == 2 {
			continue
		}
		if scalar.EqualWithinAbs(b, beqOf(u, c[0], c[1], c[2]), margin) {
			return true
		}
	}
	return false
}
