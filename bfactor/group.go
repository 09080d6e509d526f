package bfactor

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/tikz/bdb/pdb"
)

// GroupMargin is the absolute tolerance used when comparing B-factors
// inside the group classifier, in square Angstroms.
const GroupMargin = 0.01

// zeroTol decides whether a shared B-factor value counts as zero, meaning
// no meaningful refinement took place.
const zeroTol = 1e-8

// maxUsefulResidues is the number of standard residues with at least one
// heavy occupied atom that a chain scan collects before deciding.
const maxUsefulResidues = 10

// Group is a B-factor group parameterization.
type Group string

const (
	// Overall: one B-factor for the whole chain, e.g. 1etu.
	Overall Group = "overall"
	// Residue1ADP: one displacement group per residue, e.g. the protein
	// in 1hlz.
	Residue1ADP Group = "residue_1ADP"
	// Residue2ADP: two displacement groups per residue (backbone and
	// side-chain), e.g. the DNA in 1hlz.
	Residue2ADP Group = "residue_2ADP"
	// Individual: per-atom B-factors, most PDB files.
	Individual Group = "individual"
	// NoBFactors: the shared value is zero, e.g. 1mcb, 3zxa, 2yhx.
	NoBFactors Group = "no_b-factors"
)

// GroupResult is the most likely B-factor parameterization of a
// structure, separated for protein and nucleic acid chains. An empty
// Group means no chain of that kind is present.
type GroupResult struct {
	ProteinB   Group `json:"protein_b"`
	NucleicB   Group `json:"nucleic_b"`
	CalphaOnly bool  `json:"calpha_only"`
	PhosOnly   bool  `json:"phos_only"`
}

// DetermineBGroup determines the most likely B-factor parameterization of
// the structure. A nil structure yields the zero result without error,
// unlike CheckBeq.
//
// Only the first protein (or Cα-trace) chain and the first nucleic acid
// (or phosphorus-trace) chain are inspected; remaining chains are assumed
// to share their parameterization.
func DetermineBGroup(p *pdb.PDB) (GroupResult, []Diagnostic) {
	var group GroupResult
	var ds diagnostics
	if p == nil {
		return group, ds
	}

	for _, chain := range p.Chains {
		switch {
		case IsProteinChain(chain):
			if group.ProteinB == "" {
				g, cds := DetermineBGroupChain(chain)
				group.ProteinB = g
				ds = append(ds, cds...)
			}
		case IsNucleicChain(chain):
			if group.NucleicB == "" {
				g, cds := DetermineBGroupChain(chain)
				group.NucleicB = g
				ds = append(ds, cds...)
			}
		case IsCalphaTrace(chain):
			if group.ProteinB == "" {
				group.CalphaOnly = true
				ds.add(Info, chain.ID, "Calpha-only chain(s) present")
				g, cds := DetermineBGroupChain(chain)
				group.ProteinB = g
				ds = append(ds, cds...)
			}
		case IsPhosTrace(chain):
			if group.NucleicB == "" {
				group.PhosOnly = true
				ds.add(Info, chain.ID, "Backbone phosphorus-only chain(s) present")
				g, cds := DetermineBGroupChain(chain)
				group.NucleicB = g
				ds = append(ds, cds...)
			}
		default:
			ds.add(Warning, chain.ID,
				"no protein or nucleic acid chain found (of sufficient length)")
		}
	}

	ds.add(Info, "",
		"Most likely B-factor group type protein: %s | nucleic acid: %s",
		orNotPresent(group.ProteinB), orNotPresent(group.NucleicB))
	return group, ds
}

func orNotPresent(g Group) string {
	if g == "" {
		return "not present"
	}
	return string(g)
}

// DetermineBGroupChain returns the most likely B-factor group type for a
// single chain.
//
// The scan is greedy: only the first 10 useful residues are inspected and
// a uniform parameterization across the chain is assumed. If multiple
// domains with different overall B-factors share the chain, the output is
// still Overall. Fewer than three residues would be too greedy for 1hlz
// chain B or 1av1, hence ten.
func DetermineBGroupChain(chain *pdb.Chain) (Group, []Diagnostic) {
	var ds diagnostics
	scan := groupScan{group: Individual}

	for _, res := range chain.Residues {
		if len(scan.bRes) >= maxUsefulResidues {
			break
		}
		if res.Hetatm {
			// Exclude HETATM and waters.
			continue
		}
		var bAtom []float64
		for _, atom := range res.Atoms {
			// Exclude hydrogens and zero occupancy (many in e.g. 1etu).
			if !atom.IsHydrogen() && atom.Occupancy > 0 {
				bAtom = append(bAtom, atom.BFactor)
			}
		}
		scan = scan.observe(bAtom)
	}

	if len(scan.bRes) < maxUsefulResidues {
		// e.g. 1c0q
		ds.add(Warning, chain.ID,
			"chain has less than %d useful residues composed of ATOMs",
			maxUsefulResidues)
	}
	return scan.finalize(), ds
}

// groupScan threads the classifier state through an ordered sequence of
// residue evaluations. The interim group is overwritten on every residue
// with two or more collected atoms, so the last qualifying residue wins
// unless the whole-chain override in finalize fires. That last-wins rule
// is inherited behavior and is kept for compatibility.
type groupScan struct {
	group Group
	bRes  [][]float64
}

// observe folds one residue's collected B-factors into the scan. Residues
// without heavy occupied atoms do not count toward the residue budget and
// leave the state untouched.
func (s groupScan) observe(bAtom []float64) groupScan {
	if len(bAtom) == 0 {
		return s
	}
	s.bRes = append(s.bRes, bAtom)
	if len(bAtom) > 1 {
		s.group = classifyResidue(bAtom)
	}
	return s
}

// classifyResidue decides the most detailed B-factor model that holds for
// a single residue with at least two atoms.
func classifyResidue(bAtom []float64) Group {
	b := append([]float64(nil), bAtom...)
	sort.Float64s(b)
	n := len(b)

	switch {
	case scalar.EqualWithinAbs(b[n-1], b[0], GroupMargin):
		return Residue1ADP
	case n > 3 &&
		scalar.EqualWithinAbs(b[n-1], b[n-2], GroupMargin) &&
		scalar.EqualWithinAbs(b[1], b[0], GroupMargin) &&
		!scalar.EqualWithinAbs(b[n-2], b[1], GroupMargin):
		return Residue2ADP
	default:
		return Individual
	}
}

// finalize applies the whole-chain override: with a full residue budget
// and matching first-atom B-factors in the first and last residue, the
// parameterization is chain-wide. A shared value of zero means no
// B-factors were refined at all.
func (s groupScan) finalize() Group {
	if len(s.bRes) > maxUsefulResidues-1 {
		first := s.bRes[0]
		last := s.bRes[len(s.bRes)-1]
		if scalar.EqualWithinAbs(first[0], last[0], GroupMargin) {
			if scalar.EqualWithinAbs(last[len(last)-1], 0, zeroTol) {
				return NoBFactors
			}
			return Overall
		}
	}
	return s.group
}
