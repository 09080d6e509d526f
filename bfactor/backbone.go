package bfactor

import "github.com/tikz/bdb/pdb"

// checkMax is the number of leading standard residues inspected by the
// chain composition tests. Chains are assumed not to mix protein and
// nucleic acid residues, so a greedy scan of the head is enough.
const checkMax = 10

// traceRatio is the fraction of identically named atoms above which a
// chain counts as a backbone trace.
const traceRatio = 0.75

var aminoAcidBackbone = []string{"N", "CA", "C", "O"}

var sugarPhosphateBackbone = []string{
	"P", "OP1", "OP2", "O5'", "C5'", "C4'",
	"O4'", "C3'", "O3'", "C2'", "C1'",
}

// HasAminoAcidBackbone returns true if the residue's backbone looks like
// protein.
func HasAminoAcidBackbone(res *pdb.Residue) bool {
	for _, name := range aminoAcidBackbone {
		if !res.HasAtom(name) {
			return false
		}
	}
	return true
}

// HasSugarPhosphateBackbone returns true if the residue's backbone looks
// like nucleic acid.
func HasSugarPhosphateBackbone(res *pdb.Residue) bool {
	for _, name := range sugarPhosphateBackbone {
		if !res.HasAtom(name) {
			return false
		}
	}
	return true
}

// IsProteinChain returns true if the first 10 standard residues of the
// chain look like amino acids. HETATM and water residues are skipped. A
// chain with fewer than 10 standard residues passes if none of them fail,
// so a chain without any standard residue passes vacuously.
func IsProteinChain(chain *pdb.Chain) bool {
	checked := 0
	for _, res := range chain.Residues {
		if checked >= checkMax {
			break
		}
		if res.Hetatm {
			continue
		}
		if !HasAminoAcidBackbone(res) {
			return false
		}
		checked++
	}
	return true
}

// IsNucleicChain returns true if the leading standard residues of the
// chain look like nucleotides. The scan starts at the second residue: the
// first nucleotide lacks the 5' phosphate and would always fail the
// backbone test. A chain with no residues returns false.
func IsNucleicChain(chain *pdb.Chain) bool {
	if len(chain.Residues) == 0 {
		return false
	}
	checked := 0
	for _, res := range chain.Residues[1:] {
		if checked >= checkMax {
			break
		}
		if res.Hetatm {
			continue
		}
		if !HasSugarPhosphateBackbone(res) {
			return false
		}
		checked++
	}
	return true
}

// IsCalphaTrace returns true if at least 75% of the atoms in the chain
// are CA atoms. The ratio accounts for unexpected residues and atoms,
// such as UNK residues and het groups listed as ATOMs. A chain with no
// atoms returns false.
func IsCalphaTrace(chain *pdb.Chain) bool {
	return isTrace(chain, "CA")
}

// IsPhosTrace returns true if at least 75% of the atoms in the chain are
// backbone phosphorus atoms. A chain with no atoms returns false.
func IsPhosTrace(chain *pdb.Chain) bool {
	return isTrace(chain, "P")
}

func isTrace(chain *pdb.Chain, name string) bool {
	atoms := chain.Atoms()
	if len(atoms) == 0 {
		return false
	}
	count := 0
	for _, atom := range atoms {
		if atom.Name == name {
			count++
		}
	}
	return float64(count)/float64(len(atoms)) >= traceRatio
}
