package bfactor

import (
	"testing"

	"github.com/tikz/bdb/pdb"
)

func TestHasAminoAcidBackbone(t *testing.T) {
	res := proteinResidue("A", 1, 15)
	if !HasAminoAcidBackbone(res) {
		t.Error("expected a protein backbone")
	}

	res.Atoms = res.Atoms[1:] // drop N
	if HasAminoAcidBackbone(res) {
		t.Error("expected failure without N")
	}

	if HasAminoAcidBackbone(testResidue("A", 2, 15, 16)) {
		t.Error("expected failure for arbitrary atom names")
	}
}

func TestHasSugarPhosphateBackbone(t *testing.T) {
	res := nucleicResidue("A", 1, 15)
	if !HasSugarPhosphateBackbone(res) {
		t.Error("expected a nucleic acid backbone")
	}

	res.Atoms = res.Atoms[1:] // drop P
	if HasSugarPhosphateBackbone(res) {
		t.Error("expected failure without the phosphate")
	}
}

func TestIsProteinChain(t *testing.T) {
	chain := uniformChain("A", 12, 15)
	if !IsProteinChain(chain) {
		t.Error("expected a protein chain")
	}

	// A failing residue past the tenth must not matter.
	chain.Residues[11].Atoms = chain.Residues[11].Atoms[:1]
	if !IsProteinChain(chain) {
		t.Error("residues past the tenth must be ignored")
	}

	// A failing residue inside the window rejects the chain.
	chain.Residues[3].Atoms = chain.Residues[3].Atoms[:1]
	if IsProteinChain(chain) {
		t.Error("expected rejection on a broken backbone")
	}
}

func TestIsProteinChainSkipsHet(t *testing.T) {
	water := testResidue("A", 101, 50)
	water.Name = "HOH"
	water.Hetatm = true
	chain := testChain("A", water, proteinResidue("A", 1, 15))
	if !IsProteinChain(chain) {
		t.Error("HETATM residues must be skipped")
	}
}

func TestIsNucleicChainStartsAtSecondResidue(t *testing.T) {
	var residues []*pdb.Residue
	for i := 1; i <= 11; i++ {
		residues = append(residues, nucleicResidue("A", int64(i), 15))
	}
	// The 5' nucleotide has no phosphate.
	residues[0].Atoms = residues[0].Atoms[1:]

	if !IsNucleicChain(testChain("A", residues...)) {
		t.Error("the first residue must not be tested")
	}

	if IsNucleicChain(testChain("B")) {
		t.Error("an empty chain is not a nucleic chain")
	}
}

func TestTracePredicates(t *testing.T) {
	var ca, mixed []*pdb.Residue
	for i := 1; i <= 8; i++ {
		res := &pdb.Residue{Chain: "A", Number: int64(i), Name: "ALA",
			Atoms: []*pdb.Atom{testAtom("CA", 15)}}
		ca = append(ca, res)
	}
	if !IsCalphaTrace(testChain("A", ca...)) {
		t.Error("expected a Calpha trace")
	}
	if IsPhosTrace(testChain("A", ca...)) {
		t.Error("CA trace is not a P trace")
	}

	// Two full-backbone residues pull the CA ratio down to 8/14.
	mixed = append(mixed, ca[:6]...)
	mixed = append(mixed, proteinResidue("A", 9, 15), proteinResidue("A", 10, 15))
	if IsCalphaTrace(testChain("A", mixed...)) {
		t.Error("expected ratio below the trace threshold")
	}

	// Zero-atom chain: false by policy, not a division by zero.
	if IsCalphaTrace(testChain("A")) || IsPhosTrace(testChain("A")) {
		t.Error("a chain without atoms is not a trace")
	}
}
