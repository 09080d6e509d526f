package bfactor

import (
	"fmt"

	"github.com/tikz/bdb/pdb"
)

// testAtom builds a heavy, fully occupied atom with the given B-factor.
func testAtom(name string, b float64) *pdb.Atom {
	return &pdb.Atom{Name: name, Occupancy: 1, BFactor: b}
}

// testResidue builds a standard residue with one carbon atom per B-factor
// value.
func testResidue(chainID string, num int64, bvals ...float64) *pdb.Residue {
	res := &pdb.Residue{Chain: chainID, Number: num, Name: "ALA"}
	for i, b := range bvals {
		atom := testAtom(fmt.Sprintf("C%d", i+1), b)
		atom.Chain = chainID
		atom.ResidueNumber = num
		res.Atoms = append(res.Atoms, atom)
	}
	return res
}

// proteinResidue builds a residue carrying the full amino acid backbone,
// every atom at the given B-factor.
func proteinResidue(chainID string, num int64, b float64) *pdb.Residue {
	res := &pdb.Residue{Chain: chainID, Number: num, Name: "ALA"}
	for _, name := range []string{"N", "CA", "C", "O"} {
		atom := testAtom(name, b)
		atom.Chain = chainID
		atom.ResidueNumber = num
		res.Atoms = append(res.Atoms, atom)
	}
	return res
}

// nucleicResidue builds a residue carrying the full sugar-phosphate
// backbone.
func nucleicResidue(chainID string, num int64, b float64) *pdb.Residue {
	res := &pdb.Residue{Chain: chainID, Number: num, Name: "DG"}
	for _, name := range sugarPhosphateBackbone {
		atom := testAtom(name, b)
		atom.Chain = chainID
		atom.ResidueNumber = num
		res.Atoms = append(res.Atoms, atom)
	}
	return res
}

func testChain(id string, residues ...*pdb.Residue) *pdb.Chain {
	return &pdb.Chain{ID: id, Residues: residues}
}

func testStructure(chains ...*pdb.Chain) *pdb.PDB {
	return &pdb.PDB{Chains: chains}
}

// anisouAtom builds an atom with a tensor and a reported B-factor.
func anisouAtom(name string, b float64, u [6]float64) *pdb.Atom {
	atom := testAtom(name, b)
	atom.Anisou = &u
	return atom
}

// anisouStructure wraps atoms into a single-residue chain.
func anisouStructure(atoms ...*pdb.Atom) *pdb.PDB {
	res := &pdb.Residue{Chain: "A", Number: 1, Name: "ALA", Atoms: atoms}
	return testStructure(testChain("A", res))
}
