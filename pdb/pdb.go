package pdb

import (
	"fmt"
	"io/ioutil"

	"github.com/tikz/bdb/http"
)

// PDB represents a single PDB entry.
type PDB struct {
	ID     string `json:"id"`     // PDB ID
	PDBURL string `json:"pdbUrl"` // RCSB download URL for the PDB file

	Atoms     []*Atom  `json:"-"`         // ATOM records in the structure
	HetAtoms  []*Atom  `json:"-"`         // HETATM records in the structure
	HetGroups []string `json:"hetGroups"` // HET groups in the structure

	// Chains holds the chains in file order; each chain holds its
	// residues in file order.
	Chains []*Chain `json:"-"`

	RawPDB []byte `json:"-"` // PDB file raw data

	LocalPath string `json:"-"` // local path for the PDB file
}

// NewPDBFromRaw constructs a new instance from raw bytes.
// This is useful for parsing PDB output files generated from external tools.
func NewPDBFromRaw(raw []byte) (*PDB, error) {
	pdb := PDB{RawPDB: raw}

	err := pdb.ExtractResidues()
	if err != nil {
		return nil, fmt.Errorf("parse: %v", err)
	}

	return &pdb, nil
}

// NewPDBFromFile constructs a new instance from a file on disk.
func NewPDBFromFile(path string) (*PDB, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read PDB file: %v", err)
	}

	pdb, err := NewPDBFromRaw(raw)
	if err != nil {
		return nil, err
	}

	pdb.LocalPath = path
	return pdb, nil
}

// NewPDBFromID constructs a new instance from a PDB ID, fetching and
// parsing the entry from RCSB.
func NewPDBFromID(pdbID string) (*PDB, error) {
	url := "https://files.rcsb.org/download/" + pdbID + ".pdb"
	raw, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download PDB file: %v", err)
	}

	pdb, err := NewPDBFromRaw(raw)
	if err != nil {
		return nil, err
	}

	pdb.ID = pdbID
	pdb.PDBURL = url
	return pdb, nil
}

// Chain returns the chain with the given identifier, or nil.
func (p *PDB) Chain(id string) *Chain {
	for _, chain := range p.Chains {
		if chain.ID == id {
			return chain
		}
	}
	return nil
}

// AllAtoms returns every atom in the entry in chain and residue order,
// HETATM records included.
func (p *PDB) AllAtoms() []*Atom {
	var atoms []*Atom
	for _, chain := range p.Chains {
		atoms = append(atoms, chain.Atoms()...)
	}
	return atoms
}

// WriteFile writes the raw PDB contents to a file.
func (p *PDB) WriteFile(path string) error {
	err := ioutil.WriteFile(path, p.RawPDB, 0644)
	if err != nil {
		return fmt.Errorf("write PDB file: %v", err)
	}

	p.LocalPath = path
	return nil
}
