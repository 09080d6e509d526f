package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
)

// Residue represents a single residue from the PDB structure.
type Residue struct {
	Chain  string
	Number int64
	ICode  string
	Name   string

	// Hetatm is true for residues built from HETATM records, which
	// includes waters. Only standard residues take part in B-factor
	// classification.
	Hetatm bool

	Atoms []*Atom
}

// HasAtom returns true if the residue contains an atom with the given name.
func (r *Residue) HasAtom(name string) bool {
	for _, atom := range r.Atoms {
		if atom.Name == name {
			return true
		}
	}
	return false
}

// IsWater returns true for water residues.
func (r *Residue) IsWater() bool {
	return r.Name == "HOH" || r.Name == "DOD"
}

// sameAs reports whether an atom belongs to this residue.
func (r *Residue) sameAs(a *Atom) bool {
	return r.Chain == a.Chain && r.Number == a.ResidueNumber &&
		r.ICode == a.ICode && r.Name == a.Residue &&
		r.Hetatm == a.Hetatm
}

// Chain is an ordered sequence of residues sharing a chain identifier.
// Residue order follows the order of the records in the file, which the
// B-factor classifiers depend on.
type Chain struct {
	ID       string
	Residues []*Residue
}

// Atoms returns every atom in the chain, in residue order.
func (c *Chain) Atoms() []*Atom {
	var atoms []*Atom
	for _, res := range c.Residues {
		atoms = append(atoms, res.Atoms...)
	}
	return atoms
}

// ExtractResidues parses the ATOM, HETATM and ANISOU records from the raw
// PDB text and assembles the ordered chain/residue/atom hierarchy.
// Only the first model of multi-model files is read.
func (p *PDB) ExtractResidues() error {
	if len(p.RawPDB) == 0 {
		return errors.New("empty PDB data")
	}

	bySerial := make(map[int64]*Atom)

	scanner := bufio.NewScanner(bytes.NewReader(p.RawPDB))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}
		switch strings.TrimSpace(line[0:6]) {
		case "ATOM":
			atom := parseATMRecord(line, false)
			p.Atoms = append(p.Atoms, atom)
			p.addAtom(atom)
			bySerial[atom.Serial] = atom
		case "HETATM":
			atom := parseATMRecord(line, true)
			p.HetAtoms = append(p.HetAtoms, atom)
			p.addAtom(atom)
			p.addHetGroup(atom)
			bySerial[atom.Serial] = atom
		case "ANISOU":
			serial, u := parseAnisouRecord(line)
			if atom, ok := bySerial[serial]; ok {
				tensor := u
				atom.Anisou = &tensor
			}
		case "ENDMDL":
			// Remaining models repeat the same chains.
			if len(p.Atoms) > 0 || len(p.HetAtoms) > 0 {
				return p.checkAtoms()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return p.checkAtoms()
}

func (p *PDB) checkAtoms() error {
	if len(p.Atoms) == 0 && len(p.HetAtoms) == 0 {
		return errors.New("atoms not found")
	}
	return nil
}

// addAtom places an atom into its chain, creating chains and residues in
// file order as new identifiers appear.
func (p *PDB) addAtom(atom *Atom) {
	chain := p.Chain(atom.Chain)
	if chain == nil {
		chain = &Chain{ID: atom.Chain}
		p.Chains = append(p.Chains, chain)
	}

	if n := len(chain.Residues); n > 0 && chain.Residues[n-1].sameAs(atom) {
		res := chain.Residues[n-1]
		res.Atoms = append(res.Atoms, atom)
		return
	}

	chain.Residues = append(chain.Residues, &Residue{
		Chain:  atom.Chain,
		Number: atom.ResidueNumber,
		ICode:  atom.ICode,
		Name:   atom.Residue,
		Hetatm: atom.Hetatm,
		Atoms:  []*Atom{atom},
	})
}

// addHetGroup records the residue names seen in HETATM records, waters
// excluded, mirroring the HET records of the header.
func (p *PDB) addHetGroup(atom *Atom) {
	if atom.Residue == "HOH" || atom.Residue == "DOD" {
		return
	}
	for _, het := range p.HetGroups {
		if het == atom.Residue {
			return
		}
	}
	p.HetGroups = append(p.HetGroups, atom.Residue)
}
