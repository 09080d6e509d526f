package pdb

import (
	"fmt"
	"strconv"
	"strings"
)

// Atom represents a single atom in the structure.
// It contains the columns from an ATOM or HETATM record in a PDB file,
// plus the anisotropic displacement tensor when a matching ANISOU record
// is present.
type Atom struct {
	// PDB columns for the ATOM/HETATM tag
	Serial        int64
	Name          string
	AltLoc        string
	Residue       string
	Chain         string
	ResidueNumber int64
	ICode         string
	X             float64
	Y             float64
	Z             float64
	Occupancy     float64
	BFactor       float64
	Element       string
	Charge        string

	// Hetatm is true when the atom came from a HETATM record.
	Hetatm bool

	// Anisou holds U11, U22, U33, U12, U13, U23 in square Angstroms,
	// converted from the 10^-4 integer columns of the ANISOU record.
	// It is nil for atoms without an ANISOU record.
	Anisou *[6]float64
}

// FullID returns a short identifier for log and diagnostic messages.
func (a *Atom) FullID() string {
	return fmt.Sprintf("%s %d%s %s",
		a.Chain, a.ResidueNumber, a.ICode, a.Name)
}

// IsHydrogen returns true if the atom name identifies a hydrogen.
func (a *Atom) IsHydrogen() bool {
	return strings.HasPrefix(a.Name, "H")
}

// pad widens a record line to the full 80 columns so the fixed column
// slices below are always in range.
func pad(line string) string {
	if len(line) >= 80 {
		return line
	}
	return line + strings.Repeat(" ", 80-len(line))
}

// parseATMRecord parses a single ATOM or HETATM line.
//
// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ATOM
func parseATMRecord(line string, hetatm bool) *Atom {
	line = pad(line)
	atom := Atom{Hetatm: hetatm}

	atom.Serial, _ = strconv.ParseInt(strings.TrimSpace(line[6:11]), 10, 64)
	atom.Name = strings.TrimSpace(line[12:16])
	atom.AltLoc = strings.TrimSpace(line[16:17])
	atom.Residue = strings.TrimSpace(line[17:20])
	atom.Chain = line[21:22]
	atom.ResidueNumber, _ = strconv.ParseInt(strings.TrimSpace(line[22:26]), 10, 64)
	atom.ICode = strings.TrimSpace(line[26:27])
	atom.X, _ = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	atom.Y, _ = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	atom.Z, _ = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	atom.BFactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	atom.Element = strings.TrimSpace(line[76:78])
	atom.Charge = strings.TrimSpace(line[78:80])

	return &atom
}

// parseAnisouRecord parses an ANISOU line and returns the atom serial
// number together with the tensor scaled to square Angstroms.
//
// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ANISOU
func parseAnisouRecord(line string) (int64, [6]float64) {
	line = pad(line)

	serial, _ := strconv.ParseInt(strings.TrimSpace(line[6:11]), 10, 64)

	var u [6]float64
	for i := 0; i < 6; i++ {
		col := 28 + 7*i
		v, _ := strconv.ParseInt(strings.TrimSpace(line[col:col+7]), 10, 64)
		u[i] = float64(v) / 1e4
	}

	return serial, u
}
