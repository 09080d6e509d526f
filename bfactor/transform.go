package bfactor

import (
	"fmt"
	"math"
	"os"

	"github.com/tikz/bdb/pdb"
)

// EightPiSquared converts a mean-square displacement (Uiso) into an
// isotropic B-factor: B = 8*pi^2 * U.
var EightPiSquared = 8 * math.Pi * math.Pi

// MultiplyBFactors multiplies the B-factor of every atom in the structure
// by 8*pi^2, in place. It is used when the refinement program reported
// mean-square displacements in the B-factor column.
//
// The transform is not idempotent: applying it twice scales the original
// values by the square of the factor.
func MultiplyBFactors(p *pdb.PDB) {
	for _, atom := range p.AllAtoms() {
		atom.BFactor = EightPiSquared * atom.BFactor
	}
}

// WriteMultiplied reads the entry at xyzin, multiplies its B-factor
// column by 8*pi^2 and writes the result to xyzout, with the header and
// trailer records of the input carried over. The output file is replaced
// atomically.
func WriteMultiplied(xyzin, xyzout string) error {
	p, err := pdb.NewPDBFromFile(xyzin)
	if err != nil {
		return err
	}

	MultiplyBFactors(p)

	out, err := os.Create(xyzout)
	if err != nil {
		return fmt.Errorf("create %s: %v", xyzout, err)
	}
	err = p.WriteCoordinates(out)
	out.Close()
	if err != nil {
		return fmt.Errorf("write coordinates: %v", err)
	}

	return pdb.TransferHeaderAndTrailer(p.RawPDB, xyzout)
}
