package bfactor

import (
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tikz/bdb/pdb"
)

func TestMultiplyBFactors(t *testing.T) {
	p := testStructure(testChain("A",
		testResidue("A", 1, 0.05, 0.10),
		testResidue("A", 2, 0.20),
	))
	original := []float64{0.05, 0.10, 0.20}

	MultiplyBFactors(p)

	atoms := p.AllAtoms()
	for i, atom := range atoms {
		want := EightPiSquared * original[i]
		if math.Abs(atom.BFactor-want) > 1e-12 {
			t.Errorf("atom %d: expected %f, got %f", i, want, atom.BFactor)
		}
	}
}

func TestMultiplyBFactorsNotIdempotent(t *testing.T) {
	p := testStructure(testChain("A", testResidue("A", 1, 0.05)))

	MultiplyBFactors(p)
	MultiplyBFactors(p)

	want := EightPiSquared * EightPiSquared * 0.05
	got := p.AllAtoms()[0].BFactor
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected factor^2 scaling %f, got %f", want, got)
	}
}

const msqavEntry = `HEADER    OXIDOREDUCTASE                          01-JAN-90   2ABC
REMARK   3   B VALUE TYPE : MEAN-SQUARE AMPLITUDE OF ATOMIC VIBRATION
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.25           N
ATOM      2  CA  ALA A   1      11.639   4.848  -6.936  1.00  0.30           C
MASTER       40    0    0    0    0    0    0    2    2    1    0    1
END
`

func TestWriteMultiplied(t *testing.T) {
	dir := t.TempDir()
	xyzin := filepath.Join(dir, "in.pdb")
	xyzout := filepath.Join(dir, "out.bdb")
	if err := ioutil.WriteFile(xyzin, []byte(msqavEntry), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteMultiplied(xyzin, xyzout); err != nil {
		t.Fatal(err)
	}

	out, err := pdb.NewPDBFromFile(xyzout)
	if err != nil {
		t.Fatal(err)
	}
	atoms := out.AllAtoms()
	if len(atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(atoms))
	}
	// The B-factor column has two decimals: 8*pi^2*0.25 = 19.7392...
	if math.Abs(atoms[0].BFactor-19.74) > 1e-9 {
		t.Errorf("expected B-factor 19.74, got %f", atoms[0].BFactor)
	}

	raw, err := ioutil.ReadFile(xyzout)
	if err != nil {
		t.Fatal(err)
	}
	text := string(raw)
	if !strings.Contains(text, "HEADER") || !strings.Contains(text, "B VALUE TYPE") {
		t.Error("header records were not carried over")
	}
	if !strings.Contains(text, "MASTER") {
		t.Error("trailer records were not carried over")
	}
	if !strings.HasSuffix(strings.TrimRight(text, "\n"), "END") {
		t.Error("expected END as the final record")
	}
}
