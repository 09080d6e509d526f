package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"
	"regexp"
	"strings"
)

// coordPat matches the record names that make up the coordinate section.
var coordPat = regexp.MustCompile(`^(ATOM|HETATM|ANISOU|SIGATM|SIGUIJ|TER|MODEL|ENDMDL)`)

var endPat = regexp.MustCompile(`^END\s*$`)

// WriteCoordinates emits the ATOM/HETATM records of the entry in chain and
// residue order, with ANISOU records following their atoms, a TER after
// each chain and a final END. Header and trailer records are not written;
// use TransferHeaderAndTrailer to splice them back in.
func (p *PDB) WriteCoordinates(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, chain := range p.Chains {
		for _, atom := range chain.Atoms() {
			if _, err := bw.WriteString(formatATMRecord(atom) + "\n"); err != nil {
				return err
			}
			if atom.Anisou != nil {
				if _, err := bw.WriteString(formatAnisouRecord(atom) + "\n"); err != nil {
					return err
				}
			}
		}
		if _, err := bw.WriteString("TER\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("END\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// formatATMRecord renders an atom back into a fixed-width ATOM or HETATM
// line.
func formatATMRecord(a *Atom) string {
	tag := "ATOM"
	if a.Hetatm {
		tag = "HETATM"
	}
	return fmt.Sprintf("%-6s%5d %-4s%1s%3s %1s%4d%-1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%-2s",
		tag, a.Serial, atomNameField(a), a.AltLoc, a.Residue, a.Chain,
		a.ResidueNumber, a.ICode, a.X, a.Y, a.Z, a.Occupancy, a.BFactor,
		a.Element, a.Charge)
}

// formatAnisouRecord renders the tensor of an atom back into an ANISOU
// line, in 10^-4 square Angstrom integer units.
func formatAnisouRecord(a *Atom) string {
	u := a.Anisou
	return fmt.Sprintf("ANISOU%5d %-4s%1s%3s %1s%4d%-1s %7d%7d%7d%7d%7d%7d      %2s%-2s",
		a.Serial, atomNameField(a), a.AltLoc, a.Residue, a.Chain,
		a.ResidueNumber, a.ICode,
		tensorInt(u[0]), tensorInt(u[1]), tensorInt(u[2]),
		tensorInt(u[3]), tensorInt(u[4]), tensorInt(u[5]),
		a.Element, a.Charge)
}

func tensorInt(u float64) int64 {
	return int64(math.Round(u * 1e4))
}

// atomNameField applies the PDB alignment convention: names shorter than
// four characters start at the second column of the field.
func atomNameField(a *Atom) string {
	if len(a.Name) < 4 {
		return " " + a.Name
	}
	return a.Name
}

// HeaderAndTrailer splits the raw entry into the records before and after
// its coordinate section. The final END record is excluded from the
// trailer.
func HeaderAndTrailer(raw []byte) (header, trailer []string) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	first, last := -1, -1
	for i, line := range lines {
		if coordPat.MatchString(line) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return lines, nil
	}

	header = lines[:first]
	for _, line := range lines[last+1:] {
		if endPat.MatchString(line) {
			continue
		}
		trailer = append(trailer, line)
	}
	return header, trailer
}

// TransferHeaderAndTrailer reattaches the header and trailer records of
// the source entry around the coordinate block in xyzout. The merged file
// is written to a temporary path first and then moved over xyzout, so a
// partial write is never observed.
func TransferHeaderAndTrailer(src []byte, xyzout string) error {
	header, trailer := HeaderAndTrailer(src)

	coords, err := ioutil.ReadFile(xyzout)
	if err != nil {
		return fmt.Errorf("read coordinates: %v", err)
	}

	records := make([]string, 0, len(header)+len(trailer))
	records = append(records, header...)

	end := "END"
	scanner := bufio.NewScanner(bytes.NewReader(coords))
	for scanner.Scan() {
		line := scanner.Text()
		if endPat.MatchString(line) {
			end = line
			continue
		}
		records = append(records, line)
	}

	records = append(records, trailer...)
	records = append(records, end)

	tmp := xyzout + ".tmp"
	err = ioutil.WriteFile(tmp, []byte(strings.Join(records, "\n")+"\n"), 0644)
	if err != nil {
		return fmt.Errorf("write merged file: %v", err)
	}
	if err := os.Rename(tmp, xyzout); err != nil {
		return fmt.Errorf("replace %s: %v", xyzout, err)
	}
	return nil
}
