// Package tlsanl wraps the CCP4 TLSANL program.
//
// TLSANL derives total isotropic B-factors for REFMAC files that carry
// residual B-factors and proper TLS descriptions, writing them out in the
// ATOM and ANISOU records. Detailed documentation:
// http://www.ccp4.ac.uk/html/tlsanl.html
package tlsanl

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// keywordedInput selects B-factor input with residue-numbered TLS ranges
// and full isotropic output.
const keywordedInput = "BINPUT t\nBRESID t\nISOOUT FULL\nNUMERIC\nEND\n"

// minOutputSize guards against silently truncated output; from the
// REFMAC deposition script at http://deposit.rcsb.org/adit/REFMAC.html.
const minOutputSize = 2000

// Run executes TLSANL on xyzin and writes full isotropic B-factors to
// xyzout. ATOM and HETATM records in the input are assumed to be sorted
// on chain ID and residue number, otherwise the TLS ranges cannot be
// interpreted.
//
// Program output is captured in tlsanl.log and tlsanl.err under logDir
// and echoed to stdout when verbose is set.
func Run(xyzin, xyzout, logDir string, verbose bool) error {
	cmd := exec.Command("tlsanl", "XYZIN", xyzin, "XYZOUT", xyzout)
	cmd.Stdin = strings.NewReader(keywordedInput)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if err := ioutil.WriteFile(filepath.Join(logDir, "tlsanl.log"), stdout.Bytes(), 0644); err != nil {
		return fmt.Errorf("write tlsanl.log: %v", err)
	}
	if err := ioutil.WriteFile(filepath.Join(logDir, "tlsanl.err"), stderr.Bytes(), 0644); err != nil {
		return fmt.Errorf("write tlsanl.err: %v", err)
	}
	if verbose {
		fmt.Print(stdout.String())
		fmt.Print(stderr.String())
	}

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return fmt.Errorf("TLSANL problem (exit code: %3d)", exitErr.ExitCode())
		}
		return fmt.Errorf("run tlsanl: %v", runErr)
	}

	fi, err := os.Stat(xyzout)
	if err != nil {
		return fmt.Errorf("TLSANL problem: %v", err)
	}
	if fi.Size() <= minOutputSize {
		return fmt.Errorf("TLSANL problem: output file too small (%d bytes)", fi.Size())
	}
	if stderr.Len() > 0 {
		return fmt.Errorf("TLSANL problem: %s", strings.TrimSpace(stderr.String()))
	}

	return nil
}
