// bdb inspects the B-factor parameterization of PDB entries.
//
// It can verify that reported B-factors match the Beq values derived from
// ANISOU records, determine the most likely B-factor group model, convert
// a mean-square displacement column into true isotropic B-factors, and
// wrap TLSANL for files refined with TLS descriptions.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/soniakeys/exit"

	"github.com/tikz/bdb/bfactor"
	"github.com/tikz/bdb/pdb"
	"github.com/tikz/bdb/tlsanl"
)

func main() {
	defer exit.Handler()
	log.SetFlags(0)
	log.SetPrefix("bdb: ")

	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "check":
		runCheck(os.Args[2:])
	case "calc":
		runCalc(os.Args[2:])
	case "tlsanl":
		runTLSANL(os.Args[2:])
	case "fetch":
		runFetch(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  bdb check (-beq | -group) [-v] <pdb-file>
  bdb calc <xyzin> <xyzout>
  bdb tlsanl [-v] [-logdir dir] <xyzin> <xyzout>
  bdb fetch <pdb-id>`)
	os.Exit(2)
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	beq := fs.Bool("beq", false,
		"check if Beq values calculated from the ANISOU records are equal to the B-factors in the ATOM records")
	group := fs.Bool("group", false,
		"determine the most likely B-factor model (overall, one or two per residue, or individual); TLS groups are not taken into account")
	verbose := fs.Bool("v", false, "show verbose output")
	fs.Parse(args)

	if *beq == *group || fs.NArg() != 1 {
		usage()
	}

	p, err := pdb.NewPDBFromFile(fs.Arg(0))
	if err != nil {
		exit.Log(err)
	}

	if *beq {
		result, diags, err := bfactor.CheckBeq(p)
		if err != nil {
			exit.Log(err)
		}
		logDiagnostics(diags, *verbose)
		reportBeq(result)
		return
	}

	result, diags := bfactor.DetermineBGroup(p)
	logDiagnostics(diags, *verbose)

	// JSON output matches the record the databank pipeline stores.
	out, err := json.Marshal(result)
	if err != nil {
		exit.Log(err)
	}
	fmt.Println(string(out))
}

// reportBeq summarizes a Beq check the way the analysis pipeline expects:
// all reproduced, partially reproduced with a percentage, or not
// applicable.
func reportBeq(result bfactor.BeqResult) {
	if result.BeqIdentical == nil {
		log.Print("No ANISOU records.")
		return
	}
	if !*result.CorrectUij {
		log.Print("WARNING: one or more B-factors could only be reproduced " +
			"by a non-standard combination of Uij values in the " +
			"corresponding ANISOU record.")
	}
	if *result.BeqIdentical == 1 {
		log.Printf("The B-factors in the ATOM records could all be "+
			"reproduced within %.3f A**2 by calculating Beq from the "+
			"corresponding ANISOU records.", bfactor.BeqMargin)
	} else {
		log.Printf("WARNING: %3.2f%% of the B-factors in the ATOM records "+
			"could not be reproduced within %.3f A**2 by calculating Beq "+
			"from the corresponding ANISOU records.",
			100*(1-*result.BeqIdentical), bfactor.BeqMargin)
	}
}

func logDiagnostics(diags []bfactor.Diagnostic, verbose bool) {
	for _, d := range diags {
		if d.Severity == bfactor.Info && !verbose {
			continue
		}
		log.Print(d)
	}
}

func runCalc(args []string) {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 2 {
		usage()
	}

	log.Print("Calculating B-factors from Uiso values...")
	if err := bfactor.WriteMultiplied(fs.Arg(0), fs.Arg(1)); err != nil {
		exit.Log(err)
	}
}

func runTLSANL(args []string) {
	fs := flag.NewFlagSet("tlsanl", flag.ExitOnError)
	verbose := fs.Bool("v", false, "show TLSANL output")
	logDir := fs.String("logdir", ".", "directory for tlsanl.log and tlsanl.err")
	fs.Parse(args)
	if fs.NArg() != 2 {
		usage()
	}

	if err := tlsanl.Run(fs.Arg(0), fs.Arg(1), *logDir, *verbose); err != nil {
		exit.Log(err)
	}
	log.Print("TLSANL ran without problems.")
}

func runFetch(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
	}

	p, err := loadPDB(fs.Arg(0))
	if err != nil {
		exit.Log(err)
	}
	log.Printf("%s: %d chains, %d atoms", fs.Arg(0), len(p.Chains), len(p.Atoms))
}
