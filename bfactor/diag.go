// Package bfactor inspects how the atomic displacement values of a PDB
// entry were parameterized by the refinement program that produced it.
//
// It verifies reported isotropic B-factors against ANISOU tensors,
// classifies the B-factor group model of a structure, and converts
// mean-square displacement values into true isotropic B-factors.
package bfactor

import "fmt"

// Severity labels a diagnostic event.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Diagnostic is a structured event produced during analysis. Diagnostics
// are returned alongside results instead of being written to a global
// logger, so callers can assert on them.
type Diagnostic struct {
	Severity Severity
	Message  string
	Context  string
}

func (d Diagnostic) String() string {
	if d.Context == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s | %s", d.Severity, d.Context, d.Message)
}

type diagnostics []Diagnostic

func (ds *diagnostics) add(sev Severity, context, format string, args ...interface{}) {
	*ds = append(*ds, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Context:  context,
	})
}
