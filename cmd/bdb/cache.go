package main

import (
	"fmt"
	"os"

	"github.com/tikz/bdb/pdb"
)

const (
	dataDir = "data/"
	pdbDir  = dataDir + "pdb/"
	fileExt = ".pdb"
)

func makeDirs() {
	os.MkdirAll(pdbDir, os.ModePerm)
}

// loadPDB returns the cached entry for pdbID, downloading it from RCSB on
// a cache miss.
func loadPDB(pdbID string) (*pdb.PDB, error) {
	makeDirs()

	path := pdbDir + pdbID + fileExt
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		p, err := pdb.NewPDBFromID(pdbID)
		if err != nil {
			return nil, err
		}

		err = p.WriteFile(path)
		if err != nil {
			return nil, fmt.Errorf("write PDB: %v", err)
		}
		return p, nil
	}

	return pdb.NewPDBFromFile(path)
}
