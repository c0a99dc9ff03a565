package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beka-birhanu/vinom-treasure/knapsack"
)

// writeDiagnostics exports what the solver left behind: the DP table as
// <name>.csv for the dynamic solver, the call count at the first base case as
// <name>.txt for the recursive one. It returns the written path, or "" when
// dir is empty.
func writeDiagnostics(dir, name string, sol knapsack.Solution) (string, error) {
	if dir == "" {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	switch {
	case sol.Table != nil:
		path := filepath.Join(dir, name+".csv")
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if err := sol.Table.WriteCSV(f); err != nil {
			f.Close()
			return "", err
		}
		return path, f.Close()
	case sol.Calls != nil:
		path := filepath.Join(dir, name+".txt")
		return path, os.WriteFile(path, []byte(strconv.Itoa(sol.Calls.CallsAtFirstBase)), 0o644)
	}
	return "", fmt.Errorf("no diagnostics for solver %q", sol.Algorithm)
}
