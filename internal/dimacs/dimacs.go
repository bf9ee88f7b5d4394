// Package dimacs loads CNF formulas encoded in the DIMACS format into a
// solver.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/rhartert/cdclsat/internal/cdcl"
)

// Target receives the variables and clauses parsed from a DIMACS file. A
// *cdcl.Solver satisfies Target directly.
type Target interface {
	AddVariable() int
	AddClause([]cdcl.Literal) error
}

func openReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile reads a DIMACS CNF file and loads its formula into target. When
// gzipped is true, the file is decompressed on the fly.
func LoadFile(filename string, gzipped bool, target Target) error {
	r, err := openReader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()
	return Load(r, target)
}

// Load reads a DIMACS CNF stream and loads its formula into target.
func Load(r io.Reader, target Target) error {
	if err := dimacs.ReadBuilder(r, &builder{target: target}); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	return nil
}

// builder adapts a Target to the dimacs.Builder callback interface.
type builder struct {
	target Target
}

// Problem allocates the declared number of variables. The problem-type
// token is accepted whatever it says: nothing downstream reads it, and
// rejecting an unfamiliar token would only make loading more fragile than
// the formula it is trying to load.
func (b *builder) Problem(problem string, nVars, nClauses int) error {
	_ = problem
	_ = nClauses
	for i := 0; i < nVars; i++ {
		b.target.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]cdcl.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = cdcl.NewLiteral(-l-1, false)
		} else {
			clause[i] = cdcl.NewLiteral(l-1, true)
		}
	}
	return b.target.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil
}
