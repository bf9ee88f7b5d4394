package dimacs

import (
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
)

// LoadModelsFile reads a file containing one or more models, each written
// as a DIMACS clause line of signed literals terminated by 0, and returns
// them as boolean assignments. It is used by tests that check a solver's
// output against a fixture of known satisfying assignments.
func LoadModelsFile(filename string) ([][]bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer f.Close()
	return LoadModels(f)
}

// LoadModels reads models from r in the same format as LoadModelsFile.
func LoadModels(r io.Reader) ([][]bool, error) {
	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars, nClauses int) error {
	return fmt.Errorf("dimacs: model fixtures must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
