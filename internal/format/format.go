// Package format renders a solver's verdict as a SAT or UNSAT line, followed
// for SAT by the model as a line of signed literals terminated by 0.
package format

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rhartert/cdclsat/internal/cdcl"
)

// WriteVerdict writes status and, when status is Satisfiable, the model as
// a single line of signed literals terminated by 0. An Unsatisfiable
// status is written as a single UNSAT line with no model.
func WriteVerdict(w io.Writer, status cdcl.Status, model []bool) error {
	bw := bufio.NewWriter(w)

	switch status {
	case cdcl.Satisfiable:
		fmt.Fprintln(bw, "SAT")
		for i, v := range model {
			if v {
				fmt.Fprintf(bw, "%d ", i+1)
			} else {
				fmt.Fprintf(bw, "-%d ", i+1)
			}
		}
		fmt.Fprintln(bw, "0")
	case cdcl.Unsatisfiable:
		fmt.Fprintln(bw, "UNSAT")
	default:
		return fmt.Errorf("format: unresolved status has no verdict to write")
	}

	return bw.Flush()
}
