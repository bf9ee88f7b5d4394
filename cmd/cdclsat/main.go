// Command cdclsat reads a DIMACS CNF instance and reports whether it is
// satisfiable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rhartert/cdclsat/internal/cdcl"
	"github.com/rhartert/cdclsat/internal/dimacs"
	"github.com/rhartert/cdclsat/internal/format"
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the instance file as gzip-compressed",
)

var flagVerbose = flag.Bool(
	"verbose",
	false,
	"log each conflict's backtrack level to stderr",
)

type config struct {
	instanceFile string
	gzip         bool
	verbose      bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	return &config{
		instanceFile: flag.Arg(0), // empty means read from stdin
		gzip:         *flagGzip,
		verbose:      *flagVerbose,
	}, nil
}

func run(cfg *config) error {
	solver := cdcl.NewSolver(cdcl.Options{Trace: cfg.verbose})

	var err error
	if cfg.instanceFile == "" {
		err = dimacs.Load(os.Stdin, solver)
	} else {
		err = dimacs.LoadFile(cfg.instanceFile, cfg.gzip, solver)
	}
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Fprintf(os.Stderr, "c variables: %d\n", solver.NumVariables())
	fmt.Fprintf(os.Stderr, "c clauses:   %d\n", solver.NumClauses())

	t := time.Now()
	status := solver.Solve()
	elapsed := time.Since(t)

	fmt.Fprintf(os.Stderr, "c time (sec):  %f\n", elapsed.Seconds())
	fmt.Fprintf(os.Stderr, "c decisions:   %d\n", solver.Decisions)
	fmt.Fprintf(os.Stderr, "c conflicts:   %d\n", solver.Conflicts)
	fmt.Fprintf(os.Stderr, "c learned:     %d\n", solver.LearnedClauses)
	fmt.Fprintf(os.Stderr, "c status:      %s\n", status)

	return format.WriteVerdict(os.Stdout, status, solver.Model())
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
