package cdcl

// AntecedentKind distinguishes why a variable is assigned: it was never
// assigned, it was a branching decision, or it was forced by unit
// propagation on a specific clause.
//
// A single sentinel integer could pack the same information more
// compactly, but this tagged-variant form is what the conflict analyzer
// and tests expect to read.
type AntecedentKind uint8

const (
	// AntecedentNone marks an unassigned variable.
	AntecedentNone AntecedentKind = iota
	// AntecedentDecision marks a variable assigned by the decision
	// heuristic rather than forced by propagation.
	AntecedentDecision
	// AntecedentClause marks a variable forced true by unit propagation
	// on the clause at index Clause.
	AntecedentClause
)

// Antecedent records why a variable holds its current value.
type Antecedent struct {
	Kind AntecedentKind
	// Clause is the index of the forcing clause. Only meaningful when
	// Kind == AntecedentClause.
	Clause int
}

var (
	noAntecedent       = Antecedent{Kind: AntecedentNone}
	decisionAntecedent = Antecedent{Kind: AntecedentDecision}
)
