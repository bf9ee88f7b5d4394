package cdcl

// propagate runs unit propagation at decision level level. It
// repeatedly scans the clause database in index order, classifying each
// clause under the current partial assignment:
//
//   - Satisfied (any literal true): skipped.
//   - Conflicting (every literal false): the scan stops and the clause's
//     index is returned.
//   - Unit (exactly one unassigned literal, all others false): the
//     unassigned literal is assigned true at level with that clause as
//     antecedent, and the scan restarts from the beginning.
//   - Otherwise: left alone.
//
// It returns -1 once a full scan completes with nothing left to
// propagate.
func (s *Solver) propagate(level int) int {
scan:
	for ci := 0; ci < len(s.clauses); ci++ {
		lits := s.clauses[ci].literals

		satisfied := false
		unassignedCount := 0
		var unassignedLit Literal

		for _, l := range lits {
			switch litValue(l, s.value[l.Var()]) {
			case True:
				satisfied = true
			case Unassigned:
				unassignedCount++
				unassignedLit = l
			}
			if satisfied {
				break
			}
		}
		if satisfied {
			continue
		}

		switch unassignedCount {
		case 0:
			return ci
		case 1:
			s.Propagations++
			s.assign(unassignedLit, level, Antecedent{Kind: AntecedentClause, Clause: ci})
			goto scan
		}
	}
	return -1
}
