package cdcl

import "sort"

// clauseRecord is a stored clause: a duplicate-free literal multiset,
// plus whether it was learned by conflict analysis rather than part of
// the original input. The clause database is append-only, so a
// clause's index, once assigned, is a stable handle.
type clauseRecord struct {
	literals []Literal
	learnt   bool
}

// dedupe removes duplicate literals from lits in place, preserving the
// order of first occurrence. Clauses are duplicate-free multisets.
func dedupe(lits []Literal) []Literal {
	if len(lits) < 2 {
		return lits
	}
	seen := make(map[Literal]bool, len(lits))
	out := lits[:0]
	for _, l := range lits {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// resolve combines a and b on pivotVar: it concatenates the two clauses,
// removes both polarities of the pivot variable, and deduplicates the
// remaining literals by identity. The result is sorted by
// literal value so that resolution is deterministic independent of the
// order literals happened to occur in a or b.
func resolve(a, b []Literal, pivotVar int) []Literal {
	combined := make([]Literal, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)

	out := combined[:0]
	for _, l := range combined {
		if l.Var() != pivotVar {
			out = append(out, l)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return dedupe(out)
}
