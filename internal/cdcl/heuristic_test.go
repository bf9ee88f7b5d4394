package cdcl

import "testing"

func TestFrequencyOrder_selectsMaxFrequency(t *testing.T) {
	o := newFrequencyOrder()
	o.addVariable(0, 1)
	o.addVariable(1, 5)
	o.addVariable(2, 3)

	assigned := map[int]bool{}
	isAssigned := func(v int) bool { return assigned[v] }

	v, ok := o.selectNext(isAssigned)
	if !ok || v != 1 {
		t.Fatalf("selectNext() = (%d, %v), want (1, true)", v, ok)
	}
}

func TestFrequencyOrder_tieBreaksBySmallestIndex(t *testing.T) {
	o := newFrequencyOrder()
	o.addVariable(0, 2)
	o.addVariable(1, 2)
	o.addVariable(2, 2)

	assigned := map[int]bool{}
	isAssigned := func(v int) bool { return assigned[v] }

	v, ok := o.selectNext(isAssigned)
	if !ok || v != 0 {
		t.Fatalf("selectNext() = (%d, %v), want (0, true) on an exact tie", v, ok)
	}
}

func TestFrequencyOrder_skipsAssignedVariables(t *testing.T) {
	o := newFrequencyOrder()
	o.addVariable(0, 5)
	o.addVariable(1, 1)

	assigned := map[int]bool{0: true}
	isAssigned := func(v int) bool { return assigned[v] }

	v, ok := o.selectNext(isAssigned)
	if !ok || v != 1 {
		t.Fatalf("selectNext() = (%d, %v), want (1, true) once variable 0 is assigned", v, ok)
	}
}

func TestFrequencyOrder_reinsertMakesVariableSelectableAgain(t *testing.T) {
	o := newFrequencyOrder()
	o.addVariable(0, 1)
	o.addVariable(1, 5)

	assigned := map[int]bool{}
	isAssigned := func(v int) bool { return assigned[v] }

	v, _ := o.selectNext(isAssigned)
	assigned[v] = true // v == 1

	o.reinsert(1, 5)
	delete(assigned, 1)

	v, ok := o.selectNext(isAssigned)
	if !ok || v != 1 {
		t.Fatalf("selectNext() after reinsert = (%d, %v), want (1, true)", v, ok)
	}
}

func TestFrequencyOrder_emptyReportsFalse(t *testing.T) {
	o := newFrequencyOrder()
	if _, ok := o.selectNext(func(int) bool { return false }); ok {
		t.Errorf("selectNext() on an empty order should report false")
	}
}
