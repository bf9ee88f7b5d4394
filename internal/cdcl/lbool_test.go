package cdcl

import "testing"

func TestLBool_Negate(t *testing.T) {
	tests := []struct {
		in   LBool
		want LBool
	}{
		{True, False},
		{False, True},
		{Unassigned, Unassigned},
	}
	for _, tt := range tests {
		if got := tt.in.Negate(); got != tt.want {
			t.Errorf("%s.Negate() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLitValue(t *testing.T) {
	pos := NewLiteral(0, true)
	neg := NewLiteral(0, false)

	tests := []struct {
		lit  Literal
		val  LBool
		want LBool
	}{
		{pos, Unassigned, Unassigned},
		{pos, True, True},
		{pos, False, False},
		{neg, True, False},
		{neg, False, True},
		{neg, Unassigned, Unassigned},
	}
	for _, tt := range tests {
		if got := litValue(tt.lit, tt.val); got != tt.want {
			t.Errorf("litValue(%s, %s) = %s, want %s", tt.lit, tt.val, got, tt.want)
		}
	}
}
