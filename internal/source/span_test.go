package source

import (
	"testing"
)

func TestSpan_ShiftRight(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{
			name:     "shift normal span right by 5",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    5,
			expected: Span{File: 1, Start: 15, End: 25},
		},
		{
			name:     "shift by 0",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    0,
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "shift zero-length span",
			span:     Span{File: 3, Start: 0, End: 0},
			shift:    7,
			expected: Span{File: 3, Start: 7, End: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.ShiftRight(tt.shift)
			if result != tt.expected {
				t.Errorf("ShiftRight() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestSpan_In(t *testing.T) {
	sp := Span{Start: 2, End: 5}
	got := sp.In(4, 100)
	want := Span{File: 4, Start: 102, End: 105}
	if got != want {
		t.Errorf("In() = %+v, want %+v", got, want)
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover() = %+v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover() across files must return receiver, got %+v", got)
	}
}

func TestSpan_EmptyLen(t *testing.T) {
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("expected empty span")
	}
	if l := (Span{Start: 3, End: 10}).Len(); l != 7 {
		t.Errorf("Len() = %d, want 7", l)
	}
	if s := (Span{File: 2, Start: 1, End: 4}).String(); s != "2:1-4" {
		t.Errorf("String() = %q", s)
	}
}
