package unit_test

import (
	"testing"

	"cssvalue/internal/unit"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		number string
		unit   string
		ok     bool
	}{
		{".23rem", ".23", "rem", true},
		{".2.3rem", ".2", ".3rem", true},
		{"2.", "2", ".", true},
		{"+2.", "+2", ".", true},
		{"-2.", "-2", ".", true},
		{"+-2.", "", "", false},
		{".", "", "", false},
		{".rem", "", "", false},
		{"1e4px", "1e4", "px", true},
		{"1em", "1", "em", true},
		{"1e10", "1e10", "", true},
		{"", "", "", false},
		{"e", "", "", false},
		{"e1", "", "", false},
		{"2rem", "2", "rem", true},
		{"2.000rem", "2.000", "rem", true},
		{"+2rem", "+2", "rem", true},
		{"-2rem", "-2", "rem", true},
		{"1.1rem", "1.1", "rem", true},
		{"+1.1rem", "+1.1", "rem", true},
		{"-1.1rem", "-1.1", "rem", true},
		{"1.1e1rem", "1.1e1", "rem", true},
		{"+1.1e1rem", "+1.1e1", "rem", true},
		{"-1.1e1rem", "-1.1e1", "rem", true},
		{"1.1e+1rem", "1.1e+1", "rem", true},
		{"1.1e-1rem", "1.1e-1", "rem", true},
		{"1.1e1e1rem", "1.1e1", "e1rem", true},
		{"1.1e-1e", "1.1e-1", "e", true},
		{"1.1e--++1e", "1.1", "e--++1e", true},
		{"1.1e--++1rem", "1.1", "e--++1rem", true},
		{"100+px", "100", "+px", true},
		{"100.0.0px", "100.0", ".0px", true},
		{"100e1epx", "100e1", "epx", true},
		{"100e1e1px", "100e1", "e1px", true},
		{"+100.1e+1e+1px", "+100.1e+1", "e+1px", true},
		{"-100.1e-1e-1px", "-100.1e-1", "e-1px", true},
		{".5px", ".5", "px", true},
		{"+.5px", "+.5", "px", true},
		{"-.5px", "-.5", "px", true},
		{".5e1px", ".5e1", "px", true},
		{"-.5e1px", "-.5e1", "px", true},
		{"+.5e1px", "+.5e1", "px", true},
		{".5e1e1px", ".5e1", "e1px", true},
		{".5.5px", ".5", ".5px", true},
		{"1e", "1", "e", true},
		{"1e1", "1e1", "", true},
		{"1ee", "1", "ee", true},
		{"1e+", "1", "e+", true},
		{"1e-", "1", "e-", true},
		{"1e+1", "1e+1", "", true},
		{"1e++1", "1", "e++1", true},
		{"1e--1", "1", "e--1", true},
		{"+10", "+10", "", true},
		{"-10", "-10", "", true},
		{"1E3Q", "1E3", "Q", true},
		{".a", "", "", false},
		{"+", "", "", false},
		{"-", "", "", false},
		{"-a", "", "", false},
		{"+a", "", "", false},
		{"+.a", "", "", false},
		{"-.a", "", "", false},
		{"..1", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := unit.Parse(tt.in)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if d.Number != tt.number || d.Unit != tt.unit {
				t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tt.in, d.Number, d.Unit, tt.number, tt.unit)
			}
			if d.String() != tt.in {
				t.Errorf("Number+Unit = %q, want %q", d.String(), tt.in)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	d, ok := unit.Parse("-1.5e2deg")
	if !ok {
		t.Fatal("expected a dimension")
	}
	f, err := d.Float()
	if err != nil || f != -150 {
		t.Fatalf("Float = %v, %v", f, err)
	}
	d, _ = unit.Parse(".5px")
	if f, _ := d.Float(); f != 0.5 {
		t.Fatalf("Float(.5) = %v", f)
	}
}
