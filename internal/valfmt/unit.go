package valfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cssvalue/internal/unit"
)

type UnitOutput struct {
	Value  string   `json:"value"`
	OK     bool     `json:"ok"`
	Number string   `json:"number,omitempty"`
	Unit   string   `json:"unit,omitempty"`
	Float  *float64 `json:"float,omitempty"`
}

// NewUnitOutput decomposes value.
func NewUnitOutput(value string) UnitOutput {
	d, ok := unit.Parse(value)
	out := UnitOutput{Value: value, OK: ok, Number: d.Number, Unit: d.Unit}
	if ok {
		if f, err := d.Float(); err == nil {
			out.Float = &f
		}
	}
	return out
}

// FormatUnitsPretty prints `value -> number "12" unit "px"` per line.
func FormatUnitsPretty(w io.Writer, outs []UnitOutput) error {
	for _, o := range outs {
		var err error
		if o.OK {
			_, err = fmt.Fprintf(w, "%q -> number %q unit %q\n", o.Value, o.Number, o.Unit)
		} else {
			_, err = fmt.Fprintf(w, "%q -> not a dimension\n", o.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatUnitsJSON writes the decompositions as an indented JSON array.
func FormatUnitsJSON(w io.Writer, outs []UnitOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(outs)
}
