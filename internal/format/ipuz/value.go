package ipuz

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is the format's permissive string-or-integer union. Several fields
// (block and empty markers, solution entries, puzzle labels) may be either.
// Discrimination is explicit — try string, else integer — rather than
// reflection-driven, and values compare with ==.
type Value struct {
	str   string
	num   int
	isStr bool
}

// String returns a Value holding a JSON string.
func String(s string) Value { return Value{str: s, isStr: true} }

// Number returns a Value holding a JSON integer.
func Number(n int) Value { return Value{num: n} }

// IsString reports whether the value holds a string.
func (v Value) IsString() bool { return v.isStr }

// Str returns the held string; empty when the value is a number.
func (v Value) Str() string { return v.str }

// Num returns the held integer; zero when the value is a string.
func (v Value) Num() int { return v.num }

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isStr {
		return json.Marshal(v.str)
	}
	return json.Marshal(v.num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = String(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or an integer, got %s", data)
	}
	*v = Number(n)
	return nil
}

// String renders the value for error messages: strings quoted, numbers bare.
func (v Value) String() string {
	if v.isStr {
		return strconv.Quote(v.str)
	}
	return strconv.Itoa(v.num)
}

// labeledCell is one puzzle-grid entry: either a bare value or an object
// wrapping it as {"cell": value}. The wrapper form is preserved on
// round-trips only in the sense that the encoder always emits walls bare and
// everything else wrapped.
type labeledCell struct {
	value   Value
	wrapped bool
}

func (c labeledCell) MarshalJSON() ([]byte, error) {
	if c.wrapped {
		return json.Marshal(struct {
			Cell Value `json:"cell"`
		}{c.value})
	}
	return json.Marshal(c.value)
}

func (c *labeledCell) UnmarshalJSON(data []byte) error {
	var obj struct {
		Cell *Value `json:"cell"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Cell != nil {
		*c = labeledCell{value: *obj.Cell, wrapped: true}
		return nil
	}
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = labeledCell{value: v}
	return nil
}
