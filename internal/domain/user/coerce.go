package user

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceFloat turns raw form input into a non-negative number. Empty,
// non-numeric, non-finite and negative inputs all become 0.
func CoerceFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// CoerceInt applies CoerceFloat and truncates toward zero.
func CoerceInt(raw string) int {
	v := CoerceFloat(raw)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// NumericInput is numeric form text kept raw until coercion. From JSON it
// accepts a number, a string or null. Any other JSON value reads as blank.
type NumericInput string

func (n *NumericInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericInput(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		*n = ""
		return nil
	}
	*n = NumericInput(num.String())
	return nil
}

func (n NumericInput) Int() int { return CoerceInt(string(n)) }

func (n NumericInput) Float() float64 { return CoerceFloat(string(n)) }
