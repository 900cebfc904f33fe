package figure

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Axis identifiers for the primary axes.
const (
	XAxis = "xaxis"
	YAxis = "yaxis"
)

// axisNameRegex matches "xaxis", "yaxis" and their numbered forms from 2 up.
var axisNameRegex = regexp.MustCompile(`^[xy]axis([2-9]|[1-9][0-9]+)?$`)

// IsAxisName reports whether name is a recognized axis identifier.
func IsAxisName(name string) bool {
	return axisNameRegex.MatchString(name)
}

// Autorange controls how the service computes an axis range.
// The zero value leaves the service default in place.
type Autorange string

const (
	AutorangeTrue     Autorange = "true"
	AutorangeFalse    Autorange = "false"
	AutorangeReversed Autorange = "reversed"
)

// Valid reports whether a is empty or one of the known directives.
func (a Autorange) Valid() bool {
	switch a {
	case "", AutorangeTrue, AutorangeFalse, AutorangeReversed:
		return true
	}
	return false
}

// MarshalJSON encodes true and false as JSON booleans and "reversed" as a string.
func (a Autorange) MarshalJSON() ([]byte, error) {
	switch a {
	case AutorangeTrue:
		return []byte("true"), nil
	case AutorangeFalse:
		return []byte("false"), nil
	case AutorangeReversed:
		return json.Marshal(string(a))
	}
	return nil, fmt.Errorf("invalid autorange %q", string(a))
}

// UnmarshalJSON accepts a boolean or the string "reversed".
func (a *Autorange) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*a = AutorangeTrue
		} else {
			*a = AutorangeFalse
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if Autorange(s) != AutorangeReversed {
		return fmt.Errorf("invalid autorange %q", s)
	}
	*a = AutorangeReversed
	return nil
}

// Axis types.
const (
	AxisTypeLinear   = "linear"
	AxisTypeLog      = "log"
	AxisTypeDate     = "date"
	AxisTypeCategory = "category"
)

// Axis holds display directives for a single axis.
type Axis struct {
	Autorange Autorange `json:"autorange,omitempty"`
	Title     string    `json:"title,omitempty"`
	Type      string    `json:"type,omitempty"`
	Range     []float64 `json:"range,omitempty"` // [min, max]; only meaningful with autorange false
}

// Validate checks the directive values.
func (a Axis) Validate() error {
	if !a.Autorange.Valid() {
		return fmt.Errorf("invalid autorange %q", string(a.Autorange))
	}
	switch a.Type {
	case "", AxisTypeLinear, AxisTypeLog, AxisTypeDate, AxisTypeCategory:
	default:
		return fmt.Errorf("invalid axis type %q", a.Type)
	}
	if a.Range != nil && len(a.Range) != 2 {
		return fmt.Errorf("range needs 2 values, got %d", len(a.Range))
	}
	return nil
}
