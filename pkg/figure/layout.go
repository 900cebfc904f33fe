package figure

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/matzehuels/plotpub/pkg/errors"
)

// Layout maps axis identifiers to their display overrides.
// It marshals flat, e.g. {"xaxis": {"autorange": "reversed"}}.
type Layout struct {
	Title string
	axes  map[string]Axis
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{axes: make(map[string]Axis)}
}

// SetAxis sets the directives for the named axis, replacing any previous value.
// It returns INVALID_AXIS if name is not a recognized axis identifier or the
// directives are invalid.
func (l *Layout) SetAxis(name string, a Axis) error {
	if !IsAxisName(name) {
		return errors.New(errors.ErrCodeInvalidAxis, "unrecognized axis %q", name)
	}
	if err := a.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidAxis, err, "axis %q", name)
	}
	if l.axes == nil {
		l.axes = make(map[string]Axis)
	}
	l.axes[name] = a
	return nil
}

// Axis returns the directives for the named axis.
func (l *Layout) Axis(name string) (Axis, bool) {
	if l == nil {
		return Axis{}, false
	}
	a, ok := l.axes[name]
	return a, ok
}

// AxisNames returns the configured axis identifiers in sorted order.
func (l *Layout) AxisNames() []string {
	if l == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(l.axes))
}

// Validate checks every axis entry.
func (l *Layout) Validate() error {
	if l == nil {
		return nil
	}
	for _, name := range l.AxisNames() {
		if !IsAxisName(name) {
			return errors.New(errors.ErrCodeInvalidAxis, "unrecognized axis %q", name)
		}
		if err := l.axes[name].Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidAxis, err, "axis %q", name)
		}
	}
	return nil
}

// MarshalJSON encodes the layout as a flat plotly layout object.
func (l Layout) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.axes)+1)
	if l.Title != "" {
		out["title"] = l.Title
	}
	for name, a := range l.axes {
		out[name] = a
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a flat plotly layout object. Keys other than
// "title" must be recognized axis identifiers.
func (l *Layout) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	next := Layout{axes: make(map[string]Axis, len(raw))}
	for key, value := range raw {
		if key == "title" {
			if err := json.Unmarshal(value, &next.Title); err != nil {
				return err
			}
			continue
		}
		var a Axis
		if err := json.Unmarshal(value, &a); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidAxis, err, "axis %q", key)
		}
		if err := next.SetAxis(key, a); err != nil {
			return err
		}
	}
	*l = next
	return nil
}
