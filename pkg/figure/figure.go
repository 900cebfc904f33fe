package figure

import (
	"encoding/json"

	"github.com/matzehuels/plotpub/pkg/errors"
)

// Figure is the combination of series and layout submitted for publishing.
type Figure struct {
	Data   []*Scatter `json:"data"`
	Layout *Layout    `json:"layout,omitempty"`
}

// New builds a figure from a layout and at least one series, and validates it.
// A nil layout is replaced by an empty one.
func New(layout *Layout, series ...*Scatter) (*Figure, error) {
	if layout == nil {
		layout = NewLayout()
	}
	f := &Figure{Data: series, Layout: layout}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that the figure has at least one series and that every
// series and the layout are well formed.
func (f *Figure) Validate() error {
	if f == nil {
		return errors.New(errors.ErrCodeInvalidFigure, "figure is nil")
	}
	if len(f.Data) == 0 {
		return errors.New(errors.ErrCodeInvalidFigure, "figure has no series")
	}
	for i, s := range f.Data {
		if err := s.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFigure, err, "series %d", i)
		}
	}
	return f.Layout.Validate()
}

// TracesJSON returns the JSON array of traces.
func (f *Figure) TracesJSON() ([]byte, error) {
	return json.Marshal(f.Data)
}

// LayoutJSON returns the JSON layout object, "{}" when no layout is set.
func (f *Figure) LayoutJSON() ([]byte, error) {
	if f.Layout == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f.Layout)
}
