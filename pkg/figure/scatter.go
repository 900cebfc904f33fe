package figure

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/plotpub/pkg/errors"
)

// TraceScatter is the plotly trace type for scatter series.
const TraceScatter = "scatter"

// Scatter modes.
const (
	ModeMarkers      = "markers"
	ModeLines        = "lines"
	ModeLinesMarkers = "lines+markers"
)

// Scatter is one plotted data trace of paired x/y values.
type Scatter struct {
	X    []float64
	Y    []float64
	Name string // Legend label (optional)
	Mode string // One of the Mode* constants; empty leaves the service default
	UID  string // Stable trace identifier
}

// NewScatter creates a scatter series over x and y with a fresh UID.
// The slices are copied; later changes to x or y do not affect the series.
func NewScatter(x, y []float64) *Scatter {
	return &Scatter{
		X:   append([]float64(nil), x...),
		Y:   append([]float64(nil), y...),
		UID: uuid.NewString(),
	}
}

// Len returns the number of points in the series.
func (s *Scatter) Len() int { return len(s.X) }

// Validate checks that the series has data and that x and y line up.
func (s *Scatter) Validate() error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidFigure, "series is nil")
	}
	if len(s.X) != len(s.Y) {
		return errors.New(errors.ErrCodeInvalidFigure, "series has %d x values and %d y values", len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return errors.New(errors.ErrCodeInvalidFigure, "series has no points")
	}
	for i := range s.X {
		if !finite(s.X[i]) || !finite(s.Y[i]) {
			return errors.New(errors.ErrCodeInvalidFigure, "point %d is not finite: (%v, %v)", i, s.X[i], s.Y[i])
		}
	}
	switch s.Mode {
	case "", ModeMarkers, ModeLines, ModeLinesMarkers:
	default:
		return errors.New(errors.ErrCodeInvalidFigure, "unknown scatter mode %q", s.Mode)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type scatterJSON struct {
	Type string    `json:"type"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	Name string    `json:"name,omitempty"`
	Mode string    `json:"mode,omitempty"`
	UID  string    `json:"uid,omitempty"`
}

// MarshalJSON encodes the series as a plotly scatter trace.
func (s Scatter) MarshalJSON() ([]byte, error) {
	return json.Marshal(scatterJSON{
		Type: TraceScatter,
		X:    s.X,
		Y:    s.Y,
		Name: s.Name,
		Mode: s.Mode,
		UID:  s.UID,
	})
}

// UnmarshalJSON decodes a plotly scatter trace.
func (s *Scatter) UnmarshalJSON(data []byte) error {
	var raw scatterJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "" && raw.Type != TraceScatter {
		return errors.New(errors.ErrCodeInvalidFigure, "unsupported trace type %q", raw.Type)
	}
	*s = Scatter{X: raw.X, Y: raw.Y, Name: raw.Name, Mode: raw.Mode, UID: raw.UID}
	return nil
}
