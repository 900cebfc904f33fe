package figure

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/plotpub/pkg/errors"
)

func TestNewScatter(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{1, 2}
	s := NewScatter(x, y)

	if s.Len() != 2 || len(s.Y) != 2 {
		t.Fatalf("NewScatter() len(x)=%d len(y)=%d, want 2 and 2", len(s.X), len(s.Y))
	}
	if s.UID == "" {
		t.Error("NewScatter() should assign a UID")
	}

	x[0] = 99
	if s.X[0] != 1 {
		t.Error("NewScatter() should copy its inputs")
	}

	if other := NewScatter(x, y); other.UID == s.UID {
		t.Error("NewScatter() UIDs should be unique")
	}
}

func TestScatterValidate(t *testing.T) {
	tests := []struct {
		name    string
		series  *Scatter
		wantErr bool
	}{
		{"equal lengths", &Scatter{X: []float64{1, 2}, Y: []float64{1, 2}}, false},
		{"lines mode", &Scatter{X: []float64{1}, Y: []float64{1}, Mode: ModeLines}, false},
		{"length mismatch", &Scatter{X: []float64{1, 2}, Y: []float64{1}}, true},
		{"empty", &Scatter{}, true},
		{"unknown mode", &Scatter{X: []float64{1}, Y: []float64{1}, Mode: "bars"}, true},
		{"nil", nil, true},
		{"NaN x", &Scatter{X: []float64{1, math.NaN()}, Y: []float64{1, 2}}, true},
		{"infinite y", &Scatter{X: []float64{1, 2}, Y: []float64{math.Inf(-1), 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFigure) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFigure)
			}
		})
	}
}

func TestIsAxisName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"xaxis", true},
		{"yaxis", true},
		{"xaxis2", true},
		{"yaxis10", true},
		{"xaxis1", false},
		{"xaxis0", false},
		{"xaxis02", false},
		{"zaxis", false},
		{"XAXIS", false},
		{"x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAxisName(tt.name); got != tt.want {
				t.Errorf("IsAxisName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLayoutSetAxis(t *testing.T) {
	l := NewLayout()

	if err := l.SetAxis(XAxis, Axis{Autorange: AutorangeReversed}); err != nil {
		t.Fatalf("SetAxis(xaxis) error: %v", err)
	}
	a, ok := l.Axis(XAxis)
	if !ok || a.Autorange != AutorangeReversed {
		t.Errorf("Axis(xaxis) = %+v, %v; want autorange reversed", a, ok)
	}

	err := l.SetAxis("zaxis", Axis{Autorange: AutorangeReversed})
	if !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("SetAxis(zaxis) error = %v, want %v", err, errors.ErrCodeInvalidAxis)
	}

	err = l.SetAxis(YAxis, Axis{Autorange: "sideways"})
	if !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("SetAxis(bad autorange) error = %v, want %v", err, errors.ErrCodeInvalidAxis)
	}

	err = l.SetAxis(YAxis, Axis{Range: []float64{1}})
	if !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("SetAxis(bad range) error = %v, want %v", err, errors.ErrCodeInvalidAxis)
	}

	if names := l.AxisNames(); len(names) != 1 || names[0] != XAxis {
		t.Errorf("AxisNames() = %v, want [xaxis]", names)
	}
}

func TestLayoutZeroValue(t *testing.T) {
	var l Layout
	if err := l.SetAxis(YAxis, Axis{Type: AxisTypeLog}); err != nil {
		t.Fatalf("SetAxis() on zero Layout error: %v", err)
	}
	if _, ok := l.Axis(YAxis); !ok {
		t.Error("Axis(yaxis) not found after SetAxis")
	}
}

func TestLayoutMarshalJSON(t *testing.T) {
	l := NewLayout()
	if err := l.SetAxis(XAxis, Axis{Autorange: AutorangeReversed}); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"xaxis":{"autorange":"reversed"}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestLayoutUnmarshalJSON(t *testing.T) {
	var l Layout
	err := json.Unmarshal([]byte(`{"title":"demo","xaxis":{"autorange":"reversed"},"yaxis":{"autorange":false,"range":[0,3]}}`), &l)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if l.Title != "demo" {
		t.Errorf("Title = %q, want %q", l.Title, "demo")
	}
	if a, _ := l.Axis(XAxis); a.Autorange != AutorangeReversed {
		t.Errorf("xaxis autorange = %q, want %q", a.Autorange, AutorangeReversed)
	}
	if a, _ := l.Axis(YAxis); a.Autorange != AutorangeFalse || len(a.Range) != 2 {
		t.Errorf("yaxis = %+v, want autorange false with range", a)
	}

	err = json.Unmarshal([]byte(`{"legend":{"x":1}}`), &l)
	if !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("Unmarshal(unknown key) error = %v, want %v", err, errors.ErrCodeInvalidAxis)
	}
}

func TestAutorangeJSON(t *testing.T) {
	tests := []struct {
		value Autorange
		json  string
	}{
		{AutorangeTrue, `true`},
		{AutorangeFalse, `false`},
		{AutorangeReversed, `"reversed"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.json {
				t.Errorf("Marshal() = %s, want %s", data, tt.json)
			}
			var got Autorange
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if got != tt.value {
				t.Errorf("Unmarshal() = %q, want %q", got, tt.value)
			}
		})
	}

	for _, bad := range []string{`"sideways"`, `"true"`, `"false"`, `""`, `1`} {
		var a Autorange
		if err := json.Unmarshal([]byte(bad), &a); err == nil {
			t.Errorf("Unmarshal(%s) = %q, want error", bad, a)
		}
	}
}

func TestNilLayoutAccessors(t *testing.T) {
	var fig Figure
	if err := json.Unmarshal([]byte(`{"data":[{"type":"scatter","x":[1],"y":[1]}]}`), &fig); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if fig.Layout != nil {
		t.Fatalf("Layout = %+v, want nil", fig.Layout)
	}
	if err := fig.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if names := fig.Layout.AxisNames(); len(names) != 0 {
		t.Errorf("AxisNames() = %v, want none", names)
	}
	if a, ok := fig.Layout.Axis(XAxis); ok || a.Autorange != "" {
		t.Errorf("Axis(xaxis) = %+v, %v; want zero, false", a, ok)
	}
}

func TestNewFigure(t *testing.T) {
	l := NewLayout()
	if err := l.SetAxis(XAxis, Axis{Autorange: AutorangeReversed}); err != nil {
		t.Fatal(err)
	}

	f, err := New(l, NewScatter([]float64{1, 2}, []float64{1, 2}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if len(f.Data) != 1 {
		t.Errorf("len(Data) = %d, want 1", len(f.Data))
	}

	if _, err := New(l); !errors.Is(err, errors.ErrCodeInvalidFigure) {
		t.Errorf("New() without series error = %v, want %v", err, errors.ErrCodeInvalidFigure)
	}

	bad := &Scatter{X: []float64{1, 2}, Y: []float64{1}}
	if _, err := New(nil, bad); !errors.Is(err, errors.ErrCodeInvalidFigure) {
		t.Errorf("New() with mismatched series error = %v, want %v", err, errors.ErrCodeInvalidFigure)
	}
}

func TestFigureJSON(t *testing.T) {
	l := NewLayout()
	if err := l.SetAxis(XAxis, Axis{Autorange: AutorangeReversed}); err != nil {
		t.Fatal(err)
	}
	s := NewScatter([]float64{1, 2}, []float64{1, 2})
	f, err := New(l, s)
	if err != nil {
		t.Fatal(err)
	}

	traces, err := f.TracesJSON()
	if err != nil {
		t.Fatalf("TracesJSON() error: %v", err)
	}
	want := `[{"type":"scatter","x":[1,2],"y":[1,2],"uid":"` + s.UID + `"}]`
	if string(traces) != want {
		t.Errorf("TracesJSON() = %s, want %s", traces, want)
	}

	layout, err := f.LayoutJSON()
	if err != nil {
		t.Fatalf("LayoutJSON() error: %v", err)
	}
	if string(layout) != `{"xaxis":{"autorange":"reversed"}}` {
		t.Errorf("LayoutJSON() = %s", layout)
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var decoded Figure
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if err := decoded.Validate(); err != nil {
		t.Errorf("decoded figure invalid: %v", err)
	}
	if a, _ := decoded.Layout.Axis(XAxis); a.Autorange != AutorangeReversed {
		t.Errorf("decoded xaxis autorange = %q", a.Autorange)
	}
}

func TestScatterUnmarshalRejectsOtherTraces(t *testing.T) {
	var s Scatter
	err := json.Unmarshal([]byte(`{"type":"bar","x":[1],"y":[1]}`), &s)
	if err == nil || !strings.Contains(err.Error(), "bar") {
		t.Errorf("Unmarshal(bar) error = %v, want unsupported trace type", err)
	}
}
