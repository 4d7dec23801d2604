package recordengine

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/OhadNir9/eddington/plotting"
)

// OpKindString is a type alias for string, representing the kind of a recorded operation.
type OpKindString = string

const (
	OpAddSubplot OpKindString = "add_subplot"
	OpPlot       OpKindString = "plot"
	OpLegend     OpKindString = "legend"
	OpSetTitle   OpKindString = "set_title"
	OpSetXLabel  OpKindString = "set_x_label"
	OpSetYLabel  OpKindString = "set_y_label"
	OpGrid       OpKindString = "grid"
	OpSave       OpKindString = "save"
)

// Op is one recorded surface operation. Only the fields relevant to the
// operation kind are populated.
type Op struct {
	Kind  OpKindString `json:"kind"`
	X     []float64    `json:"x,omitempty"`
	Y     []float64    `json:"y,omitempty"`
	Label string       `json:"label,omitempty"`
	Text  string       `json:"text,omitempty"`
	On    bool         `json:"on,omitempty"`
}

// Figure implements plotting.Figure by recording every surface call.
type Figure struct {
	ops  []Op
	axes *axes
}

// New creates a new recording Figure.
func New() *Figure {
	return &Figure{}
}

// NewFigure is a plotting.FigureFactory for recording figures.
func NewFigure() plotting.Figure {
	return New()
}

// AddSubplot returns the axes of the figure. Every call is recorded; the
// same axes are returned each time.
func (f *Figure) AddSubplot() plotting.Axes {
	f.record(Op{Kind: OpAddSubplot})

	if f.axes == nil {
		f.axes = &axes{figure: f}
	}

	return f.axes
}

// Save records the save operation and writes the full operation log as JSON
// to the given path.
func (f *Figure) Save(path string) error {
	f.record(Op{Kind: OpSave, Text: path})

	encoded, err := f.OpsJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(path, encoded, 0o644)
}

// Ops returns a copy of all recorded operations, in call order.
func (f *Figure) Ops() []Op {
	return append([]Op(nil), f.ops...)
}

// OpsOfKind returns a copy of the recorded operations of one kind, in call order.
func (f *Figure) OpsOfKind(kind OpKindString) []Op {
	var ops []Op
	for _, op := range f.ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}

	return ops
}

// OpsJSON encodes the recorded operation log as JSON.
func (f *Figure) OpsJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(f.ops)
}

func (f *Figure) record(op Op) {
	f.ops = append(f.ops, op)
}

// axes implements plotting.Axes by recording on the owning figure.
type axes struct {
	figure *Figure
}

func (a *axes) Plot(x, y []float64, label plotting.SeriesLabelString) {
	a.figure.record(Op{
		Kind:  OpPlot,
		X:     append([]float64(nil), x...),
		Y:     append([]float64(nil), y...),
		Label: label,
	})
}

func (a *axes) Legend() {
	a.figure.record(Op{Kind: OpLegend})
}

func (a *axes) SetTitle(title string) {
	a.figure.record(Op{Kind: OpSetTitle, Text: title})
}

func (a *axes) SetXLabel(label string) {
	a.figure.record(Op{Kind: OpSetXLabel, Text: label})
}

func (a *axes) SetYLabel(label string) {
	a.figure.record(Op{Kind: OpSetYLabel, Text: label})
}

func (a *axes) Grid(on bool) {
	a.figure.record(Op{Kind: OpGrid, On: on})
}

// Ensure the engine satisfies the plotting surface.
var _ plotting.Figure = (*Figure)(nil)
var _ plotting.Axes = (*axes)(nil)
