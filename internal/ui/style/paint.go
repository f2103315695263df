package style

// PaintStyle selects whether geometry is filled or outlined.
type PaintStyle int

const (
	StyleFill PaintStyle = iota
	StyleStroke
)

// Cap is the decoration at the open ends of a stroke.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Align is the horizontal text alignment relative to the draw point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Paint describes how a draw command is rendered.
type Paint struct {
	Style       PaintStyle
	StrokeWidth float64
	Cap         Cap
	AntiAlias   bool
	Align       Align
	TextSize    float64
	Shader      *Gradient
}
