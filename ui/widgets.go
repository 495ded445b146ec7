package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringescape/sim"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabelValue draws a label and value on the same line and returns the
// next line's Y.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawCenteredText draws text centered on (cx, cy).
func (r *Renderer) DrawCenteredText(text string, cx, cy, fontSize int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, cx-w/2, cy-fontSize/2, fontSize, color)
}

// DrawToggleButton draws a filled button whose color and label follow on.
func (r *Renderer) DrawToggleButton(rect sim.Rect, on bool, onText, offText string) {
	color, text := r.Theme.ButtonOff, offText
	if on {
		color, text = r.Theme.ButtonOn, onText
	}
	x, y := int32(rect.X), int32(rect.Y)
	w, h := int32(rect.Width), int32(rect.Height)
	rl.DrawRectangle(x, y, w, h, color)
	r.DrawCenteredText(text, x+w/2, y+h/2, r.Theme.FontSize, r.Theme.ButtonText)
}

// DrawColorSwatch draws a filled circle swatch with a label to its left.
func (r *Renderer) DrawColorSwatch(cx, cy int32, radius float32, color rl.Color, label string) {
	rl.DrawCircle(cx, cy, radius, color)
	w := rl.MeasureText(label, r.Theme.FontSize)
	rl.DrawText(label, cx-int32(radius)-r.Theme.Padding-w, cy-r.Theme.FontSize/2, r.Theme.FontSize, r.Theme.LabelColor)
}
