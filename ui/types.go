// Package ui draws the simulation's widgets and heads-up display.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ringescape/components"
)

// Theme holds UI styling constants.
type Theme struct {
	Background  rl.Color
	Perimeter   rl.Color
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	ButtonOn    rl.Color
	ButtonOff   rl.Color
	ButtonText  rl.Color
	Alert       rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
	CrashFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     rl.Black,
		Perimeter:      rl.Color{R: 255, G: 255, B: 0, A: 255},
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:     rl.White,
		ValueColor:     rl.White,
		ButtonOn:       rl.Color{R: 0, G: 255, B: 0, A: 255},
		ButtonOff:      rl.Color{R: 255, G: 0, B: 0, A: 255},
		ButtonText:     rl.White,
		Alert:          rl.Color{R: 255, G: 0, B: 0, A: 255},
		Padding:        10,
		LineHeight:     40,
		LabelWidth:     150,
		FontSize:       20,
		HeaderFontSize: 24,
		CrashFontSize:  36,
	}
}

// ToColor converts a ball color to an opaque raylib color.
func ToColor(c components.RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
