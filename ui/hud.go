package ui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusBarHeight = 30

// skull is shown under the crash message.
const skull = `
       _____
     .-"     "-.
    /           \
   |    X   X    |
   |     .-.     |
   |    ( O )    |
    \  '-'-'   /
     '-._____.-'
`

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Inside      int
	Escaped     int
	Total       int
	CPUAvg      float64
	Memory      float64
	FPS         int32
	ElapsedSec  float64
	CommonColor rl.Color
	CommonCount int // 0 when no ball is inside
	Paused      bool
	Crashed     bool

	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Renderer returns the HUD's renderer.
func (h *HUD) Renderer() *Renderer {
	return h.renderer
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	w, ht := data.ScreenWidth, data.ScreenHeight

	// Counts, top right
	x := w - 250
	y := r.Theme.Padding
	r.DrawPanel(x-r.Theme.Padding, 0, 250, 3*r.Theme.LineHeight+r.Theme.Padding)
	y = r.DrawLabelValue(x, y, "Inside Count", fmt.Sprint(data.Inside))
	y = r.DrawLabelValue(x, y, "Outside Count", fmt.Sprint(data.Escaped))
	r.DrawLabelValue(x, y, "Total Count", fmt.Sprint(data.Total))

	gui.StatusBar(
		rl.Rectangle{X: 0, Y: float32(ht - statusBarHeight), Width: float32(w), Height: statusBarHeight},
		fmt.Sprintf("CPU: %.1f%%   Memory: %.1f%%   FPS: %d   Time: %ds",
			data.CPUAvg, data.Memory, data.FPS, int(data.ElapsedSec)),
	)

	if data.CommonCount > 0 {
		r.DrawColorSwatch(w-100, 500, 30, data.CommonColor, fmt.Sprintf("Count: %d", data.CommonCount))
	}

	if data.Paused {
		r.DrawCenteredText("PAUSED", w/2, r.Theme.Padding+r.Theme.HeaderFontSize/2, r.Theme.HeaderFontSize, rl.Yellow)
	}
	if data.Crashed {
		h.drawCrash(w, ht)
	}
}

// drawCrash renders the crash message and skull centered on screen.
func (h *HUD) drawCrash(w, ht int32) {
	r := h.renderer
	r.DrawCenteredText("Simulation Crashed!", w/2, ht/2-50, r.Theme.CrashFontSize, r.Theme.Alert)

	for i, line := range strings.Split(skull, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.DrawCenteredText(line, w/2, ht/2+int32(i)*30, r.Theme.FontSize, r.Theme.Alert)
	}
}
