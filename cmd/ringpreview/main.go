// Ring preview tool - the bare rotating ring with sliders for its parameters.
//
// Usage: go run ./cmd/ringpreview
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/ringescape/config"
	"github.com/pthm-cable/ringescape/systems"
)

const (
	previewSize = 600
	panelWidth  = 320
)

func main() {
	defaults := config.Defaults()
	params := defaults.Circle

	rl.InitWindow(previewSize+panelWidth, previewSize, "Ring Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(defaults.Screen.TargetFPS))

	center := r2.Vec{X: previewSize / 2, Y: previewSize / 2}
	perimeter := rl.Color{R: 255, G: 255, B: 0, A: 255}

	var rotation float64
	spinning := true

	for !rl.WindowShouldClose() {
		if spinning {
			rotation = systems.WrapAngle(rotation + params.RotationStep)
		}
		opening := systems.OpeningArc(rotation, params.OpeningSize)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		for _, p := range systems.PerimeterPoints(center, params.Radius, params.PerimeterSamples, opening) {
			rl.DrawCircle(int32(p.X), int32(p.Y), float32(params.PerimeterDotRadius), perimeter)
		}

		rl.DrawText(fmt.Sprintf("Opening: %.3f - %.3f rad", opening.Start, opening.End), 10, previewSize-25, 16, rl.Gray)

		// Control panel
		panelX := float32(previewSize + 10)
		panelY := float32(10)
		rl.DrawRectangle(previewSize, 0, panelWidth, previewSize, rl.RayWhite)

		rl.DrawText("Ring Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Rotation step (rad per tick)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newStep := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 90, Height: 20},
			"0", "0.2",
			float32(params.RotationStep), 0, 0.2,
		)
		rl.DrawText(fmt.Sprintf("%.3f", params.RotationStep), int32(panelX+panelWidth-80), int32(panelY+2), 16, rl.DarkGray)
		params.RotationStep = float64(newStep)
		panelY += 35

		rl.DrawText("Opening size (rad)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSize := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 90, Height: 20},
			"0", "3.14",
			float32(params.OpeningSize), 0, 3.14,
		)
		rl.DrawText(fmt.Sprintf("%.3f", params.OpeningSize), int32(panelX+panelWidth-80), int32(panelY+2), 16, rl.DarkGray)
		params.OpeningSize = float64(newSize)
		panelY += 35

		rl.DrawText("Radius (px)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 90, Height: 20},
			"50", "290",
			float32(params.Radius), 50, 290,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Radius), int32(panelX+panelWidth-80), int32(panelY+2), 16, rl.DarkGray)
		params.Radius = float64(int(newRadius))
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(spinning, "Pause", "Spin")) {
			spinning = !spinning
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults.Circle
			rotation = 0
		}
		panelY += 55

		// Output YAML
		out, err := circleYAML(params)
		if err != nil {
			slog.Error("failed to marshal circle config", "error", err)
			os.Exit(1)
		}
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(previewSize-30), 12, rl.Gray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(out)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// circleYAML renders the ring parameters as a config overlay.
func circleYAML(c config.CircleConfig) (string, error) {
	data, err := yaml.Marshal(map[string]config.CircleConfig{"circle": c})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
