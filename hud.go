package tumble

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD overlays simulation stats: FPS/TPS, body and constraint counts, and
// the loop's play state. The text refreshes every ~0.25 seconds.
type HUD struct {
	loop *Loop

	img     *ebiten.Image
	elapsed float64
}

// NewHUD creates a HUD for the given loop.
func NewHUD(loop *Loop) *HUD {
	// 140x48 fits four short DebugPrint lines.
	return &HUD{
		loop: loop,
		img:  ebiten.NewImage(140, 48),
	}
}

// Draw paints the HUD into the top-left corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image, dt float64) {
	h.elapsed += dt
	if h.elapsed >= 0.25 {
		h.elapsed = 0

		state := "paused"
		if h.loop.Playing() {
			state = "running"
		}
		world := h.loop.World()

		h.img.Clear()
		h.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.img, fmt.Sprintf(
			"FPS: %.1f  TPS: %.1f\nbodies: %d\nconstraints: %d\n%s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			len(world.Bodies()), len(world.Constraints()), state))
	}

	screen.DrawImage(h.img, nil)
}
