package tumble

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window dimensions in pixels. They default to
	// the world's bounds when zero.
	Width  int
	Height int
	// ShowHUD overlays FPS, body count, and play state.
	ShowHUD bool
	// AutoPlay starts the loop running immediately.
	AutoPlay bool
	// OnUpdate, when set, runs every frame before the simulation tick.
	// It receives the loop for play/pause control and input handling.
	// Returning an error stops Run and returns that error.
	OnUpdate func(loop *Loop) error
	// ClearColor is the background fill. Defaults to near-black.
	ClearColor Color
}

// game adapts a Loop and Renderer to the ebiten.Game interface.
type game struct {
	loop     *Loop
	renderer *Renderer
	hud      *HUD
	config   RunConfig

	lastFrame time.Time
	frameDT   float64
	err       error
}

func (g *game) Update() error {
	if g.config.OnUpdate != nil {
		if err := g.config.OnUpdate(g.loop); err != nil {
			return err
		}
	}

	now := time.Now()
	if !g.lastFrame.IsZero() {
		g.frameDT = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	g.loop.Tick(now)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	bg := g.config.ClearColor
	if bg == (Color{}) {
		bg = Color{R: 0.06, G: 0.06, B: 0.09, A: 1}
	}
	screen.Fill(color.NRGBA{
		R: uint8(bg.R * 255),
		G: uint8(bg.G * 255),
		B: uint8(bg.B * 255),
		A: 255,
	})

	g.renderer.Draw(screen, g.frameDT)
	if g.hud != nil {
		g.hud.Draw(screen, g.frameDT)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Width, g.config.Height
}

// Run opens a window and drives the world with a real-time loop until the
// window closes or OnUpdate returns an error. The returned Loop control is
// available through OnUpdate; Run itself blocks.
func Run(world *World, config RunConfig) error {
	if config.Width == 0 {
		config.Width = int(world.Settings.Bounds.Width)
	}
	if config.Height == 0 {
		config.Height = int(world.Settings.Bounds.Height)
	}

	loop := NewLoop(world)
	if config.AutoPlay {
		loop.Play()
	}

	g := &game{
		loop:     loop,
		renderer: NewRenderer(world),
		config:   config,
	}
	if config.ShowHUD {
		g.hud = NewHUD(loop)
	}

	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowTitle(config.Title)
	return ebiten.RunGame(g)
}
