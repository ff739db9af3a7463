// playground is the interactive physics sandbox: spawn shapes with the mouse,
// drag bodies around, switch presets, and export the scene to JSON.
//
// Controls:
//
//	left click     spawn a circle (or drag a body under the cursor)
//	B              spawn a box at the cursor
//	right click    radial blast from the cursor
//	1-5            load a preset scene
//	space          play / pause
//	R              reset (clears the world)
//	T / V / G      toggle trails / velocity vectors / grid
//	E              export the scene to playground-scene.json
package main

import (
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/tumble"
)

const (
	screenW = 1024
	screenH = 768

	blastRadius = 250.0
	blastSpeed  = 600.0
)

func main() {
	world := tumble.NewWorld()
	world.Settings.Bounds = tumble.Rect{Width: screenW, Height: screenH}
	world.Settings.ShowTrails = true

	if err := tumble.LoadPreset(world, "bouncing-balls"); err != nil {
		log.Fatal(err)
	}

	var draggingID string

	err := tumble.Run(world, tumble.RunConfig{
		Title:    "Tumble — Playground",
		Width:    screenW,
		Height:   screenH,
		ShowHUD:  true,
		AutoPlay: true,
		OnUpdate: func(loop *tumble.Loop) error {
			w := loop.World()
			mx, my := ebiten.CursorPosition()
			cursor := tumble.Vec2{X: float64(mx), Y: float64(my)}

			// Drag takes priority over spawning. Grab whatever is under the
			// cursor on press and follow the cursor until release.
			if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
				if b := bodyAt(w, cursor); b != nil {
					draggingID = b.ID
				} else {
					spawnCircle(w, cursor)
				}
			}
			if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && draggingID != "" {
				w.DragBody(draggingID, cursor)
			} else {
				draggingID = ""
			}

			if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
				blast(w, cursor)
			}

			if inpututil.IsKeyJustPressed(ebiten.KeyB) {
				spawnBox(w, cursor)
			}
			if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
				loop.Toggle()
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyR) {
				loop.Reset()
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyT) {
				w.Settings.ShowTrails = !w.Settings.ShowTrails
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyV) {
				w.Settings.ShowVelocities = !w.Settings.ShowVelocities
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyG) {
				w.Settings.ShowGrid = !w.Settings.ShowGrid
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyE) {
				if err := exportScene(w); err != nil {
					log.Printf("export: %v", err)
				}
			}

			presets := map[ebiten.Key]string{
				ebiten.Key1: "bouncing-balls",
				ebiten.Key2: "newtons-cradle",
				ebiten.Key3: "pendulum",
				ebiten.Key4: "spring-web",
				ebiten.Key5: "box-stack",
			}
			for key, name := range presets {
				if inpututil.IsKeyJustPressed(key) {
					if err := tumble.LoadPreset(w, name); err != nil {
						return err
					}
					draggingID = ""
				}
			}

			return nil
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}

// bodyAt returns the topmost body under p, or nil.
func bodyAt(w *tumble.World, p tumble.Vec2) *tumble.Body {
	bodies := w.Bodies()
	for i := len(bodies) - 1; i >= 0; i-- {
		if bodies[i].HitTest(p) {
			return bodies[i]
		}
	}
	return nil
}

func spawnCircle(w *tumble.World, at tumble.Vec2) {
	opts := tumble.DefaultBodyOptions(at)
	radius := 10 + rand.Float64()*20
	opts.Mass = radius / 15
	opts.Color = randomColor()
	w.AddBody(tumble.Circle{Radius: radius}, opts)
}

func spawnBox(w *tumble.World, at tumble.Vec2) {
	opts := tumble.DefaultBodyOptions(at)
	size := 20 + rand.Float64()*40
	opts.Mass = size / 25
	opts.Restitution = 0.3
	opts.AngularVelocity = (rand.Float64() - 0.5) * 4
	opts.Color = randomColor()
	w.AddBody(tumble.Rectangle{Width: size, Height: size * 0.75}, opts)
}

// blast flings bodies away from the cursor, weaker with distance and mass.
func blast(w *tumble.World, at tumble.Vec2) {
	for _, b := range w.Bodies() {
		if b.Static {
			continue
		}
		offset := b.Position.Sub(at)
		dist := offset.Length()
		if dist > blastRadius || dist == 0 {
			continue
		}
		strength := blastSpeed * (1 - dist/blastRadius) / b.Mass
		b.Velocity = b.Velocity.Add(offset.Scale(strength / dist))
	}
}

func exportScene(w *tumble.World) error {
	data, err := w.ExportScene()
	if err != nil {
		return err
	}
	if err := os.WriteFile("playground-scene.json", data, 0o644); err != nil {
		return err
	}
	log.Printf("exported %d bodies to playground-scene.json", len(w.Bodies()))
	return nil
}

func randomColor() tumble.Color {
	return tumble.Color{
		R: 0.3 + rand.Float64()*0.7,
		G: 0.3 + rand.Float64()*0.7,
		B: 0.3 + rand.Float64()*0.7,
		A: 1,
	}
}
