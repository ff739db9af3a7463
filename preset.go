package tumble

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// PresetNames lists the built-in scenes accepted by LoadPreset.
var PresetNames = []string{
	"bouncing-balls",
	"newtons-cradle",
	"pendulum",
	"spring-web",
	"box-stack",
}

// LoadPreset replaces the world's contents with a built-in scene. Settings
// are reset to the preset's values; trails and selection state are the
// caller's to discard. Play state is unaffected.
func LoadPreset(w *World, name string) error {
	w.Clear()
	w.Settings = DefaultSettings()

	switch name {
	case "bouncing-balls":
		presetBouncingBalls(w)
	case "newtons-cradle":
		presetNewtonsCradle(w)
	case "pendulum":
		presetPendulum(w)
	case "spring-web":
		presetSpringWeb(w)
	case "box-stack":
		presetBoxStack(w)
	default:
		return fmt.Errorf("load preset: unknown preset %q", name)
	}
	return nil
}

// presetBouncingBalls scatters balls of varying size and bounciness.
func presetBouncingBalls(w *World) {
	bounds := w.Settings.Bounds
	for i := 0; i < 12; i++ {
		radius := 12 + rand.Float64()*18
		opts := DefaultBodyOptions(Vec2{
			X: bounds.X + radius + rand.Float64()*(bounds.Width-2*radius),
			Y: bounds.Y + radius + rand.Float64()*bounds.Height/2,
		})
		opts.Velocity = Vec2{X: (rand.Float64() - 0.5) * 300}
		opts.Mass = radius / 15
		opts.Restitution = 0.5 + rand.Float64()*0.45
		opts.Color = Color{
			R: 0.3 + rand.Float64()*0.7,
			G: 0.3 + rand.Float64()*0.7,
			B: 0.3 + rand.Float64()*0.7,
			A: 1,
		}
		w.AddBody(Circle{Radius: radius}, opts)
	}
}

// presetNewtonsCradle lines up equal-mass, perfectly elastic balls with one
// incoming striker, the classic momentum-exchange demonstration.
func presetNewtonsCradle(w *World) {
	w.SetSettings(SettingsPatch{
		Gravity:       &Vec2{},
		AirResistance: new(float64),
	})

	const radius = 20.0
	y := w.Settings.Bounds.Height / 2
	for i := 0; i < 5; i++ {
		opts := DefaultBodyOptions(Vec2{X: 300 + float64(i)*2*radius, Y: y})
		opts.Friction = 0
		opts.Restitution = 1
		opts.Color = Color{R: 0.85, G: 0.85, B: 0.9, A: 1}
		w.AddBody(Circle{Radius: radius}, opts)
	}

	striker := DefaultBodyOptions(Vec2{X: 120, Y: y})
	striker.Velocity = Vec2{X: 250}
	striker.Friction = 0
	striker.Restitution = 1
	striker.Color = Color{R: 0.95, G: 0.55, B: 0.25, A: 1}
	w.AddBody(Circle{Radius: radius}, striker)
}

// presetPendulum hangs a ball from a fixed anchor on a rope, displaced to
// the side so it swings.
func presetPendulum(w *World) {
	anchor := Vec2{X: w.Settings.Bounds.Width / 2, Y: 80}
	const length = 220.0

	opts := DefaultBodyOptions(Vec2{X: anchor.X + length*math.Sin(1.1), Y: anchor.Y + length*math.Cos(1.1)})
	opts.Restitution = 0.4
	opts.Color = Color{R: 0.35, G: 0.88, B: 0.4, A: 1}
	bob := w.AddBody(Circle{Radius: 24}, opts)

	w.AddConstraint(Constraint{
		Type:    ConstraintRope,
		BodyA:   bob,
		AnchorB: anchor,
		Length:  length,
	})
}

// presetSpringWeb suspends a ring of balls from a static hub by springs,
// with a heavier ball dropped on top to set the web oscillating.
func presetSpringWeb(w *World) {
	center := Vec2{X: w.Settings.Bounds.Width / 2, Y: w.Settings.Bounds.Height / 2}

	hubOpts := DefaultBodyOptions(center)
	hubOpts.Static = true
	hubOpts.Color = Color{R: 0.5, G: 0.5, B: 0.55, A: 1}
	hub := w.AddBody(Circle{Radius: 10}, hubOpts)

	const (
		spokes    = 6
		reach     = 150.0
		stiffness = 8.0
	)
	ids := make([]string, spokes)
	for i := 0; i < spokes; i++ {
		angle := 2 * math.Pi * float64(i) / spokes
		opts := DefaultBodyOptions(center.Add(Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(reach)))
		opts.Mass = 0.8
		opts.Color = Color{R: 0.25, G: 0.65, B: 0.95, A: 1}
		ids[i] = w.AddBody(Circle{Radius: 14}, opts)

		w.AddConstraint(Constraint{
			Type:      ConstraintSpring,
			BodyA:     ids[i],
			BodyB:     hub,
			Length:    reach * 0.7,
			Stiffness: stiffness,
		})
	}
	// Link neighbors so the ring holds its shape.
	for i := 0; i < spokes; i++ {
		w.AddConstraint(Constraint{
			Type:      ConstraintSpring,
			BodyA:     ids[i],
			BodyB:     ids[(i+1)%spokes],
			Length:    2 * reach * math.Sin(math.Pi/spokes) * 0.7,
			Stiffness: stiffness,
		})
	}

	drop := DefaultBodyOptions(Vec2{X: center.X + 20, Y: 60})
	drop.Mass = 3
	drop.Color = Color{R: 0.95, G: 0.3, B: 0.3, A: 1}
	w.AddBody(Circle{Radius: 22}, drop)
}

// presetBoxStack piles rectangles on the ground with a spinning box tossed
// at them. Boxes only collide with the boundary, so the pile simply settles;
// the preset exists to exercise rectangle integration and spin damping.
func presetBoxStack(w *World) {
	bounds := w.Settings.Bounds
	baseX := bounds.Width / 2

	for i := 0; i < 5; i++ {
		size := 70 - float64(i)*8
		opts := DefaultBodyOptions(Vec2{X: baseX, Y: bounds.Height - 40 - float64(i)*75})
		opts.Mass = size / 30
		opts.Friction = 0.3
		opts.Restitution = 0.2
		opts.Color = Color{R: 0.95, G: 0.75, B: 0.15, A: 1}
		w.AddBody(Rectangle{Width: size, Height: size}, opts)
	}

	tossed := DefaultBodyOptions(Vec2{X: 80, Y: 120})
	tossed.Velocity = Vec2{X: 320, Y: -60}
	tossed.AngularVelocity = 6
	tossed.Friction = 0.4
	tossed.Restitution = 0.35
	tossed.Color = Color{R: 0.75, G: 0.35, B: 0.9, A: 1}
	w.AddBody(Rectangle{Width: 46, Height: 46}, tossed)
}
