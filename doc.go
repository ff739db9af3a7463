// Package tumble is a small 2D physics playground engine for [Ebitengine].
//
// Tumble simulates circle and rectangle rigid bodies with semi-implicit
// Euler integration, impulse-based circle-circle collision, rope and spring
// constraints, and world boundaries. It is built for interactive sandboxes:
// bodies can be spawned, edited, and dragged live, scenes serialize to JSON
// losslessly, and a handful of presets ship in the box.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and a
// real-time loop for you:
//
//	world := tumble.NewWorld()
//	tumble.LoadPreset(world, "bouncing-balls")
//	tumble.Run(world, tumble.RunConfig{
//		Title: "Playground", AutoPlay: true, ShowHUD: true,
//	})
//
// For full control, drive the [World] yourself: create a [Loop], call
// [Loop.Tick] once per frame, and draw with a [Renderer] — or skip
// rendering entirely and call [World.Step] for headless simulation.
//
// # Simulation model
//
// Every frame, [World.Step] runs a fixed sequence: force accumulation
// (gravity, quadratic air drag, queued forces), semi-implicit Euler
// integration, boundary collisions, pairwise circle-circle collision
// resolution, then constraints. Only circle-circle body contacts are
// resolved; rectangles and polygons collide with the world bounds but pass
// through other bodies.
//
// Constraints come in two solved flavors: ropes, which clamp a body to a
// maximum distance from an anchor or another body, and springs, which apply
// Hooke forces between two bodies. Pin and distance joints are reserved in
// the scene format but not yet solved.
//
// # Scenes
//
// [World.ExportScene] and [World.LoadSceneJSON] round-trip the entire data
// model — bodies, constraints, and settings — through a stable JSON format,
// so playground states can be saved, shared, and reloaded.
package tumble
