package tumble

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Settings holds the global simulation parameters and display toggles.
// The display toggles have no effect on physical behavior except ShowTrails,
// which controls whether trail buffers are recorded, and the boundary
// toggles, which enable ground and wall collisions.
type Settings struct {
	// Gravity is the global acceleration field in pixels/sec², applied to
	// every non-static body scaled by its mass.
	Gravity Vec2 `json:"gravity"`
	// AirResistance is the quadratic drag coefficient: each body receives a
	// force of -AirResistance * |v| * v opposing its velocity.
	AirResistance float64 `json:"airResistance"`
	// TimeScale dilates every delta before integration. 1 is real time.
	TimeScale float64 `json:"timeScale"`
	// Bounds is the simulated region used for ground and wall collisions.
	Bounds Rect `json:"bounds"`

	GroundEnabled bool `json:"groundEnabled"`
	WallsEnabled  bool `json:"wallsEnabled"`

	ShowVelocities  bool `json:"showVelocities"`
	ShowForces      bool `json:"showForces"`
	ShowTrails      bool `json:"showTrails"`
	ShowGrid        bool `json:"showGrid"`
	ShowConstraints bool `json:"showConstraints"`
}

// DefaultSettings returns the parameters a fresh world starts with:
// downward gravity, mild air resistance, real-time scale, an 800x600 region
// with ground and walls enabled, and constraints visible.
func DefaultSettings() Settings {
	return Settings{
		Gravity:         Vec2{0, 500},
		AirResistance:   0.0005,
		TimeScale:       1,
		Bounds:          Rect{0, 0, 800, 600},
		GroundEnabled:   true,
		WallsEnabled:    true,
		ShowConstraints: true,
	}
}

// SettingsPatch is a partial update for World.SetSettings. Nil fields are
// left unchanged.
type SettingsPatch struct {
	Gravity       *Vec2
	AirResistance *float64
	TimeScale     *float64
	Bounds        *Rect

	GroundEnabled *bool
	WallsEnabled  *bool

	ShowVelocities  *bool
	ShowForces      *bool
	ShowTrails      *bool
	ShowGrid        *bool
	ShowConstraints *bool
}

// ContactEvent describes one resolved body-body collision.
type ContactEvent struct {
	BodyA string
	BodyB string
	// Normal is the unit contact normal pointing from BodyA toward BodyB.
	Normal Vec2
	Depth  float64
}

// ContactSink receives a ContactEvent for every resolved collision.
// The tumble/ecs submodule provides a Donburi-backed implementation.
type ContactSink interface {
	EmitContact(event ContactEvent)
}

// World owns the full simulation state: bodies, constraints, and settings.
// It is single-threaded by contract — the host's loop calls Step between
// frames, and readers observe a consistent snapshot outside Step.
type World struct {
	Settings Settings

	bodies      []*Body
	constraints []*Constraint

	nextBodyID       int
	nextConstraintID int

	sink  ContactSink
	debug bool
}

// NewWorld creates an empty world with DefaultSettings.
func NewWorld() *World {
	return &World{Settings: DefaultSettings()}
}

// SetContactSink installs an optional sink notified of every resolved
// collision during Step. Pass nil to remove it.
func (w *World) SetContactSink(sink ContactSink) {
	w.sink = sink
}

// AddBody creates a body with the given shape and options and returns its
// id. Non-positive mass is coerced to 1; friction and restitution are
// clamped to [0, 1].
func (w *World) AddBody(shape Shape, opts BodyOptions) string {
	w.nextBodyID++
	b := &Body{
		ID:              fmt.Sprintf("body-%d", w.nextBodyID),
		Shape:           shape,
		Position:        opts.Position,
		Velocity:        opts.Velocity,
		Mass:            opts.Mass,
		Friction:        Clamp(opts.Friction, 0, 1),
		Restitution:     Clamp(opts.Restitution, 0, 1),
		Static:          opts.Static,
		Angle:           opts.Angle,
		AngularVelocity: opts.AngularVelocity,
		Color:           opts.Color,
	}
	if b.Mass <= 0 {
		b.Mass = 1
	}
	w.bodies = append(w.bodies, b)
	return b.ID
}

// Body returns the body with the given id, or nil.
func (w *World) Body(id string) *Body {
	for _, b := range w.bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Bodies returns the world's bodies in insertion order. The returned slice
// MUST NOT be mutated.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// RemoveBody deletes the body with the given id. Constraints referencing it
// are kept and simply skip their frames until re-pointed or removed, the
// same soft behavior as loading a partially built scene.
func (w *World) RemoveBody(id string) {
	for i, b := range w.bodies {
		if b.ID == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// UpdateBody applies a partial update to a body. It reports whether the id
// resolved to a body.
func (w *World) UpdateBody(id string, patch BodyPatch) bool {
	b := w.Body(id)
	if b == nil {
		return false
	}
	b.applyPatch(patch)
	return true
}

// DragBody repositions a body under manual user control. The body's
// velocity is zeroed and integration is bypassed for it on the next step,
// so releasing a dragged body does not produce a velocity spike.
func (w *World) DragBody(id string, position Vec2) bool {
	b := w.Body(id)
	if b == nil {
		return false
	}
	b.Position = position
	b.Velocity = Vec2{}
	b.dragged = true
	return true
}

// AddConstraint adds a constraint and returns its id. The ID field of the
// argument is ignored; an id is always assigned.
func (w *World) AddConstraint(c Constraint) string {
	w.nextConstraintID++
	c.ID = fmt.Sprintf("constraint-%d", w.nextConstraintID)
	w.constraints = append(w.constraints, &c)
	return c.ID
}

// Constraint returns the constraint with the given id, or nil.
func (w *World) Constraint(id string) *Constraint {
	for _, c := range w.constraints {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Constraints returns the world's constraints in insertion order. The
// returned slice MUST NOT be mutated.
func (w *World) Constraints() []*Constraint {
	return w.constraints
}

// RemoveConstraint deletes the constraint with the given id.
func (w *World) RemoveConstraint(id string) {
	for i, c := range w.constraints {
		if c.ID == id {
			w.constraints = append(w.constraints[:i], w.constraints[i+1:]...)
			return
		}
	}
}

// SetSettings merges a partial settings update into the world.
func (w *World) SetSettings(patch SettingsPatch) {
	s := &w.Settings
	if patch.Gravity != nil {
		s.Gravity = *patch.Gravity
	}
	if patch.AirResistance != nil {
		s.AirResistance = *patch.AirResistance
	}
	if patch.TimeScale != nil {
		s.TimeScale = *patch.TimeScale
	}
	if patch.Bounds != nil {
		s.Bounds = *patch.Bounds
	}
	if patch.GroundEnabled != nil {
		s.GroundEnabled = *patch.GroundEnabled
	}
	if patch.WallsEnabled != nil {
		s.WallsEnabled = *patch.WallsEnabled
	}
	if patch.ShowVelocities != nil {
		s.ShowVelocities = *patch.ShowVelocities
	}
	if patch.ShowForces != nil {
		s.ShowForces = *patch.ShowForces
	}
	if patch.ShowTrails != nil {
		s.ShowTrails = *patch.ShowTrails
		if !s.ShowTrails {
			for _, b := range w.bodies {
				b.clearTrail()
			}
		}
	}
	if patch.ShowGrid != nil {
		s.ShowGrid = *patch.ShowGrid
	}
	if patch.ShowConstraints != nil {
		s.ShowConstraints = *patch.ShowConstraints
	}
}

// Clear removes every body, constraint, and trail. Settings are preserved.
func (w *World) Clear() {
	w.bodies = nil
	w.constraints = nil
}

// Step advances the simulation by deltaTime seconds of real time. The
// phases run in a fixed order every frame: force accumulation and
// integration, boundary collisions, accumulator reset, pairwise circle
// collisions, constraints, trail recording. Reordering changes simulation
// behavior and is not permitted.
func (w *World) Step(deltaTime float64) {
	dt := deltaTime * w.Settings.TimeScale

	var stats stepStats
	var t0 time.Time
	if w.debug {
		stats.bodyCount = len(w.bodies)
		t0 = time.Now()
	}

	for _, b := range w.bodies {
		if b.Static || b.dragged {
			continue
		}

		// Gravity scales with mass; drag opposes velocity and grows
		// quadratically with speed.
		net := w.Settings.Gravity.Scale(b.Mass)
		net = net.Add(b.Velocity.Scale(-w.Settings.AirResistance * b.Velocity.Length()))
		net = net.Add(b.netForce())

		b.Acceleration = net.Scale(1 / b.Mass)

		// Semi-implicit Euler: velocity first, then position from the new
		// velocity.
		b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		b.Angle += b.AngularVelocity * dt

		w.collideBounds(b)
	}

	for _, b := range w.bodies {
		b.clearForces()
	}

	if w.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	// Sequential pairwise scan: later pairs see positions already corrected
	// by earlier ones, the usual approximation of single-pass solvers.
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			col := ResolveCollision(a, b)
			if !col.Colliding {
				continue
			}
			stats.contactCount++
			if w.sink != nil {
				w.sink.EmitContact(ContactEvent{
					BodyA:  a.ID,
					BodyB:  b.ID,
					Normal: col.Normal,
					Depth:  col.Depth,
				})
			}
		}
	}

	if w.debug {
		stats.collideTime = time.Since(t0)
		t0 = time.Now()
	}

	w.applyConstraints(dt)

	if w.debug {
		stats.constraintTime = time.Since(t0)
		w.debugLog(stats)
	}

	if w.Settings.ShowTrails {
		for _, b := range w.bodies {
			b.appendTrail()
		}
	}

	for _, b := range w.bodies {
		b.dragged = false
	}
}

// collideBounds clamps a body inside the world bounds, reflecting the
// relevant velocity component scaled by restitution. Ground contact also
// damps tangential velocity by friction, and spin for rectangles.
func (w *World) collideBounds(b *Body) {
	halfW, halfH := b.extents()
	bounds := w.Settings.Bounds

	if w.Settings.GroundEnabled {
		floor := bounds.Y + bounds.Height
		if b.Position.Y+halfH > floor {
			b.Position.Y = floor - halfH
			b.Velocity.Y *= -b.Restitution
			b.Velocity.X *= 1 - b.Friction
			if _, ok := b.Shape.(Rectangle); ok {
				b.AngularVelocity *= 1 - b.Friction
			}
		}
	}

	if w.Settings.WallsEnabled {
		if b.Position.X-halfW < bounds.X {
			b.Position.X = bounds.X + halfW
			b.Velocity.X *= -b.Restitution
		} else if b.Position.X+halfW > bounds.X+bounds.Width {
			b.Position.X = bounds.X + bounds.Width - halfW
			b.Velocity.X *= -b.Restitution
		}
		if b.Position.Y-halfH < bounds.Y {
			b.Position.Y = bounds.Y + halfH
			b.Velocity.Y *= -b.Restitution
		}
	}
}

// applyConstraints runs every constraint against the post-collision
// positions. Constraints with unresolved body ids are skipped for the
// frame. Spring forces land in the accumulators during the pass and are
// converted to velocity over the same dt at the end, so accumulators are
// empty after every step.
func (w *World) applyConstraints(dt float64) {
	for _, c := range w.constraints {
		a := w.Body(c.BodyA)
		if a == nil {
			continue
		}
		switch c.Type {
		case ConstraintRope:
			if c.BodyB != "" {
				b := w.Body(c.BodyB)
				if b == nil {
					continue
				}
				applyRope(a, b.Position, c.Length)
			} else {
				applyRope(a, c.AnchorB, c.Length)
			}
		case ConstraintSpring:
			b := w.Body(c.BodyB)
			if b == nil {
				continue
			}
			applySpring(a, b, c.Length, c.Stiffness)
		case ConstraintPin, ConstraintDistance:
			// Reserved variants: carried through scenes, not solved.
		}
	}

	for _, b := range w.bodies {
		if len(b.forces) == 0 {
			continue
		}
		if !b.Static && !b.dragged {
			b.Velocity = b.Velocity.Add(b.netForce().Scale(dt / b.Mass))
		}
		b.clearForces()
	}
}

// bumpCounter advances a numeric id counter past an imported id of the form
// prefix-N, so bodies added after LoadScene never collide with loaded ids.
func bumpCounter(counter *int, id, prefix string) {
	rest, ok := strings.CutPrefix(id, prefix+"-")
	if !ok {
		return
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return
	}
	if n > *counter {
		*counter = n
	}
}
