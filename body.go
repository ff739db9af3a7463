package tumble

// Shape is the closed set of collider geometries a Body can carry.
// The sealed marker method keeps the set closed so collision and rendering
// code can switch over every variant.
type Shape interface {
	shapeKind() string
}

// Circle is a circular shape with the given radius in pixels.
type Circle struct {
	Radius float64
}

// Rectangle is an axis-aligned box shape, rotated at render time by the
// body's angle. Width and Height are full extents in pixels.
type Rectangle struct {
	Width, Height float64
}

// Polygon is a convex point cloud in local space, centered on the body's
// position. Polygons render and respect world bounds but do not participate
// in body-body collision; only circle-circle pairs are resolved.
type Polygon struct {
	Points []Vec2
}

func (Circle) shapeKind() string    { return "circle" }
func (Rectangle) shapeKind() string { return "rectangle" }
func (Polygon) shapeKind() string   { return "polygon" }

// trailCap bounds the per-body trail buffer; the oldest samples are evicted.
const trailCap = 50

// Body is a simulated rigid object. Position, velocity, and acceleration are
// in pixels, pixels/sec, and pixels/sec². Fields may be read freely between
// steps; mutate through World.UpdateBody or World.DragBody so the stepper's
// bookkeeping stays consistent.
type Body struct {
	// ID uniquely identifies the body for its lifetime.
	ID string
	// Shape is the collider geometry. Exactly one variant per body.
	Shape Shape

	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2

	// Mass is strictly positive; AddBody coerces non-positive values to 1.
	Mass float64
	// Friction in [0, 1] damps tangential velocity on ground contact.
	Friction float64
	// Restitution in [0, 1] is the bounciness coefficient for boundary and
	// body-body collisions.
	Restitution float64
	// Static bodies never integrate motion and act as immovable colliders
	// and anchors.
	Static bool

	// Angle and AngularVelocity integrate independently of linear motion;
	// collisions apply no torque.
	Angle           float64
	AngularVelocity float64

	Color Color

	// forces is the per-frame force accumulator. Cleared every step.
	forces []Vec2
	// trail holds recent positions when Settings.ShowTrails is on.
	trail []Vec2
	// dragged marks a manual reposition this frame; the stepper skips
	// integration for the body and clears the flag.
	dragged bool
}

// AddForce appends f to the body's force accumulator for this frame.
func (b *Body) AddForce(f Vec2) {
	b.forces = append(b.forces, f)
}

// netForce sums the accumulated forces.
func (b *Body) netForce() Vec2 {
	var net Vec2
	for _, f := range b.forces {
		net = net.Add(f)
	}
	return net
}

func (b *Body) clearForces() {
	b.forces = b.forces[:0]
}

// PendingForces returns the number of forces accumulated and not yet
// consumed by a step.
func (b *Body) PendingForces() int {
	return len(b.forces)
}

// Trail returns the body's recent positions, oldest first. The returned
// slice MUST NOT be mutated.
func (b *Body) Trail() []Vec2 {
	return b.trail
}

func (b *Body) appendTrail() {
	if len(b.trail) >= trailCap {
		copy(b.trail, b.trail[1:])
		b.trail = b.trail[:trailCap-1]
	}
	b.trail = append(b.trail, b.Position)
}

func (b *Body) clearTrail() {
	b.trail = nil
}

// extents returns the body's half extents for boundary collision. Polygons
// use their farthest point as a bounding radius.
func (b *Body) extents() (halfW, halfH float64) {
	switch s := b.Shape.(type) {
	case Circle:
		return s.Radius, s.Radius
	case Rectangle:
		return s.Width / 2, s.Height / 2
	case Polygon:
		var r float64
		for _, p := range s.Points {
			if l := p.Length(); l > r {
				r = l
			}
		}
		return r, r
	}
	return 0, 0
}

// HitTest reports whether the world-space point p lies on the body.
// Rectangle tests ignore rotation (axis-aligned bounds), which is adequate
// for pointer picking.
func (b *Body) HitTest(p Vec2) bool {
	switch s := b.Shape.(type) {
	case Circle:
		return p.Sub(b.Position).LengthSq() <= s.Radius*s.Radius
	case Rectangle:
		d := p.Sub(b.Position)
		return d.X >= -s.Width/2 && d.X <= s.Width/2 &&
			d.Y >= -s.Height/2 && d.Y <= s.Height/2
	case Polygon:
		halfW, _ := b.extents()
		return p.Sub(b.Position).LengthSq() <= halfW*halfW
	}
	return false
}

// BodyOptions sets the initial state of a body created with World.AddBody.
// DefaultBodyOptions supplies the usual material values.
type BodyOptions struct {
	Position        Vec2
	Velocity        Vec2
	Mass            float64
	Friction        float64
	Restitution     float64
	Static          bool
	Angle           float64
	AngularVelocity float64
	Color           Color
}

// DefaultBodyOptions returns the material defaults applied to interactively
// spawned bodies: mass 1, friction 0.1, restitution 0.7, white tint.
func DefaultBodyOptions(position Vec2) BodyOptions {
	return BodyOptions{
		Position:    position,
		Mass:        1,
		Friction:    0.1,
		Restitution: 0.7,
		Color:       ColorWhite,
	}
}

// BodyPatch is a partial update for World.UpdateBody. Nil fields are left
// unchanged.
type BodyPatch struct {
	Shape           Shape
	Position        *Vec2
	Velocity        *Vec2
	Mass            *float64
	Friction        *float64
	Restitution     *float64
	Static          *bool
	Angle           *float64
	AngularVelocity *float64
	Color           *Color
}

func (b *Body) applyPatch(p BodyPatch) {
	if p.Shape != nil {
		b.Shape = p.Shape
	}
	if p.Position != nil {
		b.Position = *p.Position
	}
	if p.Velocity != nil {
		b.Velocity = *p.Velocity
	}
	if p.Mass != nil && *p.Mass > 0 {
		b.Mass = *p.Mass
	}
	if p.Friction != nil {
		b.Friction = Clamp(*p.Friction, 0, 1)
	}
	if p.Restitution != nil {
		b.Restitution = Clamp(*p.Restitution, 0, 1)
	}
	if p.Static != nil {
		b.Static = *p.Static
	}
	if p.Angle != nil {
		b.Angle = *p.Angle
	}
	if p.AngularVelocity != nil {
		b.AngularVelocity = *p.AngularVelocity
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
}
