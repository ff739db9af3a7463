package tumble

// ConstraintType identifies how a constraint links its endpoints. The string
// values are the wire names used in scene documents.
type ConstraintType string

const (
	// ConstraintRope is a one-sided max-distance constraint: it resists
	// stretching past Length but never pulls taut below it and never pushes.
	ConstraintRope ConstraintType = "rope"
	// ConstraintSpring is a two-sided elastic force between two bodies with
	// rest length Length and spring constant Stiffness.
	ConstraintSpring ConstraintType = "spring"
	// ConstraintPin is reserved; pins are parsed and exported but not solved.
	ConstraintPin ConstraintType = "pin"
	// ConstraintDistance is reserved; distance joints are parsed and
	// exported but not solved.
	ConstraintDistance ConstraintType = "distance"
)

// Constraint links a body to a fixed world anchor or to a second body.
// Constraints referencing missing body ids are skipped for the frame rather
// than reported — scenes under interactive editing are routinely
// half-constructed.
type Constraint struct {
	ID   string
	Type ConstraintType

	// BodyA is the body the constraint acts on. Required.
	BodyA string
	// BodyB is the optional second body. When empty, the constraint's other
	// end is the fixed world point AnchorB.
	BodyB string

	// AnchorA is reserved for local-space attachment offsets.
	AnchorA Vec2
	// AnchorB is the world-space anchor, used when BodyB is empty.
	AnchorB Vec2

	// Length is the rope's maximum distance or the spring's rest length.
	Length float64
	// Stiffness is the spring constant in force units per pixel of stretch.
	Stiffness float64
	// Damping is reserved for a future velocity-damping term.
	Damping float64
}

// applyRope enforces the max-distance constraint on body a against the
// anchor point. When the body has drifted past Length it is pulled back by
// exactly the excess, leaving it at distance Length; within the rope's
// length it is untouched.
func applyRope(a *Body, anchor Vec2, length float64) {
	if a.Static {
		return
	}
	offset := a.Position.Sub(anchor)
	distance := offset.Length()
	if distance <= length {
		return
	}
	a.Position = anchor.Add(offset.Normalize().Scale(length))
}

// applySpring accumulates the Hooke force on both bodies. A stretched spring
// pulls the bodies together; a compressed spring pushes them apart. The
// force lands in each body's accumulator; the constraint pass converts
// accumulated constraint forces into velocity at the end of the step.
func applySpring(a, b *Body, restLength, stiffness float64) {
	offset := b.Position.Sub(a.Position)
	distance := offset.Length()
	if distance == 0 {
		return
	}
	force := offset.Normalize().Scale((distance - restLength) * stiffness)
	a.AddForce(force)
	b.AddForce(force.Neg())
}
