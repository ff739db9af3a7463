package tumble

import "testing"

func TestRopeSlackIsNoOp(t *testing.T) {
	w := zeroGravityWorld()
	id := w.AddBody(Circle{Radius: 10}, BodyOptions{Position: Vec2{100, 100}, Mass: 1})
	w.AddConstraint(Constraint{
		Type:    ConstraintRope,
		BodyA:   id,
		AnchorB: Vec2{100, 50},
		Length:  200,
	})

	w.Step(1.0 / 60)

	// Well within the rope's length: the rope neither pulls nor pushes.
	assertVec(t, "position", w.Body(id).Position, Vec2{100, 100})
}

func TestRopeClampsToExactLength(t *testing.T) {
	w := zeroGravityWorld()
	id := w.AddBody(Circle{Radius: 10}, BodyOptions{Position: Vec2{100, 300}, Mass: 1})
	anchor := Vec2{100, 50}
	w.AddConstraint(Constraint{
		Type:    ConstraintRope,
		BodyA:   id,
		AnchorB: anchor,
		Length:  150,
	})

	w.Step(1.0 / 60)

	b := w.Body(id)
	assertNear(t, "distance", b.Position.Distance(anchor), 150)
	// Pulled straight back along the rope direction.
	assertVec(t, "position", b.Position, Vec2{100, 200})
}

func TestRopeBetweenTwoBodies(t *testing.T) {
	w := zeroGravityWorld()
	a := w.AddBody(Circle{Radius: 10}, BodyOptions{Position: Vec2{300, 100}, Mass: 1})
	anchorOpts := BodyOptions{Position: Vec2{100, 100}, Mass: 1, Static: true}
	b := w.AddBody(Circle{Radius: 10}, anchorOpts)
	w.AddConstraint(Constraint{
		Type:   ConstraintRope,
		BodyA:  a,
		BodyB:  b,
		Length: 120,
	})

	w.Step(1.0 / 60)

	// Only the constrained body moves; the rope pulls it to exactly Length
	// from its partner.
	assertNear(t, "distance", w.Body(a).Position.Distance(w.Body(b).Position), 120)
	assertVec(t, "anchor body", w.Body(b).Position, Vec2{100, 100})
}

func TestSpringStretchedPullsTogether(t *testing.T) {
	w := zeroGravityWorld()
	a := w.AddBody(Circle{Radius: 10}, BodyOptions{Position: Vec2{100, 100}, Mass: 1})
	b := w.AddBody(Circle{Radius: 10}, BodyOptions{Position: Vec2{300, 100}, Mass: 1})
	w.AddConstraint(Constraint{
		Type:      ConstraintSpring,
		BodyA:     a,
		BodyB:     b,
		Length:    100,
		Stiffness: 10,
	})

	w.Step(1.0 / 60)

	// Stretched by 100: a is pulled right, b is pulled left.
	if w.Body(a).Velocity.X <= 0 {
		t.Errorf("a should move toward b, vx = %v", w.Body(a).Velocity.X)
	}
	if w.Body(b).Velocity.X >= 0 {
		t.Errorf("b should move toward a, vx = %v", w.Body(b).Velocity.X)
	}
}

func TestSpringCompressedPushesApart(t *testing.T) {
	w := zeroGravityWorld()
	a := w.AddBody(Circle{Radius: 5}, BodyOptions{Position: Vec2{100, 100}, Mass: 1})
	b := w.AddBody(Circle{Radius: 5}, BodyOptions{Position: Vec2{140, 100}, Mass: 1})
	w.AddConstraint(Constraint{
		Type:      ConstraintSpring,
		BodyA:     a,
		BodyB:     b,
		Length:    100,
		Stiffness: 10,
	})

	w.Step(1.0 / 60)

	if w.Body(a).Velocity.X >= 0 {
		t.Errorf("a should be pushed away from b, vx = %v", w.Body(a).Velocity.X)
	}
	if w.Body(b).Velocity.X <= 0 {
		t.Errorf("b should be pushed away from a, vx = %v", w.Body(b).Velocity.X)
	}
}

func TestSpringForceMagnitude(t *testing.T) {
	w := zeroGravityWorld()
	a := w.AddBody(Circle{Radius: 5}, BodyOptions{Position: Vec2{0, 0}, Mass: 2})
	b := w.AddBody(Circle{Radius: 5}, BodyOptions{Position: Vec2{150, 0}, Mass: 2, Static: true})
	w.AddConstraint(Constraint{
		Type:      ConstraintSpring,
		BodyA:     a,
		BodyB:     b,
		Length:    100,
		Stiffness: 6,
	})

	dt := 1.0 / 60
	w.Step(dt)

	// Stretch 50 at stiffness 6 gives force 300 toward b; with mass 2 the
	// velocity change over one frame is 300/2*dt.
	assertNear(t, "vx", w.Body(a).Velocity.X, 300.0/2*dt)
	// The static partner accumulates the opposite force but never moves.
	assertVec(t, "static velocity", w.Body(b).Velocity, Vec2{})
}

func TestConstraintMissingBodySkipped(t *testing.T) {
	w := zeroGravityWorld()
	id := w.AddBody(Circle{Radius: 10}, BodyOptions{Position: Vec2{100, 100}, Mass: 1})
	w.AddConstraint(Constraint{Type: ConstraintRope, BodyA: "ghost", AnchorB: Vec2{}, Length: 1})
	w.AddConstraint(Constraint{Type: ConstraintSpring, BodyA: id, BodyB: "ghost", Length: 10, Stiffness: 100})

	// Both constraints silently skip; nothing moves, nothing panics.
	w.Step(1.0 / 60)

	assertVec(t, "position", w.Body(id).Position, Vec2{100, 100})
	assertVec(t, "velocity", w.Body(id).Velocity, Vec2{})
}

func TestReservedConstraintTypesAreInert(t *testing.T) {
	w := zeroGravityWorld()
	id := w.AddBody(Circle{Radius: 10}, BodyOptions{Position: Vec2{100, 100}, Mass: 1})
	w.AddConstraint(Constraint{Type: ConstraintPin, BodyA: id, AnchorB: Vec2{0, 0}, Length: 1})
	w.AddConstraint(Constraint{Type: ConstraintDistance, BodyA: id, AnchorB: Vec2{0, 0}, Length: 1})

	w.Step(1.0 / 60)

	assertVec(t, "position", w.Body(id).Position, Vec2{100, 100})
}

func TestSpringWithCoincidentBodiesSkipped(t *testing.T) {
	// Two bodies at the same point have no spring direction; the frame is
	// skipped rather than producing NaN.
	w := zeroGravityWorld()
	a := w.AddBody(Circle{Radius: 5}, BodyOptions{Position: Vec2{100, 100}, Mass: 1})
	b := w.AddBody(Rectangle{Width: 10, Height: 10}, BodyOptions{Position: Vec2{100, 100}, Mass: 1})
	w.AddConstraint(Constraint{Type: ConstraintSpring, BodyA: a, BodyB: b, Length: 50, Stiffness: 10})

	w.Step(1.0 / 60)

	assertVec(t, "a velocity", w.Body(a).Velocity, Vec2{})
	assertVec(t, "b velocity", w.Body(b).Velocity, Vec2{})
}
