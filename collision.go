package tumble

// Collision describes the result of a narrow-phase check between two circle
// bodies. Normal is a unit vector pointing from the first body toward the
// second; Depth is the positive overlap distance.
type Collision struct {
	Colliding bool
	Normal    Vec2
	Depth     float64
}

// DetectCircleCollision checks two bodies for circle-circle overlap.
// Non-circle pairings never collide: only circle-circle contacts are
// implemented, an intentional scope limit of the engine. Exactly coincident
// centers report no collision to avoid a degenerate normal.
func DetectCircleCollision(a, b *Body) Collision {
	ca, ok := a.Shape.(Circle)
	if !ok {
		return Collision{}
	}
	cb, ok := b.Shape.(Circle)
	if !ok {
		return Collision{}
	}

	diff := b.Position.Sub(a.Position)
	distance := diff.Length()
	if distance == 0 || distance >= ca.Radius+cb.Radius {
		return Collision{}
	}

	return Collision{
		Colliding: true,
		Normal:    diff.Normalize(),
		Depth:     (ca.Radius + cb.Radius) - distance,
	}
}

// ResolveCollision detects and resolves a contact between two bodies,
// mutating them in place. It returns the contact so callers can observe
// resolved pairs.
//
// Resolution runs in two parts. First the overlap is split between the
// bodies proportionally to the other body's mass, so the heavier body moves
// less; static bodies never move. Then an impulse is exchanged along the
// contact normal using the smaller restitution of the pair. Pairs already
// separating along the normal receive no impulse — applying one would
// double-count the separation.
func ResolveCollision(a, b *Body) Collision {
	col := DetectCircleCollision(a, b)
	if !col.Colliding {
		return col
	}

	totalMass := a.Mass + b.Mass

	if !a.Static {
		a.Position = a.Position.Sub(col.Normal.Scale(col.Depth * b.Mass / totalMass))
	}
	if !b.Static {
		b.Position = b.Position.Add(col.Normal.Scale(col.Depth * a.Mass / totalMass))
	}

	rv := b.Velocity.Sub(a.Velocity)
	vAlongNormal := rv.Dot(col.Normal)
	if vAlongNormal > 0 {
		return col
	}

	restitution := a.Restitution
	if b.Restitution < restitution {
		restitution = b.Restitution
	}

	impulseScalar := -(1 + restitution) * vAlongNormal / totalMass
	impulse := col.Normal.Scale(impulseScalar)

	if !a.Static {
		a.Velocity = a.Velocity.Sub(impulse.Scale(b.Mass))
	}
	if !b.Static {
		b.Velocity = b.Velocity.Add(impulse.Scale(a.Mass))
	}

	return col
}
