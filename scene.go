package tumble

import (
	"encoding/json"
	"fmt"
)

// Scene is the serialized form of a World: a direct dump of the bodies,
// constraints, and settings. The field names are the stable wire format
// used by exported scene files — do not rename them.
type Scene struct {
	Objects       []SceneObject     `json:"objects"`
	Constraints   []SceneConstraint `json:"constraints"`
	WorldSettings Settings          `json:"worldSettings"`
}

// SceneObject is the wire form of a Body. The shape sum type flattens to
// the tagged Type plus whichever of Radius, Width/Height, or Points matches.
type SceneObject struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Position        Vec2    `json:"position"`
	Velocity        Vec2    `json:"velocity"`
	Acceleration    Vec2    `json:"acceleration"`
	Mass            float64 `json:"mass"`
	Friction        float64 `json:"friction"`
	Restitution     float64 `json:"restitution"`
	IsStatic        bool    `json:"isStatic"`
	Angle           float64 `json:"angle"`
	AngularVelocity float64 `json:"angularVelocity"`
	Radius          float64 `json:"radius,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Height          float64 `json:"height,omitempty"`
	Points          []Vec2  `json:"points,omitempty"`
	Color           Color   `json:"color"`
}

// SceneConstraint is the wire form of a Constraint. ObjectB is null when the
// constraint anchors to the fixed world point AnchorB.
type SceneConstraint struct {
	ID        string         `json:"id"`
	Type      ConstraintType `json:"type"`
	ObjectA   string         `json:"objectA"`
	ObjectB   *string        `json:"objectB"`
	AnchorA   Vec2           `json:"anchorA"`
	AnchorB   Vec2           `json:"anchorB"`
	Length    float64        `json:"length"`
	Stiffness float64        `json:"stiffness"`
	Damping   float64        `json:"damping"`
}

// Scene returns a snapshot of the world's current contents in wire form.
func (w *World) Scene() Scene {
	scene := Scene{
		Objects:       make([]SceneObject, 0, len(w.bodies)),
		Constraints:   make([]SceneConstraint, 0, len(w.constraints)),
		WorldSettings: w.Settings,
	}

	for _, b := range w.bodies {
		obj := SceneObject{
			ID:              b.ID,
			Type:            b.Shape.shapeKind(),
			Position:        b.Position,
			Velocity:        b.Velocity,
			Acceleration:    b.Acceleration,
			Mass:            b.Mass,
			Friction:        b.Friction,
			Restitution:     b.Restitution,
			IsStatic:        b.Static,
			Angle:           b.Angle,
			AngularVelocity: b.AngularVelocity,
			Color:           b.Color,
		}
		switch s := b.Shape.(type) {
		case Circle:
			obj.Radius = s.Radius
		case Rectangle:
			obj.Width = s.Width
			obj.Height = s.Height
		case Polygon:
			obj.Points = s.Points
		}
		scene.Objects = append(scene.Objects, obj)
	}

	for _, c := range w.constraints {
		sc := SceneConstraint{
			ID:        c.ID,
			Type:      c.Type,
			ObjectA:   c.BodyA,
			AnchorA:   c.AnchorA,
			AnchorB:   c.AnchorB,
			Length:    c.Length,
			Stiffness: c.Stiffness,
			Damping:   c.Damping,
		}
		if c.BodyB != "" {
			id := c.BodyB
			sc.ObjectB = &id
		}
		scene.Constraints = append(scene.Constraints, sc)
	}

	return scene
}

// ExportScene serializes the world to an indented JSON scene document.
func (w *World) ExportScene() ([]byte, error) {
	data, err := json.MarshalIndent(w.Scene(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export scene: %w", err)
	}
	return data, nil
}

// ParseScene decodes a JSON scene document.
func ParseScene(data []byte) (Scene, error) {
	var scene Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("parse scene: %w", err)
	}
	return scene, nil
}

// LoadScene atomically replaces the world's bodies, constraints, and
// settings with the scene's contents. Trails are discarded; play state
// lives in the Loop and is unaffected. On error the world is unchanged.
func (w *World) LoadScene(scene Scene) error {
	bodies := make([]*Body, 0, len(scene.Objects))
	for _, obj := range scene.Objects {
		shape, err := shapeFromObject(obj)
		if err != nil {
			return err
		}
		b := &Body{
			ID:              obj.ID,
			Shape:           shape,
			Position:        obj.Position,
			Velocity:        obj.Velocity,
			Acceleration:    obj.Acceleration,
			Mass:            obj.Mass,
			Friction:        obj.Friction,
			Restitution:     obj.Restitution,
			Static:          obj.IsStatic,
			Angle:           obj.Angle,
			AngularVelocity: obj.AngularVelocity,
			Color:           obj.Color,
		}
		if b.Mass <= 0 {
			b.Mass = 1
		}
		bodies = append(bodies, b)
	}

	constraints := make([]*Constraint, 0, len(scene.Constraints))
	for _, sc := range scene.Constraints {
		c := &Constraint{
			ID:        sc.ID,
			Type:      sc.Type,
			BodyA:     sc.ObjectA,
			AnchorA:   sc.AnchorA,
			AnchorB:   sc.AnchorB,
			Length:    sc.Length,
			Stiffness: sc.Stiffness,
			Damping:   sc.Damping,
		}
		if sc.ObjectB != nil {
			c.BodyB = *sc.ObjectB
		}
		constraints = append(constraints, c)
	}

	w.bodies = bodies
	w.constraints = constraints
	w.Settings = scene.WorldSettings

	// Keep generated ids ahead of anything the scene brought in.
	for _, b := range w.bodies {
		bumpCounter(&w.nextBodyID, b.ID, "body")
	}
	for _, c := range w.constraints {
		bumpCounter(&w.nextConstraintID, c.ID, "constraint")
	}

	return nil
}

// LoadSceneJSON parses and loads a JSON scene document.
func (w *World) LoadSceneJSON(data []byte) error {
	scene, err := ParseScene(data)
	if err != nil {
		return err
	}
	return w.LoadScene(scene)
}

func shapeFromObject(obj SceneObject) (Shape, error) {
	switch obj.Type {
	case "circle":
		return Circle{Radius: obj.Radius}, nil
	case "rectangle":
		return Rectangle{Width: obj.Width, Height: obj.Height}, nil
	case "polygon":
		return Polygon{Points: obj.Points}, nil
	default:
		return nil, fmt.Errorf("load scene: unknown body type %q for %s", obj.Type, obj.ID)
	}
}
