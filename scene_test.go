package tumble

import (
	"encoding/json"
	"strings"
	"testing"
)

// buildScene populates a world with one of everything the wire format
// carries: all three shapes, a world-anchored rope, and a body-body spring.
func buildScene(w *World) {
	opts := BodyOptions{
		Position:        Vec2{100, 200},
		Velocity:        Vec2{5, -3},
		Mass:            2.5,
		Friction:        0.2,
		Restitution:     0.9,
		Angle:           0.3,
		AngularVelocity: 1.5,
		Color:           Color{0.2, 0.4, 0.6, 1},
	}
	a := w.AddBody(Circle{Radius: 25}, opts)

	boxOpts := DefaultBodyOptions(Vec2{300, 100})
	boxOpts.Static = true
	b := w.AddBody(Rectangle{Width: 80, Height: 40}, boxOpts)

	polyOpts := DefaultBodyOptions(Vec2{500, 300})
	w.AddBody(Polygon{Points: []Vec2{{-20, -20}, {20, -20}, {0, 25}}}, polyOpts)

	w.AddConstraint(Constraint{
		Type:    ConstraintRope,
		BodyA:   a,
		AnchorB: Vec2{100, 50},
		Length:  180,
	})
	w.AddConstraint(Constraint{
		Type:      ConstraintSpring,
		BodyA:     a,
		BodyB:     b,
		Length:    120,
		Stiffness: 4,
		Damping:   0.1,
	})

	w.Settings.Gravity = Vec2{0, 250}
	w.Settings.TimeScale = 0.8
	w.Settings.ShowTrails = true
}

func TestSceneRoundTrip(t *testing.T) {
	w := NewWorld()
	buildScene(w)

	data, err := w.ExportScene()
	if err != nil {
		t.Fatal(err)
	}

	w2 := NewWorld()
	if err := w2.LoadSceneJSON(data); err != nil {
		t.Fatal(err)
	}

	data2, err := w2.ExportScene()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(data2) {
		t.Errorf("round trip not lossless:\nfirst:\n%s\nsecond:\n%s", data, data2)
	}

	if len(w2.Bodies()) != 3 || len(w2.Constraints()) != 2 {
		t.Fatalf("loaded %d bodies and %d constraints, want 3 and 2",
			len(w2.Bodies()), len(w2.Constraints()))
	}

	orig := w.Bodies()[0]
	loaded := w2.Body(orig.ID)
	if loaded == nil {
		t.Fatalf("body %s missing after load", orig.ID)
	}
	assertVec(t, "position", loaded.Position, orig.Position)
	assertVec(t, "velocity", loaded.Velocity, orig.Velocity)
	assertNear(t, "mass", loaded.Mass, orig.Mass)
	assertNear(t, "angle", loaded.Angle, orig.Angle)
	if loaded.Shape != orig.Shape {
		t.Errorf("shape = %v, want %v", loaded.Shape, orig.Shape)
	}

	assertNear(t, "timeScale", w2.Settings.TimeScale, 0.8)
	if !w2.Settings.ShowTrails {
		t.Error("ShowTrails lost in round trip")
	}
}

func TestSceneWireFieldNames(t *testing.T) {
	// The export format is a stable contract; spot-check the field names.
	w := NewWorld()
	buildScene(w)

	data, err := w.ExportScene()
	if err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{
		`"objects"`, `"constraints"`, `"worldSettings"`,
		`"isStatic"`, `"angularVelocity"`, `"restitution"`,
		`"objectA"`, `"objectB"`, `"anchorB"`, `"stiffness"`,
		`"gravity"`, `"airResistance"`, `"timeScale"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("export missing field %s", field)
		}
	}
}

func TestSceneWorldAnchorExportsNullObjectB(t *testing.T) {
	w := NewWorld()
	id := w.AddBody(Circle{Radius: 10}, DefaultBodyOptions(Vec2{100, 100}))
	w.AddConstraint(Constraint{Type: ConstraintRope, BodyA: id, AnchorB: Vec2{50, 50}, Length: 80})

	var doc struct {
		Constraints []map[string]json.RawMessage `json:"constraints"`
	}
	data, err := w.ExportScene()
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if got := string(doc.Constraints[0]["objectB"]); got != "null" {
		t.Errorf("objectB = %s, want null for world-anchored constraints", got)
	}
}

func TestLoadSceneUnknownTypeFails(t *testing.T) {
	w := NewWorld()
	err := w.LoadSceneJSON([]byte(`{
		"objects": [{"id": "body-1", "type": "hexagon"}],
		"constraints": [],
		"worldSettings": {}
	}`))
	if err == nil {
		t.Fatal("expected error for unknown body type")
	}
	if !strings.Contains(err.Error(), "hexagon") {
		t.Errorf("error should name the bad type: %v", err)
	}
	// The failed load left the world untouched.
	if len(w.Bodies()) != 0 {
		t.Error("failed load must not mutate the world")
	}
}

func TestLoadSceneBumpsIDCounters(t *testing.T) {
	w := NewWorld()
	if err := w.LoadSceneJSON([]byte(`{
		"objects": [
			{"id": "body-7", "type": "circle", "radius": 10, "mass": 1,
			 "position": {"x": 0, "y": 0}, "velocity": {"x": 0, "y": 0},
			 "acceleration": {"x": 0, "y": 0},
			 "color": {"r": 1, "g": 1, "b": 1, "a": 1}}
		],
		"constraints": [],
		"worldSettings": {"timeScale": 1, "bounds": {"x": 0, "y": 0, "width": 800, "height": 600}}
	}`)); err != nil {
		t.Fatal(err)
	}

	id := w.AddBody(Circle{Radius: 5}, DefaultBodyOptions(Vec2{}))
	if id != "body-8" {
		t.Errorf("next id after loading body-7 = %s, want body-8", id)
	}
}

func TestLoadSceneCoercesBadMass(t *testing.T) {
	w := NewWorld()
	if err := w.LoadSceneJSON([]byte(`{
		"objects": [{"id": "body-1", "type": "circle", "radius": 10, "mass": 0,
			"position": {"x": 0, "y": 0}, "velocity": {"x": 0, "y": 0},
			"acceleration": {"x": 0, "y": 0},
			"color": {"r": 1, "g": 1, "b": 1, "a": 1}}],
		"constraints": [],
		"worldSettings": {}
	}`)); err != nil {
		t.Fatal(err)
	}
	if got := w.Body("body-1").Mass; got != 1 {
		t.Errorf("zero mass should coerce to 1, got %v", got)
	}
}
