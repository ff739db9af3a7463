package tumble

import (
	"testing"
	"time"
)

func TestLoopStartsPaused(t *testing.T) {
	l := NewLoop(NewWorld())
	if l.Playing() {
		t.Fatal("a new loop must start paused")
	}
}

func TestLoopPausedTickIsNoOp(t *testing.T) {
	w := NewWorld()
	w.AddBody(Circle{Radius: 10}, DefaultBodyOptions(Vec2{100, 100}))
	l := NewLoop(w)

	before, err := w.ExportScene()
	if err != nil {
		t.Fatal(err)
	}

	clock := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		clock = clock.Add(16 * time.Millisecond)
		if dt := l.Tick(clock); dt != 0 {
			t.Fatalf("paused tick stepped %v seconds", dt)
		}
	}

	after, err := w.ExportScene()
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("paused ticks must leave world state bit-identical")
	}
}

func TestLoopMeasuresElapsedTime(t *testing.T) {
	w := zeroGravityWorld()
	w.Settings.Gravity = Vec2{0, 100}
	id := w.AddBody(Circle{Radius: 5}, BodyOptions{Position: Vec2{0, 0}, Mass: 1})
	l := NewLoop(w)
	l.Play()

	clock := time.Unix(0, 0)
	// First tick establishes the time base without stepping.
	if dt := l.Tick(clock); dt != 0 {
		t.Fatalf("first tick stepped %v seconds", dt)
	}

	clock = clock.Add(100 * time.Millisecond)
	if dt := l.Tick(clock); dt != 0.1 {
		t.Fatalf("tick stepped %v seconds, want 0.1", dt)
	}
	assertVec(t, "velocity", w.Body(id).Velocity, Vec2{0, 10})
}

func TestLoopClampsLargeDeltas(t *testing.T) {
	w := zeroGravityWorld()
	l := NewLoop(w)
	l.Play()

	clock := time.Unix(0, 0)
	l.Tick(clock)

	// Simulate a backgrounded window: 5 seconds between frames.
	clock = clock.Add(5 * time.Second)
	if dt := l.Tick(clock); dt != defaultMaxDelta {
		t.Errorf("tick stepped %v seconds, want the %v cap", dt, defaultMaxDelta)
	}
}

func TestLoopPauseDropsTimeBase(t *testing.T) {
	w := zeroGravityWorld()
	w.Settings.Gravity = Vec2{0, 100}
	id := w.AddBody(Circle{Radius: 5}, BodyOptions{Position: Vec2{0, 0}, Mass: 1})
	l := NewLoop(w)

	clock := time.Unix(0, 0)
	l.Play()
	l.Tick(clock)

	l.Pause()
	// A long pause must not accrue simulated time.
	clock = clock.Add(10 * time.Second)
	l.Play()
	if dt := l.Tick(clock); dt != 0 {
		t.Fatalf("first tick after resume stepped %v seconds", dt)
	}
	assertVec(t, "velocity", w.Body(id).Velocity, Vec2{})
}

func TestLoopToggle(t *testing.T) {
	l := NewLoop(NewWorld())
	l.Toggle()
	if !l.Playing() {
		t.Error("toggle from paused should play")
	}
	l.Toggle()
	if l.Playing() {
		t.Error("toggle from playing should pause")
	}
}

func TestLoopResetPausesAndClears(t *testing.T) {
	w := NewWorld()
	w.AddBody(Circle{Radius: 10}, DefaultBodyOptions(Vec2{100, 100}))
	w.AddConstraint(Constraint{Type: ConstraintRope, BodyA: "body-1", AnchorB: Vec2{}, Length: 10})
	l := NewLoop(w)
	l.Play()

	l.Reset()

	if l.Playing() {
		t.Error("reset must pause the loop")
	}
	if len(w.Bodies()) != 0 || len(w.Constraints()) != 0 {
		t.Error("reset must clear the world")
	}
}
