package tumble

import "time"

// defaultMaxDelta caps a single frame's measured delta. A backgrounded
// window can go seconds between ticks; integrating that much time in one
// step launches every body through the walls.
const defaultMaxDelta = 1.0 / 20

// Loop drives a World in real time. It has exactly two states, running and
// paused; while paused no Step calls happen and the world is frozen. Loop is
// deliberately independent of any rendering framework — the host calls Tick
// once per display frame with the current time.
type Loop struct {
	world   *World
	playing bool
	last    time.Time

	// MaxDelta caps the per-frame delta in seconds. Zero means the default
	// of 50ms.
	MaxDelta float64
}

// NewLoop creates a paused loop around the given world.
func NewLoop(world *World) *Loop {
	return &Loop{world: world}
}

// World returns the world this loop drives.
func (l *Loop) World() *World {
	return l.world
}

// Playing reports whether the loop is running.
func (l *Loop) Playing() bool {
	return l.playing
}

// Play transitions to running. The first tick after Play establishes the
// time base, so pausing never accrues simulated time.
func (l *Loop) Play() {
	if l.playing {
		return
	}
	l.playing = true
	l.last = time.Time{}
}

// Pause transitions to paused, freezing the world.
func (l *Loop) Pause() {
	l.playing = false
	l.last = time.Time{}
}

// Toggle flips between running and paused.
func (l *Loop) Toggle() {
	if l.playing {
		l.Pause()
	} else {
		l.Play()
	}
}

// Reset pauses the loop and clears the world's bodies, constraints, and
// trails. Settings are preserved.
func (l *Loop) Reset() {
	l.Pause()
	l.world.Clear()
}

// Tick advances the simulation by the real time elapsed since the previous
// tick, capped at MaxDelta, and returns the delta that was stepped. While
// paused it is a no-op returning 0.
func (l *Loop) Tick(now time.Time) float64 {
	if !l.playing {
		return 0
	}
	if l.last.IsZero() {
		l.last = now
		return 0
	}

	dt := now.Sub(l.last).Seconds()
	l.last = now

	max := l.MaxDelta
	if max <= 0 {
		max = defaultMaxDelta
	}
	if dt > max {
		dt = max
	}
	if dt <= 0 {
		return 0
	}

	l.world.Step(dt)
	return dt
}
