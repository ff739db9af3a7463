package tumble

import (
	"fmt"
	"os"
	"time"
)

// stepStats holds per-step phase timings and contact counts.
// Only populated when World.debug is true.
type stepStats struct {
	integrateTime  time.Duration
	collideTime    time.Duration
	constraintTime time.Duration
	bodyCount      int
	contactCount   int
}

// SetDebugMode enables or disables debug mode. When enabled, per-step phase
// timings and contact counts are logged to stderr.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// debugLog prints step timing stats to stderr.
func (w *World) debugLog(stats stepStats) {
	if !w.debug {
		return
	}
	total := stats.integrateTime + stats.collideTime + stats.constraintTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[tumble] integrate: %v | collide: %v | constrain: %v | total: %v\n",
		stats.integrateTime, stats.collideTime, stats.constraintTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[tumble] bodies: %d | contacts: %d\n",
		stats.bodyCount, stats.contactCount)
}
