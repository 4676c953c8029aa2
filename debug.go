package jigsaw

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-frame render metrics.
// Only populated when debug mode is on.
type debugStats struct {
	buildTime time.Duration
	vertices  int
	indices   int
}

// debugOut is where debug diagnostics go.
var debugOut io.Writer = os.Stderr

// debugLog prints per-frame stats and the drag state to stderr.
func (s *Session) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[jigsaw] build: %v | vertices: %d | indices: %d | placed: %d/%d\n",
		stats.buildTime, stats.vertices, stats.indices, s.placed, s.store.Len())
	if s.drag.active {
		p := s.store.At(s.drag.index)
		_, _ = fmt.Fprintf(debugOut,
			"[jigsaw] dragging piece %d at (%.3f, %.3f) grab (%.3f, %.3f)\n",
			p.ID, p.Pos.X, p.Pos.Y, s.drag.grab.X, s.drag.grab.Y)
	}
}

// CheckInvariants verifies the store invariants and returns the first
// violation found. Intended for tests and debug builds.
func (s *Session) CheckInvariants() error {
	n := s.store.Len()
	seen := make([]bool, n)
	for i, id := range s.store.order {
		if id < 0 || id >= n || seen[id] {
			return fmt.Errorf("jigsaw: z-order slot %d holds invalid or duplicate id %d", i, id)
		}
		seen[id] = true
	}
	if s.drag.active {
		if s.drag.index != n-1 {
			return fmt.Errorf("jigsaw: dragged index %d is not the front (%d)", s.drag.index, n-1)
		}
		if s.store.At(s.drag.index).Snapped {
			return fmt.Errorf("jigsaw: dragging snapped piece %d", s.store.At(s.drag.index).ID)
		}
	}
	if got := s.store.Placed(); got != s.placed {
		return fmt.Errorf("jigsaw: placed counter %d disagrees with store %d", s.placed, got)
	}
	for i := range s.store.pieces {
		p := &s.store.pieces[i]
		if p.Snapped && p.Pos != p.Target {
			return fmt.Errorf("jigsaw: snapped piece %d is off target", p.ID)
		}
	}
	return nil
}
