package jigsaw

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugLog(t *testing.T) {
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	defer func() { debugOut = old }()

	s := singlePiece(Vec2{0.5, 0.5})
	s.debugLog(debugStats{vertices: 4, indices: 6})
	if buf.Len() != 0 {
		t.Error("debugLog should be silent when debug mode is off")
	}

	s.SetDebugMode(true)
	s.Step(press(Vec2{0.5, 0.5}))
	s.debugLog(debugStats{vertices: 4, indices: 6})
	out := buf.String()
	if !strings.Contains(out, "vertices: 4") || !strings.Contains(out, "dragging piece 0") {
		t.Errorf("unexpected debug output:\n%s", out)
	}
}

func TestCheckInvariants_DetectsViolations(t *testing.T) {
	s := singlePiece(Vec2{0.5, 0.5})
	if err := s.CheckInvariants(); err != nil {
		t.Fatalf("fresh session: %v", err)
	}

	s.Store().At(0).Snapped = true // off target and not counted
	if err := s.CheckInvariants(); err == nil {
		t.Error("expected placed counter mismatch")
	}
	s.placed = 1
	if err := s.CheckInvariants(); err == nil {
		t.Error("expected off-target snapped piece")
	}
	s.Store().At(0).Pos = s.Store().At(0).Target
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("consistent state reported: %v", err)
	}
}
