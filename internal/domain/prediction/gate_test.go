package prediction

import (
	"testing"
	"time"
)

func TestGate_CanCreate_ClosesExactlyAtCutoff(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	gate := Gate{CreateCutoff: time.Hour}
	deadline := kickoff.Add(-time.Hour)

	if !gate.CanCreate(kickoff, deadline.Add(-time.Second)) {
		t.Fatalf("one second before the deadline must be allowed")
	}
	if gate.CanCreate(kickoff, deadline) {
		t.Fatalf("the deadline instant itself must be rejected")
	}
	if gate.CanCreate(kickoff, deadline.Add(time.Second)) {
		t.Fatalf("past the deadline must be rejected")
	}
	if !gate.CreateDeadline(kickoff).Equal(deadline) {
		t.Fatalf("unexpected deadline: got=%v want=%v", gate.CreateDeadline(kickoff), deadline)
	}
}

func TestGate_ZeroCutoffAllowsUntilKickoff(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	gate := Gate{}

	if !gate.CanCreate(kickoff, kickoff.Add(-time.Second)) {
		t.Fatalf("zero cutoff must allow writes right up to kickoff")
	}
	if gate.CanCancel(kickoff, kickoff) {
		t.Fatalf("kickoff instant must close the cancel window")
	}
}
