package match

import "testing"

func intPtr(v int) *int { return &v }

func TestApplyResult_CompletesOnce(t *testing.T) {
	t.Parallel()

	m := Match{ID: "m1", Status: StatusLive, ScoreA: intPtr(1), ScoreB: intPtr(0)}

	if !ApplyResult(&m, StatusCompleted, 2, 1) {
		t.Fatalf("first completion must report justCompleted")
	}
	if m.Status != StatusCompleted {
		t.Fatalf("unexpected status: got=%s want=%s", m.Status, StatusCompleted)
	}
	if *m.ScoreA != 2 || *m.ScoreB != 1 {
		t.Fatalf("unexpected final score: got=%d-%d want=2-1", *m.ScoreA, *m.ScoreB)
	}

	if ApplyResult(&m, StatusCompleted, 2, 1) {
		t.Fatalf("re-applying the result must not report justCompleted")
	}
}

func TestApplyResult_CompletedIsTerminal(t *testing.T) {
	t.Parallel()

	m := Match{ID: "m1", Status: StatusCompleted, ScoreA: intPtr(3), ScoreB: intPtr(0)}

	if ApplyResult(&m, StatusLive, 1, 1) {
		t.Fatalf("a completed match must not reopen")
	}
	if m.Status != StatusCompleted {
		t.Fatalf("status changed after terminal state: got=%s", m.Status)
	}
	if *m.ScoreA != 3 || *m.ScoreB != 0 {
		t.Fatalf("final score changed after terminal state: got=%d-%d", *m.ScoreA, *m.ScoreB)
	}
}

func TestApplyResult_LiveNeverMovesBackwards(t *testing.T) {
	t.Parallel()

	for _, regressed := range []string{StatusUpcoming, StatusPostponed, StatusCancelled} {
		m := Match{ID: "m1", Status: StatusLive, ScoreA: intPtr(1), ScoreB: intPtr(0)}

		if ApplyResult(&m, regressed, 0, 0) {
			t.Fatalf("%s report on a live match must not complete it", regressed)
		}
		if m.Status != StatusLive {
			t.Fatalf("live match regressed to %s", m.Status)
		}
		if m.ScoreA == nil || m.ScoreB == nil || *m.ScoreA != 1 || *m.ScoreB != 0 {
			t.Fatalf("live score changed on a rejected %s report", regressed)
		}
	}

	m := Match{ID: "m1", Status: StatusLive, ScoreA: intPtr(1), ScoreB: intPtr(0)}
	ApplyResult(&m, StatusLive, 2, 0)
	if *m.ScoreA != 2 || *m.ScoreB != 0 {
		t.Fatalf("live score update rejected: got=%d-%d want=2-0", *m.ScoreA, *m.ScoreB)
	}
}

func TestApplyResult_ScoresOnlyOnLiveOrCompleted(t *testing.T) {
	t.Parallel()

	m := Match{ID: "m1", Status: StatusUpcoming}

	ApplyResult(&m, StatusPostponed, 0, 0)
	if m.ScoreA != nil || m.ScoreB != nil {
		t.Fatalf("postponed match must not carry scores")
	}

	ApplyResult(&m, StatusLive, 1, 0)
	if m.ScoreA == nil || *m.ScoreA != 1 || *m.ScoreB != 0 {
		t.Fatalf("live match must carry the reported score")
	}
}

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	if got := NormalizeStatus("  live "); got != StatusLive {
		t.Fatalf("unexpected normalization: got=%q want=%q", got, StatusLive)
	}
	if got := NormalizeStatus(""); got != StatusUpcoming {
		t.Fatalf("empty status must default to UPCOMING, got=%q", got)
	}
	if IsValidStatus("HALFTIME") {
		t.Fatalf("unknown status must not validate")
	}
}
