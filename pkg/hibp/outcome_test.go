package hibp

import "testing"

func TestSessionInitialState(t *testing.T) {
	var s Session
	if s.Outcome().Kind != NotSubmitted {
		t.Errorf("A fresh session should start as NotSubmitted")
	}
}

func TestSessionResolveCycle(t *testing.T) {
	var s Session

	id := s.Begin()
	if s.Outcome().Kind != Searching {
		t.Errorf("Begin should move to Searching")
	}

	if !s.Resolve(id, BreachResult{Sites: 1, Occurrences: 5}) {
		t.Fatalf("Resolve with the current id should apply")
	}

	outcome := s.Outcome()
	if outcome.Kind != Resolved || outcome.Result.Occurrences != 5 {
		t.Errorf("Resolved outcome should carry the result, got %+v", outcome)
	}
}

func TestSessionFailCycle(t *testing.T) {
	var s Session

	id := s.Begin()
	if !s.Fail(id, "connection refused") {
		t.Fatalf("Fail with the current id should apply")
	}

	outcome := s.Outcome()
	if outcome.Kind != Failed || outcome.Err != "connection refused" {
		t.Errorf("Failed outcome should carry the message, got %+v", outcome)
	}
}

func TestSessionIgnoresStaleResult(t *testing.T) {
	var s Session

	stale := s.Begin()
	latest := s.Begin()

	// The slow first lookup lands after the resubmission.
	if s.Resolve(stale, BreachResult{Sites: 9}) {
		t.Errorf("A stale resolve should be dropped")
	}

	if s.Outcome().Kind != Searching {
		t.Errorf("Stale resolve should not overwrite the newer Searching state")
	}

	if !s.Resolve(latest, BreachResult{Sites: 1}) {
		t.Errorf("The latest lookup should still resolve")
	}
}

func TestSessionResetInvalidatesInFlight(t *testing.T) {
	var s Session

	id := s.Begin()
	s.Reset()

	if s.Outcome().Kind != NotSubmitted {
		t.Errorf("Reset should return to NotSubmitted")
	}

	if s.Fail(id, "late failure") {
		t.Errorf("A completion from before the reset should be dropped")
	}

	if s.Outcome().Kind != NotSubmitted {
		t.Errorf("State should survive a late completion untouched")
	}
}

func TestSessionResolvedCanBeSuperseded(t *testing.T) {
	var s Session

	id := s.Begin()
	s.Resolve(id, BreachResult{Sites: 1})

	// Resubmission after a resolved lookup starts over.
	next := s.Begin()
	if s.Outcome().Kind != Searching {
		t.Errorf("Resolved is not terminal, Begin should supersede it")
	}

	if s.Resolve(id, BreachResult{Sites: 2}) {
		t.Errorf("The superseded id should no longer apply")
	}

	if !s.Fail(next, "boom") {
		t.Errorf("The new id should apply")
	}
}
