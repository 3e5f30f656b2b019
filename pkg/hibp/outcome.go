package hibp

// OutcomeKind enumerates the lifecycle states of a single lookup attempt.
type OutcomeKind int

const (
	NotSubmitted OutcomeKind = iota
	Searching
	Resolved
	Failed
)

// Outcome is the current state of a lookup as seen by a renderer. Result is
// meaningful only when Kind is Resolved, Err only when Kind is Failed. It is
// replaced wholesale on every transition, never mutated.
type Outcome struct {
	Kind   OutcomeKind
	Result BreachResult
	Err    string
}

// Session serializes the outcome transitions of successive lookups. Each
// submission gets a monotonically increasing id; a completion carrying any
// other id is stale (the user resubmitted while it was in flight) and is
// dropped instead of overwriting the newer state.
//
// Session is not internally locked. All transitions are expected to run on
// one goroutine, the single update point of the event loop that owns it.
type Session struct {
	seq     uint64
	outcome Outcome
}

// Outcome returns the current state as a value copy.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Begin records a new submission and moves to Searching. The returned id
// must be handed back with the eventual Resolve or Fail.
func (s *Session) Begin() uint64 {
	s.seq++
	s.outcome = Outcome{Kind: Searching}
	return s.seq
}

// Resolve completes the lookup identified by id with its breach result.
// It reports whether the transition was applied; a stale id is ignored.
func (s *Session) Resolve(id uint64, result BreachResult) bool {
	if id != s.seq || s.outcome.Kind != Searching {
		return false
	}

	s.outcome = Outcome{Kind: Resolved, Result: result}
	return true
}

// Fail completes the lookup identified by id with a human-readable error.
func (s *Session) Fail(id uint64, msg string) bool {
	if id != s.seq || s.outcome.Kind != Searching {
		return false
	}

	s.outcome = Outcome{Kind: Failed, Err: msg}
	return true
}

// Reset returns to NotSubmitted. Editing the password invalidates whatever
// the previous lookup resolved to, and bumping the sequence here makes any
// still in-flight completion stale.
func (s *Session) Reset() {
	s.seq++
	s.outcome = Outcome{Kind: NotSubmitted}
}
