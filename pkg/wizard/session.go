package wizard

// Direction records which way the last transition went. It only drives the
// presentation-layer slide animation; it has no effect on collected data.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// Session is the in-memory state of one onboarding run: the chosen vertical,
// the step plan derived from it, the current position and the collected form
// sections. It is owned by a single user and is not safe for concurrent use.
type Session struct {
	Form FormState

	steps     []Step
	index     int
	direction Direction
}

// NewSession creates a session positioned on the purpose step with no
// vertical chosen.
func NewSession() *Session {
	return &Session{steps: ResolveSteps("")}
}

// ChooseVertical sets the vertical and recomputes the step plan. Navigating
// back to the purpose step and picking a different vertical replaces the
// remaining plan; collected sections are kept (overwrite-only semantics).
func (s *Session) ChooseVertical(v Vertical) {
	s.Form.Vertical = v
	s.steps = ResolveSteps(v)
	if s.index >= len(s.steps) {
		s.index = len(s.steps) - 1
	}
}

// Steps returns the current step plan.
func (s *Session) Steps() []Step { return s.steps }

// Index returns the current step position.
func (s *Session) Index() int { return s.index }

// Current returns the step the merchant is on.
func (s *Session) Current() Step { return s.steps[s.index] }

// Direction returns the direction of the last transition.
func (s *Session) Direction() Direction { return s.direction }

// AtLastStep reports whether the session is on the final step, where the
// continue action submits instead of advancing.
func (s *Session) AtLastStep() bool { return s.index == len(s.steps)-1 }

// CanContinue reports whether the current step's required fields are
// satisfied.
func (s *Session) CanContinue() bool { return CanAdvance(s.Current().ID, s.Form) }

// Advance moves forward one step. It refuses to move when the current step's
// gate is not satisfied, and is a no-op at the last step: that case must
// trigger submission, never an index overflow.
func (s *Session) Advance() bool {
	if !s.CanContinue() || s.AtLastStep() {
		return false
	}
	s.index++
	s.direction = DirectionForward
	return true
}

// Retreat moves back one step; a no-op at the first step.
func (s *Session) Retreat() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	s.direction = DirectionBackward
	return true
}

// Progress returns percent complete based on position within the plan.
func (s *Session) Progress() float64 {
	if len(s.steps) <= 1 {
		return 0
	}
	return float64(s.index) / float64(len(s.steps)-1) * 100
}

// Reset discards all collected data and returns to the purpose step. This is
// the only way fields are ever deleted.
func (s *Session) Reset() {
	*s = *NewSession()
}
