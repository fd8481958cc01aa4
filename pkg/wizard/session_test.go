package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ecommerceSession() *Session {
	s := NewSession()
	s.ChooseVertical(VerticalEcommerce)
	s.Form.Business = validBusiness()
	s.Form.Store = StoreSetup{Name: "Amina's Fabrics", Subdomain: "aminas-fabrics"}
	s.Form.Branding = Branding{PrimaryColor: "#0f766e", Font: "Inter"}
	s.Form.Plan = PlanChoice{Plan: "starter"}
	s.Form.Payment = PaymentMethods{Enabled: map[string]bool{"card": true}}
	s.Form.Product = FirstProduct{Name: "Ankara Wrap", Price: 45}
	return s
}

func TestSessionStartsOnPurpose(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StepPurpose, s.Current().ID)
	assert.Equal(t, 0, s.Index())
	assert.Len(t, s.Steps(), 1)
}

func TestSessionAdvanceBlockedByGate(t *testing.T) {
	s := NewSession()
	s.ChooseVertical(VerticalEcommerce)
	assert.True(t, s.Advance()) // purpose gate: vertical chosen

	// Business step with nothing collected.
	assert.Equal(t, StepBusiness, s.Current().ID)
	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.Index())
}

func TestSessionAdvanceAtLastStepIsNoOp(t *testing.T) {
	s := ecommerceSession()
	for !s.AtLastStep() {
		assert.True(t, s.Advance())
	}

	last := s.Index()
	assert.True(t, s.CanContinue()) // submission is allowed, movement is not
	assert.False(t, s.Advance())
	assert.Equal(t, last, s.Index())
}

func TestSessionRetreatAtFirstStepIsNoOp(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Retreat())
	assert.Equal(t, 0, s.Index())
}

func TestSessionDirectionTracksLastTransition(t *testing.T) {
	s := ecommerceSession()
	assert.True(t, s.Advance())
	assert.Equal(t, DirectionForward, s.Direction())
	assert.True(t, s.Retreat())
	assert.Equal(t, DirectionBackward, s.Direction())
}

func TestSessionProgress(t *testing.T) {
	s := ecommerceSession()
	assert.Equal(t, 0.0, s.Progress())
	for !s.AtLastStep() {
		s.Advance()
	}
	assert.Equal(t, 100.0, s.Progress())
}

func TestSessionChooseVerticalReclampsIndex(t *testing.T) {
	s := ecommerceSession()
	for !s.AtLastStep() {
		s.Advance()
	}
	// Switching to a shorter plan must keep the index in bounds.
	s.ChooseVertical(VerticalSalon)
	assert.Less(t, s.Index(), len(s.Steps()))
}

func TestSessionReset(t *testing.T) {
	s := ecommerceSession()
	s.Advance()
	s.Reset()
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, FormState{}, s.Form)
	assert.Len(t, s.Steps(), 1)
}
