package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBusiness() BusinessInfo {
	return BusinessInfo{
		OwnerName:          "Amina Yusuf",
		Email:              "amina@example.com",
		RegistrationNumber: "RC-118822",
		Country:            "NG",
	}
}

func TestCanAdvancePurpose(t *testing.T) {
	assert.False(t, CanAdvance(StepPurpose, FormState{}))
	assert.True(t, CanAdvance(StepPurpose, FormState{Vertical: VerticalEcommerce}))
	assert.False(t, CanAdvance(StepPurpose, FormState{Vertical: "space-tourism"}))
}

func TestCanAdvanceBusiness(t *testing.T) {
	form := FormState{Business: validBusiness()}
	assert.True(t, CanAdvance(StepBusiness, form))

	missing := form
	missing.Business.Country = ""
	assert.False(t, CanAdvance(StepBusiness, missing))

	missing = form
	missing.Business.RegistrationNumber = ""
	assert.False(t, CanAdvance(StepBusiness, missing))
}

func TestCanAdvanceStoreAndSite(t *testing.T) {
	form := FormState{Store: StoreSetup{Name: "Amina's Fabrics", Subdomain: "aminas-fabrics"}}
	assert.True(t, CanAdvance(StepStore, form))
	assert.True(t, CanAdvance(StepSite, form))

	assert.False(t, CanAdvance(StepStore, FormState{Store: StoreSetup{Name: "Amina's Fabrics"}}))
	assert.False(t, CanAdvance(StepSite, FormState{Store: StoreSetup{Subdomain: "aminas-fabrics"}}))
}

func TestCanAdvanceBrandingAndPlan(t *testing.T) {
	// Defaults are pre-filled by the UI, so these gates pass once populated.
	form := FormState{
		Branding: Branding{PrimaryColor: "#0f766e", Font: "Inter"},
		Plan:     PlanChoice{Plan: "starter"},
	}
	assert.True(t, CanAdvance(StepBranding, form))
	assert.True(t, CanAdvance(StepPlan, form))

	assert.False(t, CanAdvance(StepBranding, FormState{}))
	assert.False(t, CanAdvance(StepPlan, FormState{}))
}

func TestCanAdvancePayment(t *testing.T) {
	assert.False(t, CanAdvance(StepPayment, FormState{}))
	assert.False(t, CanAdvance(StepPayment, FormState{
		Payment: PaymentMethods{Enabled: map[string]bool{"card": false}},
	}))
	assert.True(t, CanAdvance(StepPayment, FormState{
		Payment: PaymentMethods{Enabled: map[string]bool{"cod": true}},
	}))
}

func TestCanAdvanceProductListingMenu(t *testing.T) {
	form := FormState{Product: FirstProduct{Name: "Ankara Wrap", Price: 45}}
	assert.True(t, CanAdvance(StepProduct, form))
	assert.True(t, CanAdvance(StepListing, form))
	assert.True(t, CanAdvance(StepMenu, form))

	assert.False(t, CanAdvance(StepProduct, FormState{Product: FirstProduct{Name: "Ankara Wrap"}}))
	assert.False(t, CanAdvance(StepProduct, FormState{Product: FirstProduct{Price: 45}}))
}

func TestCanAdvanceSourcing(t *testing.T) {
	assert.False(t, CanAdvance(StepSourcing, FormState{}))
	assert.False(t, CanAdvance(StepSourcing, FormState{
		Sourcing: SourcingProfile{TargetMarkets: []string{"US"}},
	}))
	assert.True(t, CanAdvance(StepSourcing, FormState{
		Sourcing: SourcingProfile{TargetMarkets: []string{"US"}, Categories: []string{"electronics"}},
	}))
}

func TestCanAdvanceUnknownStepFailsClosed(t *testing.T) {
	form := FormState{Vertical: VerticalEcommerce, Business: validBusiness()}
	assert.False(t, CanAdvance("review", form))
	assert.False(t, CanAdvance("", form))
}
