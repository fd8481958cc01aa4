package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStepsAlwaysStartsWithPurpose(t *testing.T) {
	for _, v := range Verticals {
		plan := ResolveSteps(v)
		assert.NotEmpty(t, plan, "vertical %s", v)
		assert.Equal(t, StepPurpose, plan[0].ID, "vertical %s", v)

		seen := map[StepID]bool{}
		for _, step := range plan {
			assert.False(t, seen[step.ID], "duplicate step %s in plan for %s", step.ID, v)
			seen[step.ID] = true
		}
	}
}

func TestResolveStepsNoSelection(t *testing.T) {
	plan := ResolveSteps("")
	assert.Len(t, plan, 1)
	assert.Equal(t, StepPurpose, plan[0].ID)
}

func TestResolveStepsUnknownVertical(t *testing.T) {
	plan := ResolveSteps("space-tourism")
	assert.Len(t, plan, 1)
	assert.Equal(t, StepPurpose, plan[0].ID)
}

func TestResolveStepsEcommerce(t *testing.T) {
	plan := ResolveSteps(VerticalEcommerce)
	ids := make([]StepID, len(plan))
	for i, s := range plan {
		ids[i] = s.ID
	}
	assert.Equal(t, []StepID{StepPurpose, StepBusiness, StepStore, StepBranding, StepPlan, StepPayment, StepProduct}, ids)
}

func TestResolveStepsDomainSuffixes(t *testing.T) {
	realEstate := ResolveSteps(VerticalRealEstate)
	assert.Equal(t, StepListing, realEstate[len(realEstate)-1].ID)

	restaurant := ResolveSteps(VerticalRestaurant)
	assert.Equal(t, StepMenu, restaurant[len(restaurant)-1].ID)

	ior := ResolveSteps(VerticalCrossBorderIOR)
	var hasSourcing bool
	for _, s := range ior {
		assert.NotEqual(t, StepStore, s.ID)
		assert.NotEqual(t, StepSite, s.ID)
		if s.ID == StepSourcing {
			hasSourcing = true
		}
	}
	assert.True(t, hasSourcing)
}

func TestResolveStepsDeterministic(t *testing.T) {
	assert.Equal(t, ResolveSteps(VerticalSaaS), ResolveSteps(VerticalSaaS))
}

func TestVerticalValid(t *testing.T) {
	for _, v := range Verticals {
		assert.True(t, v.Valid())
	}
	assert.False(t, Vertical("").Valid())
	assert.False(t, Vertical("space-tourism").Valid())
}
