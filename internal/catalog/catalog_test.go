package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vendora/merchant-console/merchant-console-backend/pkg/wizard"
)

func TestEveryVerticalHasCatalogEntry(t *testing.T) {
	for _, tag := range wizard.Verticals {
		info, ok := Vertical(tag)
		assert.True(t, ok, "missing catalog entry for %s", tag)
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.StarterModules)
	}
}

func TestListVerticalsStableOrder(t *testing.T) {
	assert.Equal(t, ListVerticals(), ListVerticals())
	assert.Len(t, ListVerticals(), len(wizard.Verticals))
}

func TestResolveRegion(t *testing.T) {
	assert.Equal(t, "africa-west", ResolveRegion("NG").Code)
	assert.Equal(t, "africa-west", ResolveRegion("ng").Code)
	assert.Equal(t, "europe", ResolveRegion("DE").Code)
	assert.Equal(t, "north-america", ResolveRegion("US").Code)
	assert.Equal(t, "global", ResolveRegion("ZZ").Code)
	assert.Equal(t, "global", ResolveRegion("").Code)
}

func TestRegionProfileFeedsCompletionSummary(t *testing.T) {
	profile := RegionProfile("DE")
	assert.Equal(t, "europe", profile.Code)
	assert.Contains(t, profile.ComplianceTags, "GDPR")
	assert.NotEmpty(t, profile.CoreModules)
}

func TestPlans(t *testing.T) {
	def, ok := PlanByID(DefaultPlanID)
	assert.True(t, ok)
	assert.Equal(t, 0.0, def.PriceMonthly)

	_, ok = PlanByID("enterprise")
	assert.False(t, ok)

	assert.Len(t, ListPlans(), 3)
}
