package catalog

import (
	"strings"

	"vendora/merchant-console/merchant-console-backend/pkg/wizard"
)

// Region groups countries that share a module rollout and compliance regime.
type Region struct {
	Code           string   `json:"code"`
	Label          string   `json:"label"`
	Countries      []string `json:"countries"`
	CoreModules    []string `json:"core_modules"`
	ComplianceTags []string `json:"compliance_tags"`
}

var regions = []Region{
	{
		Code: "africa-west", Label: "West Africa",
		Countries:      []string{"NG", "GH", "SN", "CI"},
		CoreModules:    []string{"storefront", "orders", "payments", "logistics"},
		ComplianceTags: []string{"NDPR"},
	},
	{
		Code: "europe", Label: "Europe",
		Countries:      []string{"DE", "FR", "NL", "ES", "IT", "PL", "GB"},
		CoreModules:    []string{"storefront", "orders", "payments", "invoicing", "tax"},
		ComplianceTags: []string{"GDPR", "PSD2"},
	},
	{
		Code: "north-america", Label: "North America",
		Countries:      []string{"US", "CA"},
		CoreModules:    []string{"storefront", "orders", "payments", "tax"},
		ComplianceTags: []string{"CCPA", "PCI-DSS"},
	},
	{
		Code: "mena", Label: "Middle East & North Africa",
		Countries:      []string{"AE", "SA", "EG", "MA"},
		CoreModules:    []string{"storefront", "orders", "payments"},
		ComplianceTags: []string{"PDPL"},
	},
	{
		Code: "asia-pacific", Label: "Asia Pacific",
		Countries:      []string{"SG", "MY", "ID", "PH", "IN", "AU"},
		CoreModules:    []string{"storefront", "orders", "payments", "logistics"},
		ComplianceTags: []string{"PDPA"},
	},
}

// defaultRegion backs countries with no dedicated rollout yet.
var defaultRegion = Region{
	Code:           "global",
	Label:          "Global",
	CoreModules:    []string{"storefront", "orders", "payments"},
	ComplianceTags: []string{"PCI-DSS"},
}

// ResolveRegion maps an ISO country code to its region. Unknown or empty
// countries resolve to the global default; the lookup never fails.
func ResolveRegion(country string) Region {
	cc := strings.ToUpper(strings.TrimSpace(country))
	for _, r := range regions {
		for _, c := range r.Countries {
			if c == cc {
				return r
			}
		}
	}
	return defaultRegion
}

// RegionProfile projects a region into the shape the wizard's completion
// aggregator consumes.
func RegionProfile(country string) wizard.RegionProfile {
	r := ResolveRegion(country)
	return wizard.RegionProfile{
		Code:           r.Code,
		CoreModules:    r.CoreModules,
		ComplianceTags: r.ComplianceTags,
	}
}
