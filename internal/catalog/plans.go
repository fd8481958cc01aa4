package catalog

// Plan is a subscription tier a merchant can select during onboarding.
type Plan struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	PriceMonthly float64 `json:"price_monthly"`
	ProductLimit int     `json:"product_limit"` // 0 means unlimited
	StaffLimit   int     `json:"staff_limit"`
}

// DefaultPlanID is pre-selected when the plan step renders.
const DefaultPlanID = "starter"

var plans = []Plan{
	{ID: "starter", Label: "Starter", PriceMonthly: 0, ProductLimit: 25, StaffLimit: 2},
	{ID: "growth", Label: "Growth", PriceMonthly: 29, ProductLimit: 500, StaffLimit: 10},
	{ID: "scale", Label: "Scale", PriceMonthly: 99, ProductLimit: 0, StaffLimit: 50},
}

// PlanByID looks up a plan.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// ListPlans returns all plans in display order.
func ListPlans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}
