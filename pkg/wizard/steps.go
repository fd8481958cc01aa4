package wizard

// Vertical is the business purpose a merchant selects in the first step of
// onboarding. The set is closed; adding a vertical means adding a constant
// here and a branch in ResolveSteps.
type Vertical string

const (
	VerticalEcommerce       Vertical = "ecommerce"
	VerticalBusinessWebsite Vertical = "business-website"
	VerticalRealEstate      Vertical = "real-estate"
	VerticalRestaurant      Vertical = "restaurant"
	VerticalLMS             Vertical = "lms"
	VerticalHealthcare      Vertical = "healthcare"
	VerticalFitness         Vertical = "fitness"
	VerticalSalon           Vertical = "salon"
	VerticalFreelancer      Vertical = "freelancer"
	VerticalTravel          Vertical = "travel"
	VerticalAutomotive      Vertical = "automotive"
	VerticalEvent           Vertical = "event"
	VerticalSaaS            Vertical = "saas"
	VerticalLandlord        Vertical = "landlord"
	VerticalEducation       Vertical = "education"
	VerticalCrossBorderIOR  Vertical = "cross-border-ior"
)

// Verticals lists every recognized vertical tag.
var Verticals = []Vertical{
	VerticalEcommerce,
	VerticalBusinessWebsite,
	VerticalRealEstate,
	VerticalRestaurant,
	VerticalLMS,
	VerticalHealthcare,
	VerticalFitness,
	VerticalSalon,
	VerticalFreelancer,
	VerticalTravel,
	VerticalAutomotive,
	VerticalEvent,
	VerticalSaaS,
	VerticalLandlord,
	VerticalEducation,
	VerticalCrossBorderIOR,
}

// Valid reports whether v is one of the recognized vertical tags.
func (v Vertical) Valid() bool {
	switch v {
	case VerticalEcommerce, VerticalBusinessWebsite, VerticalRealEstate,
		VerticalRestaurant, VerticalLMS, VerticalHealthcare, VerticalFitness,
		VerticalSalon, VerticalFreelancer, VerticalTravel, VerticalAutomotive,
		VerticalEvent, VerticalSaaS, VerticalLandlord, VerticalEducation,
		VerticalCrossBorderIOR:
		return true
	}
	return false
}

// StepID identifies a wizard step. Ids are stable across verticals; the same
// id always carries the same form section.
type StepID string

const (
	StepPurpose  StepID = "purpose"
	StepBusiness StepID = "business"
	StepStore    StepID = "store"
	StepSite     StepID = "site"
	StepBranding StepID = "branding"
	StepPlan     StepID = "plan"
	StepPayment  StepID = "payment"
	StepProduct  StepID = "product"
	StepListing  StepID = "listing"
	StepMenu     StepID = "menu"
	StepSourcing StepID = "sourcing"
)

// Step is a single entry in a step plan.
type Step struct {
	ID    StepID `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var stepDefs = map[StepID]Step{
	StepPurpose:  {ID: StepPurpose, Label: "Business Purpose", Icon: "compass"},
	StepBusiness: {ID: StepBusiness, Label: "Business Info", Icon: "briefcase"},
	StepStore:    {ID: StepStore, Label: "Store Setup", Icon: "storefront"},
	StepSite:     {ID: StepSite, Label: "Site Setup", Icon: "globe"},
	StepBranding: {ID: StepBranding, Label: "Branding", Icon: "palette"},
	StepPlan:     {ID: StepPlan, Label: "Plan", Icon: "layers"},
	StepPayment:  {ID: StepPayment, Label: "Payments", Icon: "credit-card"},
	StepProduct:  {ID: StepProduct, Label: "First Product", Icon: "package"},
	StepListing:  {ID: StepListing, Label: "First Listing", Icon: "home"},
	StepMenu:     {ID: StepMenu, Label: "First Menu Item", Icon: "utensils"},
	StepSourcing: {ID: StepSourcing, Label: "Sourcing Profile", Icon: "ship"},
}

func steps(ids ...StepID) []Step {
	out := make([]Step, 0, len(ids))
	for _, id := range ids {
		out = append(out, stepDefs[id])
	}
	return out
}

// ResolveSteps computes the ordered step plan for a vertical. The plan always
// begins with the purpose step; an empty or unrecognized tag yields the
// minimal plan of just that step. The function is pure and never fails.
func ResolveSteps(vertical Vertical) []Step {
	switch vertical {
	case VerticalEcommerce:
		return steps(StepPurpose, StepBusiness, StepStore, StepBranding, StepPlan, StepPayment, StepProduct)
	case VerticalCrossBorderIOR:
		// IOR merchants source abroad before they sell; the sourcing profile
		// replaces the store/site step entirely.
		return steps(StepPurpose, StepBusiness, StepSourcing, StepBranding, StepPlan, StepPayment, StepProduct)
	case VerticalRealEstate:
		return steps(StepPurpose, StepBusiness, StepSite, StepBranding, StepPlan, StepListing)
	case VerticalRestaurant:
		return steps(StepPurpose, StepBusiness, StepSite, StepBranding, StepPlan, StepMenu)
	case VerticalBusinessWebsite, VerticalLMS, VerticalHealthcare, VerticalFitness,
		VerticalSalon, VerticalFreelancer, VerticalTravel, VerticalAutomotive,
		VerticalEvent, VerticalSaaS, VerticalLandlord, VerticalEducation:
		return steps(StepPurpose, StepBusiness, StepSite, StepBranding, StepPlan)
	default:
		return steps(StepPurpose)
	}
}
