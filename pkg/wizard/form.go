package wizard

// FormState accumulates the per-step field sets collected across the wizard.
// Sections are filled in as the merchant advances; fields are only ever
// overwritten, never cleared, except by a full session reset.
type FormState struct {
	Vertical Vertical        `json:"vertical"`
	Business BusinessInfo    `json:"business"`
	Store    StoreSetup      `json:"store"`
	Branding Branding        `json:"branding"`
	Plan     PlanChoice      `json:"plan"`
	Payment  PaymentMethods  `json:"payment"`
	Product  FirstProduct    `json:"product"`
	Sourcing SourcingProfile `json:"sourcing"`
}

// BusinessInfo covers the business step.
type BusinessInfo struct {
	OwnerName          string `json:"owner_name"`
	Email              string `json:"email"`
	AdminPassword      string `json:"-"`
	RegistrationNumber string `json:"registration_number"`
	BusinessType       string `json:"business_type"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	City               string `json:"city"`
	Country            string `json:"country"`
}

// StoreSetup covers both the store and site steps; they share a section.
type StoreSetup struct {
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
}

// Branding covers the branding step. Defaults are pre-filled by the UI, so
// its gate is satisfiable as soon as the step renders.
type Branding struct {
	PrimaryColor string `json:"primary_color"`
	Font         string `json:"font"`
}

// PlanChoice covers the plan step. A default plan is pre-selected.
type PlanChoice struct {
	Plan string `json:"plan"`
}

// PaymentMethods covers the payment step; keys are method ids ("cod",
// "card", "wallet"), values are the toggle state.
type PaymentMethods struct {
	Enabled map[string]bool `json:"enabled"`
}

// AnyEnabled reports whether at least one payment method is toggled on.
func (p PaymentMethods) AnyEnabled() bool {
	for _, on := range p.Enabled {
		if on {
			return true
		}
	}
	return false
}

// FirstProduct covers the product, listing and menu steps; all three collect
// a name and a price.
type FirstProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SourcingProfile covers the sourcing step for cross-border-ior merchants.
type SourcingProfile struct {
	TargetMarkets []string `json:"target_markets"`
	Categories    []string `json:"categories"`
}

// CanAdvance reports whether the required fields of the given step are
// satisfied. It is a pure predicate meant to be re-evaluated on every form
// change. Unknown step ids are never advanceable.
func CanAdvance(step StepID, form FormState) bool {
	switch step {
	case StepPurpose:
		return form.Vertical.Valid()
	case StepBusiness:
		b := form.Business
		return b.OwnerName != "" && b.Email != "" && b.RegistrationNumber != "" && b.Country != ""
	case StepStore, StepSite:
		return form.Store.Name != "" && form.Store.Subdomain != ""
	case StepBranding:
		return form.Branding.PrimaryColor != "" && form.Branding.Font != ""
	case StepPlan:
		return form.Plan.Plan != ""
	case StepPayment:
		return form.Payment.AnyEnabled()
	case StepProduct, StepListing, StepMenu:
		return form.Product.Name != "" && form.Product.Price > 0
	case StepSourcing:
		return len(form.Sourcing.TargetMarkets) > 0 && len(form.Sourcing.Categories) > 0
	default:
		return false
	}
}
