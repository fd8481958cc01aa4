package wizard

// RegionProfile is the resolved region context for the merchant's country:
// which core catalog modules are available there and which compliance regimes
// apply. It is supplied by the caller (the server exposes it alongside the
// vertical catalog).
type RegionProfile struct {
	Code           string   `json:"code"`
	CoreModules    []string `json:"core_modules"`
	ComplianceTags []string `json:"compliance_tags"`
}

// Summary is the read-only recap shown once provisioning completes. It is
// built once and never mutated.
type Summary struct {
	Vertical       Vertical `json:"vertical"`
	Headline       string   `json:"headline"`
	Message        string   `json:"message"`
	StoreName      string   `json:"store_name"`
	StoreURL       string   `json:"store_url"`
	Plan           string   `json:"plan"`
	CoreModules    []string `json:"core_modules"`
	ComplianceTags []string `json:"compliance_tags"`
}

var readyMessages = map[Vertical]string{
	VerticalEcommerce:       "Your online store is ready to take orders.",
	VerticalBusinessWebsite: "Your business website is live.",
	VerticalRealEstate:      "Your property listings portal is ready.",
	VerticalRestaurant:      "Your restaurant is ready to accept orders.",
	VerticalLMS:             "Your learning platform is ready for students.",
	VerticalHealthcare:      "Your practice portal is ready for patients.",
	VerticalFitness:         "Your fitness studio is ready for bookings.",
	VerticalSalon:           "Your salon is ready to take appointments.",
	VerticalFreelancer:      "Your portfolio workspace is live.",
	VerticalTravel:          "Your travel agency is ready for bookings.",
	VerticalAutomotive:      "Your automotive showroom is live.",
	VerticalEvent:           "Your event space is ready to sell tickets.",
	VerticalSaaS:            "Your subscription business is ready to launch.",
	VerticalLandlord:        "Your rental management workspace is ready.",
	VerticalEducation:       "Your education portal is ready for enrollment.",
	VerticalCrossBorderIOR:  "Your cross-border import workspace is ready.",
}

const genericReadyMessage = "Your workspace is ready."

// BuildSummary assembles the completion view from the collected form state
// and the resolved region. It is a pure projection: identical inputs yield
// identical output and the form state is never mutated. An unknown vertical
// falls back to a generic label set; that state should be unreachable since
// submission always carries a vertical.
func BuildSummary(vertical Vertical, form FormState, region RegionProfile) Summary {
	message, ok := readyMessages[vertical]
	if !ok {
		message = genericReadyMessage
	}

	modules := make([]string, len(region.CoreModules))
	copy(modules, region.CoreModules)
	tags := make([]string, len(region.ComplianceTags))
	copy(tags, region.ComplianceTags)

	url := ""
	if form.Store.Subdomain != "" {
		url = "https://" + form.Store.Subdomain + ".vendora.app"
	}

	return Summary{
		Vertical:       vertical,
		Headline:       "You're all set!",
		Message:        message,
		StoreName:      form.Store.Name,
		StoreURL:       url,
		Plan:           form.Plan.Plan,
		CoreModules:    modules,
		ComplianceTags: tags,
	}
}

// BuildRegistration assembles the creation payload from the collected form
// state. Tenant id is the chosen subdomain.
func BuildRegistration(form FormState) RegistrationRequest {
	return RegistrationRequest{
		TenantID:      form.Store.Subdomain,
		TenantName:    form.Store.Name,
		CompanyName:   form.Store.Name,
		Purpose:       string(form.Vertical),
		Plan:          form.Plan.Plan,
		PrimaryColor:  form.Branding.PrimaryColor,
		Font:          form.Branding.Font,
		BusinessType:  form.Business.BusinessType,
		AdminName:     form.Business.OwnerName,
		AdminEmail:    form.Business.Email,
		AdminPassword: form.Business.AdminPassword,
		Phone:         form.Business.Phone,
		Address:       form.Business.Address,
		City:          form.Business.City,
		Country:       form.Business.Country,
	}
}
