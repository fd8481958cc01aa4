package catalog

import (
	"vendora/merchant-console/merchant-console-backend/pkg/wizard"
)

// VerticalInfo is the purpose-selection catalog entry for one business
// vertical: the display metadata shown in step one and the starter modules
// auto-activated during provisioning.
type VerticalInfo struct {
	Tag            wizard.Vertical `json:"tag"`
	Label          string          `json:"label"`
	Description    string          `json:"description"`
	StarterModules []string        `json:"starter_modules"`
}

var verticalCatalog = map[wizard.Vertical]VerticalInfo{
	wizard.VerticalEcommerce: {
		Tag: wizard.VerticalEcommerce, Label: "Online Store",
		Description:    "Sell physical or digital products online.",
		StarterModules: []string{"storefront", "catalog", "orders", "payments"},
	},
	wizard.VerticalBusinessWebsite: {
		Tag: wizard.VerticalBusinessWebsite, Label: "Business Website",
		Description:    "A presence site with pages, contact forms and leads.",
		StarterModules: []string{"pages", "forms", "leads"},
	},
	wizard.VerticalRealEstate: {
		Tag: wizard.VerticalRealEstate, Label: "Real Estate",
		Description:    "List properties and manage viewings.",
		StarterModules: []string{"pages", "listings", "leads"},
	},
	wizard.VerticalRestaurant: {
		Tag: wizard.VerticalRestaurant, Label: "Restaurant",
		Description:    "Menus, table bookings and online orders.",
		StarterModules: []string{"pages", "menus", "orders"},
	},
	wizard.VerticalLMS: {
		Tag: wizard.VerticalLMS, Label: "Learning Platform",
		Description:    "Courses, lessons and student progress.",
		StarterModules: []string{"courses", "students", "payments"},
	},
	wizard.VerticalHealthcare: {
		Tag: wizard.VerticalHealthcare, Label: "Healthcare Practice",
		Description:    "Appointments and patient intake.",
		StarterModules: []string{"pages", "appointments"},
	},
	wizard.VerticalFitness: {
		Tag: wizard.VerticalFitness, Label: "Fitness Studio",
		Description:    "Class schedules and memberships.",
		StarterModules: []string{"pages", "bookings", "memberships"},
	},
	wizard.VerticalSalon: {
		Tag: wizard.VerticalSalon, Label: "Salon & Spa",
		Description:    "Appointment booking and service menus.",
		StarterModules: []string{"pages", "bookings"},
	},
	wizard.VerticalFreelancer: {
		Tag: wizard.VerticalFreelancer, Label: "Freelancer",
		Description:    "Portfolio, services and invoicing.",
		StarterModules: []string{"pages", "invoices"},
	},
	wizard.VerticalTravel: {
		Tag: wizard.VerticalTravel, Label: "Travel Agency",
		Description:    "Packages, itineraries and bookings.",
		StarterModules: []string{"pages", "bookings", "payments"},
	},
	wizard.VerticalAutomotive: {
		Tag: wizard.VerticalAutomotive, Label: "Automotive",
		Description:    "Vehicle inventory and service bookings.",
		StarterModules: []string{"pages", "inventory", "leads"},
	},
	wizard.VerticalEvent: {
		Tag: wizard.VerticalEvent, Label: "Events & Ticketing",
		Description:    "Event pages and ticket sales.",
		StarterModules: []string{"events", "tickets", "payments"},
	},
	wizard.VerticalSaaS: {
		Tag: wizard.VerticalSaaS, Label: "SaaS Business",
		Description:    "Subscription plans and customer billing.",
		StarterModules: []string{"pages", "subscriptions", "billing"},
	},
	wizard.VerticalLandlord: {
		Tag: wizard.VerticalLandlord, Label: "Property Management",
		Description:    "Units, tenants and rent collection.",
		StarterModules: []string{"units", "tenancies", "payments"},
	},
	wizard.VerticalEducation: {
		Tag: wizard.VerticalEducation, Label: "Education",
		Description:    "Programs, admissions and fees.",
		StarterModules: []string{"pages", "admissions", "payments"},
	},
	wizard.VerticalCrossBorderIOR: {
		Tag: wizard.VerticalCrossBorderIOR, Label: "Cross-Border Import",
		Description:    "Importer-of-record sourcing and fulfilment.",
		StarterModules: []string{"sourcing", "shipments", "customs"},
	},
}

// Vertical looks up catalog metadata for a tag.
func Vertical(tag wizard.Vertical) (VerticalInfo, bool) {
	info, ok := verticalCatalog[tag]
	return info, ok
}

// ListVerticals returns the catalog in the stable order of wizard.Verticals.
func ListVerticals() []VerticalInfo {
	out := make([]VerticalInfo, 0, len(verticalCatalog))
	for _, tag := range wizard.Verticals {
		out = append(out, verticalCatalog[tag])
	}
	return out
}
