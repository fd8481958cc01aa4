package tenant

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status is the lifecycle state of a tenant record. Provisioning creates
// tenants in StatusCreating; the pipeline activates them.
type Status string

const (
	StatusCreating  Status = "creating"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusFailed    Status = "failed"
)

// Tenant is the merchant workspace created by onboarding.
type Tenant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Subdomain   string    `gorm:"size:63;uniqueIndex" json:"subdomain"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	CompanyName string    `gorm:"size:120" json:"company_name"`
	Vertical    string    `gorm:"size:40;index" json:"vertical"`
	Plan        string    `gorm:"size:40" json:"plan"`
	Country     string    `gorm:"size:2" json:"country"`
	Region      string    `gorm:"size:40" json:"region"`
	Status      Status    `gorm:"size:20;index;default:creating" json:"status"`

	// Branding and the activated module set are stored as JSON documents;
	// modules vary per vertical and region.
	Branding      datatypes.JSON `json:"branding"`
	ActiveModules datatypes.JSON `json:"active_modules"`

	// SchemaName is the isolated Postgres schema assigned during the
	// creating_db stage.
	SchemaName string `gorm:"size:80" json:"schema_name"`

	// Pending admin credentials captured at registration; materialized into
	// an AdminUser row during the creating_admin stage.
	AdminName         string `gorm:"size:120" json:"admin_name"`
	AdminEmail        string `gorm:"size:255" json:"admin_email"`
	AdminPasswordHash string `gorm:"size:255" json:"-"`
	Phone             string `gorm:"size:40" json:"phone"`
	Address           string `gorm:"size:255" json:"address"`
	City              string `gorm:"size:120" json:"city"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}

// Branding mirrors the JSON stored in Tenant.Branding.
type Branding struct {
	PrimaryColor string `json:"primary_color"`
	Font         string `json:"font"`
}

// AdminUser is the first administrative account of a tenant.
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID     uuid.UUID `gorm:"type:uuid;index;not null" json:"tenant_id"`
	Name         string    `gorm:"size:120" json:"name"`
	Email        string    `gorm:"size:255;index" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
