package onboarding

import (
	"time"

	"github.com/google/uuid"

	"vendora/merchant-console/merchant-console-backend/internal/provisioning"
)

// RegistrationRequest is the creation payload submitted from the wizard's
// final step. Field names match the wizard client's wire format.
type RegistrationRequest struct {
	TenantID      string `json:"tenantId" binding:"required"`
	TenantName    string `json:"tenantName" binding:"required"`
	CompanyName   string `json:"companyName"`
	Purpose       string `json:"purpose" binding:"required"`
	Plan          string `json:"plan" binding:"required"`
	PrimaryColor  string `json:"primaryColor"`
	Font          string `json:"font"`
	BusinessType  string `json:"businessType"`
	AdminName     string `json:"adminName" binding:"required"`
	AdminEmail    string `json:"adminEmail" binding:"required"`
	AdminPassword string `json:"adminPassword" binding:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country" binding:"required"`
}

// RegistrationResponse is the acceptance reply: the job is queued, not done.
type RegistrationResponse struct {
	Success  bool   `json:"success"`
	TenantID string `json:"tenant_id"`
	Message  string `json:"message,omitempty"`
}

// StatusResponse is one poll reply from the status endpoint.
type StatusResponse struct {
	Success bool                `json:"success"`
	Status  provisioning.Status `json:"status"`
	IsReady bool                `json:"is_ready"`
}

// Request is the stored onboarding submission. Kept for audit and for
// pruning runs that never completed.
type Request struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Vertical  string    `db:"vertical" json:"vertical"`
	Plan      string    `db:"plan" json:"plan"`
	Country   string    `db:"country" json:"country"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
