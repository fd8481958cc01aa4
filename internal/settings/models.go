package settings

import "time"

// MerchantSettings are the durable per-tenant preferences written when
// onboarding succeeds. Region-aware UI adaptation reads country and vertical
// from here.
type MerchantSettings struct {
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Country   string    `db:"country" json:"country"`
	Vertical  string    `db:"vertical" json:"vertical"`
	Language  string    `db:"language" json:"language"`
	Timezone  string    `db:"timezone" json:"timezone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
