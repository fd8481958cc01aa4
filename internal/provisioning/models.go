package provisioning

import (
	"time"

	"github.com/google/uuid"
)

// Status is the server-side state of a tenant provisioning job. The values
// are the wire contract of the status endpoint; the wizard client mirrors
// them for display mapping.
type Status string

const (
	StatusQueued            Status = "queued"
	StatusCreatingDB        Status = "creating_db"
	StatusMigrating         Status = "migrating"
	StatusCreatingAdmin     Status = "creating_admin"
	StatusActivatingModules Status = "activating_modules"
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
)

// stageOrder is the pipeline. Every job walks it front to back; failed is a
// terminal branch reachable from any non-terminal stage.
var stageOrder = []Status{
	StatusQueued,
	StatusCreatingDB,
	StatusMigrating,
	StatusCreatingAdmin,
	StatusActivatingModules,
	StatusCompleted,
}

// Next returns the stage after s, or false when s is terminal or unknown.
func Next(s Status) (Status, bool) {
	for i, stage := range stageOrder {
		if stage == s && i+1 < len(stageOrder) {
			return stageOrder[i+1], true
		}
	}
	return "", false
}

// Terminal reports whether s ends the pipeline.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition checks a status change against the pipeline: one stage
// forward, or failure from any non-terminal stage.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusFailed {
		return true
	}
	next, ok := Next(from)
	return ok && next == to
}

// Job is one tenant provisioning run.
type Job struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     string     `db:"tenant_id" json:"tenant_id"`
	Status       Status     `db:"status" json:"status"`
	IsReady      bool       `db:"is_ready" json:"is_ready"`
	ErrorMessage *string    `db:"error_message" json:"error_message,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	ReadyAt      *time.Time `db:"ready_at" json:"ready_at,omitempty"`
}

// NewJob creates a queued job for a tenant.
func NewJob(tenantID string) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
