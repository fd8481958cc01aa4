package onboarding

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByTenantID(ctx context.Context, tenantID string) (*Request, error)
	DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, req *Request) error {
	query := `
		INSERT INTO onboarding_requests (
			id, tenant_id, vertical, plan, country, email, created_at
		) VALUES (
			:id, :tenant_id, :vertical, :plan, :country, :email, :created_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, req)
	return err
}

func (r *postgresRepository) GetByTenantID(ctx context.Context, tenantID string) (*Request, error) {
	var req Request
	err := r.db.GetContext(ctx, &req, "SELECT * FROM onboarding_requests WHERE tenant_id = $1", tenantID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// DeleteAbandonedBefore removes onboarding requests older than the cutoff
// whose provisioning failed, or stalled without reaching readiness (a job
// left non-terminal by a dead worker counts as abandoned too).
func (r *postgresRepository) DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM onboarding_requests o
		USING provisioning_jobs j
		WHERE j.tenant_id = o.tenant_id
		  AND o.created_at < $1
		  AND (j.status = 'failed' OR (NOT j.is_ready AND j.updated_at < $1))`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
