package provisioning

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Enqueue(ctx context.Context, job *Job) error
	GetByTenantID(ctx context.Context, tenantID string) (*Job, error)
	ListRunnable(ctx context.Context, limit int) ([]Job, error)
	UpdateStatus(ctx context.Context, tenantID string, status Status) error
	MarkReady(ctx context.Context, tenantID string) error
	MarkFailed(ctx context.Context, tenantID string, message string) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Enqueue(ctx context.Context, job *Job) error {
	query := `
		INSERT INTO provisioning_jobs (
			id, tenant_id, status, is_ready, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :status, :is_ready, :created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, job)
	return err
}

func (r *postgresRepository) GetByTenantID(ctx context.Context, tenantID string) (*Job, error) {
	var job Job
	err := r.db.GetContext(ctx, &job, "SELECT * FROM provisioning_jobs WHERE tenant_id = $1", tenantID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *postgresRepository) ListRunnable(ctx context.Context, limit int) ([]Job, error) {
	var jobs []Job
	err := r.db.SelectContext(ctx, &jobs,
		"SELECT * FROM provisioning_jobs WHERE status NOT IN ($1, $2) ORDER BY created_at ASC LIMIT $3",
		StatusCompleted, StatusFailed, limit)
	return jobs, err
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, tenantID string, status Status) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE provisioning_jobs SET status = $1, updated_at = $2 WHERE tenant_id = $3",
		status, time.Now(), tenantID)
	return err
}

func (r *postgresRepository) MarkReady(ctx context.Context, tenantID string) error {
	now := time.Now()
	_, err := r.db.ExecContext(ctx,
		"UPDATE provisioning_jobs SET status = $1, is_ready = TRUE, updated_at = $2, ready_at = $2 WHERE tenant_id = $3",
		StatusCompleted, now, tenantID)
	return err
}

func (r *postgresRepository) MarkFailed(ctx context.Context, tenantID string, message string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE provisioning_jobs SET status = $1, error_message = $2, updated_at = $3 WHERE tenant_id = $4",
		StatusFailed, message, time.Now(), tenantID)
	return err
}
