package settings

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Get(ctx context.Context, tenantID string) (*MerchantSettings, error)
	Upsert(ctx context.Context, s *MerchantSettings) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewRepository creates a new settings repository
func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Get(ctx context.Context, tenantID string) (*MerchantSettings, error) {
	var s MerchantSettings
	err := r.db.GetContext(ctx, &s, "SELECT * FROM merchant_settings WHERE tenant_id = $1", tenantID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, s *MerchantSettings) error {
	query := `
		INSERT INTO merchant_settings (
			tenant_id, country, vertical, language, timezone, created_at, updated_at
		) VALUES (
			:tenant_id, :country, :vertical, :language, :timezone, :created_at, :updated_at
		)
		ON CONFLICT (tenant_id) DO UPDATE SET
			country = EXCLUDED.country,
			vertical = EXCLUDED.vertical,
			language = EXCLUDED.language,
			timezone = EXCLUDED.timezone,
			updated_at = EXCLUDED.updated_at`
	_, err := r.db.NamedExecContext(ctx, query, s)
	return err
}
