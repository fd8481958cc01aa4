package settings

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the settings for a tenant, with sane defaults for tenants that
// have not saved any yet.
func (s *Service) Get(ctx context.Context, tenantID string) (*MerchantSettings, error) {
	stored, err := s.repo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return &MerchantSettings{
			TenantID: tenantID,
			Language: "en",
			Timezone: "UTC",
		}, nil
	}
	return stored, nil
}

// Seed writes the country and vertical captured by onboarding. Called once
// per tenant when registration is accepted.
func (s *Service) Seed(ctx context.Context, tenantID, country, vertical string) error {
	now := time.Now()
	return s.repo.Upsert(ctx, &MerchantSettings{
		TenantID:  tenantID,
		Country:   country,
		Vertical:  vertical,
		Language:  "en",
		Timezone:  "UTC",
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Update overwrites a tenant's settings.
func (s *Service) Update(ctx context.Context, prefs *MerchantSettings) error {
	prefs.UpdatedAt = time.Now()
	return s.repo.Upsert(ctx, prefs)
}
