package onboarding

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vendora/merchant-console/merchant-console-backend/internal/catalog"
	"vendora/merchant-console/merchant-console-backend/internal/provisioning"
	"vendora/merchant-console/merchant-console-backend/internal/tenant"
	"vendora/merchant-console/merchant-console-backend/pkg/wizard"
)

// ErrNotFound is returned when no onboarding run exists for a tenant id.
var ErrNotFound = errors.New("onboarding request not found")

// ValidationError is a client-recoverable rejection of the registration
// payload; the wizard surfaces it and returns the merchant to the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,61})?[a-z0-9]$`)

// Summary is the completion recap plus the admin session token issued once
// provisioning succeeds.
type Summary struct {
	wizard.Summary
	AdminToken string `json:"admin_token"`
}

// SettingsSeeder writes the durable country and vertical settings captured
// during onboarding.
type SettingsSeeder interface {
	Seed(ctx context.Context, tenantID, country, vertical string) error
}

// Service handles merchant onboarding submissions and status.
type Service interface {
	Register(ctx context.Context, req RegistrationRequest) (*RegistrationResponse, error)
	Status(ctx context.Context, tenantID string) (*StatusResponse, error)
	Summary(ctx context.Context, tenantID string) (*Summary, error)
	PruneAbandoned(ctx context.Context, olderThan time.Duration) (int64, error)
}

type onboardingService struct {
	repo    Repository
	tenants tenant.Service
	jobs    provisioning.Repository
	prefs   SettingsSeeder
	logger  *zap.Logger
}

func NewService(repo Repository, tenants tenant.Service, jobs provisioning.Repository, prefs SettingsSeeder, logger *zap.Logger) Service {
	return &onboardingService{
		repo:    repo,
		tenants: tenants,
		jobs:    jobs,
		prefs:   prefs,
		logger:  logger,
	}
}

func (s *onboardingService) Register(ctx context.Context, req RegistrationRequest) (*RegistrationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	t, err := s.tenants.Create(ctx, tenant.NewTenantInput{
		Subdomain:     req.TenantID,
		Name:          req.TenantName,
		CompanyName:   req.CompanyName,
		Vertical:      req.Purpose,
		Plan:          req.Plan,
		Country:       req.Country,
		Branding:      tenant.Branding{PrimaryColor: req.PrimaryColor, Font: req.Font},
		AdminName:     req.AdminName,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
	})
	if err != nil {
		return nil, err
	}

	record := &Request{
		ID:        uuid.New(),
		TenantID:  req.TenantID,
		Vertical:  req.Purpose,
		Plan:      req.Plan,
		Country:   req.Country,
		Email:     req.AdminEmail,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.jobs.Enqueue(ctx, provisioning.NewJob(req.TenantID)); err != nil {
		return nil, err
	}

	// Settings seeding is best effort; onboarding must not fail over it.
	if s.prefs != nil {
		if err := s.prefs.Seed(ctx, req.TenantID, req.Country, req.Purpose); err != nil {
			s.logger.Warn("Failed to seed merchant settings",
				zap.String("tenant_id", req.TenantID), zap.Error(err))
		}
	}

	s.logger.Info("Onboarding submission accepted",
		zap.String("tenant_id", req.TenantID),
		zap.String("vertical", req.Purpose),
		zap.String("plan", req.Plan))

	return &RegistrationResponse{Success: true, TenantID: t.Subdomain}, nil
}

func (s *onboardingService) Status(ctx context.Context, tenantID string) (*StatusResponse, error) {
	job, err := s.jobs.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return &StatusResponse{Success: true, Status: job.Status, IsReady: job.IsReady}, nil
}

// Summary builds the completion recap once the tenant is ready. Calling it
// before readiness is an error; the wizard only navigates here after the
// status endpoint reports is_ready.
func (s *onboardingService) Summary(ctx context.Context, tenantID string) (*Summary, error) {
	job, err := s.jobs.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	if !job.IsReady {
		return nil, fmt.Errorf("tenant %q is not ready", tenantID)
	}

	record, err := s.repo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}

	t, err := s.tenants.GetBySubdomain(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}

	token, err := s.tenants.IssueAdminToken(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	form := wizard.FormState{
		Vertical: wizard.Vertical(record.Vertical),
		Store:    wizard.StoreSetup{Name: t.Name, Subdomain: t.Subdomain},
		Plan:     wizard.PlanChoice{Plan: record.Plan},
	}
	view := wizard.BuildSummary(form.Vertical, form, catalog.RegionProfile(record.Country))

	return &Summary{Summary: view, AdminToken: token}, nil
}

func (s *onboardingService) PruneAbandoned(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.repo.DeleteAbandonedBefore(ctx, time.Now().Add(-olderThan))
}

func validate(req RegistrationRequest) error {
	if !subdomainPattern.MatchString(req.TenantID) {
		return &ValidationError{Field: "tenantId", Message: "must be a valid subdomain (lowercase letters, digits, hyphens)"}
	}
	if !wizard.Vertical(req.Purpose).Valid() {
		return &ValidationError{Field: "purpose", Message: "unknown business vertical"}
	}
	if _, ok := catalog.PlanByID(req.Plan); !ok {
		return &ValidationError{Field: "plan", Message: "unknown plan"}
	}
	if len(req.AdminPassword) < 8 {
		return &ValidationError{Field: "adminPassword", Message: "must be at least 8 characters"}
	}
	return nil
}
