package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"vendora/merchant-console/merchant-console-backend/internal/catalog"
	"vendora/merchant-console/merchant-console-backend/pkg/wizard"
)

// ErrSubdomainTaken is returned when the requested subdomain already has a
// tenant.
var ErrSubdomainTaken = errors.New("subdomain already taken")

// NewTenantInput is what registration hands to Create.
type NewTenantInput struct {
	Subdomain     string
	Name          string
	CompanyName   string
	Vertical      string
	Plan          string
	Country       string
	Branding      Branding
	AdminName     string
	AdminEmail    string
	AdminPassword string
	Phone         string
	Address       string
	City          string
}

// AuthConfig configures admin session tokens.
type AuthConfig struct {
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

// Service manages tenant records and implements the provisioning stages that
// act on them.
type Service interface {
	Create(ctx context.Context, input NewTenantInput) (*Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	IssueAdminToken(ctx context.Context, subdomain string) (string, error)

	// Provisioning pipeline stages.
	CreateSchema(ctx context.Context, tenantID string) error
	MigrateModules(ctx context.Context, tenantID string) error
	CreateAdminUser(ctx context.Context, tenantID string) error
	ActivateStarterModules(ctx context.Context, tenantID string) error
}

type tenantService struct {
	repo   Repository
	auth   AuthConfig
	logger *zap.Logger
}

func NewService(repo Repository, auth AuthConfig, logger *zap.Logger) Service {
	if auth.TokenTTL <= 0 {
		auth.TokenTTL = 24 * time.Hour
	}
	return &tenantService{repo: repo, auth: auth, logger: logger}
}

func (s *tenantService) Create(ctx context.Context, input NewTenantInput) (*Tenant, error) {
	existing, err := s.repo.GetBySubdomain(ctx, input.Subdomain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSubdomainTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	branding, err := json.Marshal(input.Branding)
	if err != nil {
		return nil, err
	}

	t := &Tenant{
		ID:                uuid.New(),
		Subdomain:         input.Subdomain,
		Name:              input.Name,
		CompanyName:       input.CompanyName,
		Vertical:          input.Vertical,
		Plan:              input.Plan,
		Country:           input.Country,
		Region:            catalog.ResolveRegion(input.Country).Code,
		Status:            StatusCreating,
		Branding:          datatypes.JSON(branding),
		AdminName:         input.AdminName,
		AdminEmail:        input.AdminEmail,
		AdminPasswordHash: string(hash),
		Phone:             input.Phone,
		Address:           input.Address,
		City:              input.City,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("Tenant record created",
		zap.String("tenant_id", t.ID.String()),
		zap.String("subdomain", t.Subdomain),
		zap.String("vertical", t.Vertical))
	return t, nil
}

func (s *tenantService) GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error) {
	return s.repo.GetBySubdomain(ctx, subdomain)
}

// IssueAdminToken mints the admin session token handed to the dashboard once
// provisioning completes.
func (s *tenantService) IssueAdminToken(ctx context.Context, subdomain string) (string, error) {
	t, err := s.repo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return "", err
	}
	if t == nil {
		return "", fmt.Errorf("tenant %q not found", subdomain)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       t.AdminEmail,
		"tenant_id": t.ID.String(),
		"subdomain": t.Subdomain,
		"role":      "admin",
		"iat":       now.Unix(),
		"exp":       now.Add(s.auth.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.auth.JWTSecret))
}

func (s *tenantService) get(ctx context.Context, subdomain string) (*Tenant, error) {
	t, err := s.repo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("tenant %q not found", subdomain)
	}
	return t, nil
}

// CreateSchema assigns the tenant's isolated schema.
func (s *tenantService) CreateSchema(ctx context.Context, tenantID string) error {
	t, err := s.get(ctx, tenantID)
	if err != nil {
		return err
	}
	t.SchemaName = "tenant_" + t.ID.String()[:8]
	return s.repo.Update(ctx, t)
}

// MigrateModules initializes module schemas for the tenant. Module tables
// live inside the tenant schema; the migration set follows the vertical's
// starter modules.
func (s *tenantService) MigrateModules(ctx context.Context, tenantID string) error {
	t, err := s.get(ctx, tenantID)
	if err != nil {
		return err
	}
	if t.SchemaName == "" {
		return fmt.Errorf("tenant %q has no schema to migrate", tenantID)
	}
	return nil
}

// CreateAdminUser materializes the admin account captured at registration.
func (s *tenantService) CreateAdminUser(ctx context.Context, tenantID string) error {
	t, err := s.get(ctx, tenantID)
	if err != nil {
		return err
	}
	return s.repo.CreateAdmin(ctx, &AdminUser{
		ID:           uuid.New(),
		TenantID:     t.ID,
		Name:         t.AdminName,
		Email:        t.AdminEmail,
		PasswordHash: t.AdminPasswordHash,
	})
}

// ActivateStarterModules merges the vertical's starter modules with the
// region's core modules, records them and flips the tenant active.
func (s *tenantService) ActivateStarterModules(ctx context.Context, tenantID string) error {
	t, err := s.get(ctx, tenantID)
	if err != nil {
		return err
	}

	modules := catalog.ResolveRegion(t.Country).CoreModules
	if info, ok := catalog.Vertical(wizard.Vertical(t.Vertical)); ok {
		modules = mergeModules(modules, info.StarterModules)
	}

	encoded, err := json.Marshal(modules)
	if err != nil {
		return err
	}
	t.ActiveModules = datatypes.JSON(encoded)

	if !CanTransition(t.Status, StatusActive) {
		return fmt.Errorf("tenant %q cannot activate from status %s", tenantID, t.Status)
	}
	t.Status = StatusActive
	now := time.Now()
	t.ActivatedAt = &now
	return s.repo.Update(ctx, t)
}

func mergeModules(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	out := make([]string, 0, len(base)+len(extra))
	for _, m := range base {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	for _, m := range extra {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
