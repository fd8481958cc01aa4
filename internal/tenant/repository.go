package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	Update(ctx context.Context, t *Tenant) error
	CreateAdmin(ctx context.Context, admin *AdminUser) error
	GetAdminByTenant(ctx context.Context, tenantID uuid.UUID) (*AdminUser, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *gormRepository) GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error) {
	var t Tenant
	err := r.db.WithContext(ctx).Where("subdomain = ?", subdomain).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) Update(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *gormRepository) CreateAdmin(ctx context.Context, admin *AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *gormRepository) GetAdminByTenant(ctx context.Context, tenantID uuid.UUID) (*AdminUser, error) {
	var admin AdminUser
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
