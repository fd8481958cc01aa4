package provisioning

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Provisioner executes the real work behind each pipeline stage.
type Provisioner interface {
	CreateSchema(ctx context.Context, tenantID string) error
	MigrateModules(ctx context.Context, tenantID string) error
	CreateAdminUser(ctx context.Context, tenantID string) error
	ActivateStarterModules(ctx context.Context, tenantID string) error
}

// Broadcaster pushes status transitions to subscribed clients. Polling the
// status endpoint remains the contract of record; this is the push channel.
type Broadcaster interface {
	BroadcastStatus(tenantID string, status Status, isReady bool)
}

// PipelineConfig tunes the provisioning worker.
type PipelineConfig struct {
	PollInterval time.Duration `json:"poll_interval"`
	BatchSize    int           `json:"batch_size"`
}

// DefaultPipelineConfig returns the default worker cadence. One stage per
// tick keeps transitions observable by the 3-second client poll.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    10,
	}
}

// Pipeline advances queued provisioning jobs one stage per tick until they
// complete or fail.
type Pipeline struct {
	repo        Repository
	provisioner Provisioner
	hub         Broadcaster
	logger      *zap.Logger
	config      PipelineConfig
}

// NewPipeline creates a pipeline worker. hub may be nil when status push is
// disabled.
func NewPipeline(repo Repository, provisioner Provisioner, hub Broadcaster, logger *zap.Logger, config PipelineConfig) *Pipeline {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPipelineConfig().PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultPipelineConfig().BatchSize
	}
	return &Pipeline{
		repo:        repo,
		provisioner: provisioner,
		hub:         hub,
		logger:      logger,
		config:      config,
	}
}

// Run drives the pipeline until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) {
	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	p.logger.Info("Starting provisioning pipeline",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("batch_size", p.config.BatchSize))

	p.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Stopping provisioning pipeline")
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce advances each runnable job by a single stage.
func (p *Pipeline) RunOnce(ctx context.Context) {
	jobs, err := p.repo.ListRunnable(ctx, p.config.BatchSize)
	if err != nil {
		p.logger.Error("Failed to list runnable jobs", zap.Error(err))
		return
	}

	for i := range jobs {
		if err := p.step(ctx, &jobs[i]); err != nil {
			p.logger.Error("Provisioning stage failed",
				zap.String("tenant_id", jobs[i].TenantID),
				zap.String("status", string(jobs[i].Status)),
				zap.Error(err))
		}
	}
}

func (p *Pipeline) step(ctx context.Context, job *Job) error {
	next, ok := Next(job.Status)
	if !ok {
		return nil
	}

	if err := p.runStage(ctx, job.TenantID, next); err != nil {
		if failErr := p.repo.MarkFailed(ctx, job.TenantID, err.Error()); failErr != nil {
			p.logger.Error("Failed to mark job failed", zap.Error(failErr))
		}
		p.broadcast(job.TenantID, StatusFailed, false)
		return err
	}

	if next == StatusCompleted {
		if err := p.repo.MarkReady(ctx, job.TenantID); err != nil {
			return err
		}
		p.broadcast(job.TenantID, StatusCompleted, true)
		p.logger.Info("Tenant provisioned", zap.String("tenant_id", job.TenantID))
		return nil
	}

	if err := p.repo.UpdateStatus(ctx, job.TenantID, next); err != nil {
		return err
	}
	p.broadcast(job.TenantID, next, false)
	return nil
}

// runStage executes the work that moves a job into the given stage. Entering
// completed has no work of its own; it just records readiness.
func (p *Pipeline) runStage(ctx context.Context, tenantID string, stage Status) error {
	switch stage {
	case StatusCreatingDB:
		return p.provisioner.CreateSchema(ctx, tenantID)
	case StatusMigrating:
		return p.provisioner.MigrateModules(ctx, tenantID)
	case StatusCreatingAdmin:
		return p.provisioner.CreateAdminUser(ctx, tenantID)
	case StatusActivatingModules:
		return p.provisioner.ActivateStarterModules(ctx, tenantID)
	default:
		return nil
	}
}

func (p *Pipeline) broadcast(tenantID string, status Status, ready bool) {
	if p.hub != nil {
		p.hub.BroadcastStatus(tenantID, status, ready)
	}
}
