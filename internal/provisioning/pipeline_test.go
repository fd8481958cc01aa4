package provisioning

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRepository struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{jobs: make(map[string]*Job)}
}

func (r *memoryRepository) Enqueue(ctx context.Context, job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *job
	r.jobs[job.TenantID] = &copied
	return nil
}

func (r *memoryRepository) GetByTenantID(ctx context.Context, tenantID string) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[tenantID]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (r *memoryRepository) ListRunnable(ctx context.Context, limit int) ([]Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Job
	for _, job := range r.jobs {
		if !job.Status.Terminal() && len(out) < limit {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, tenantID string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[tenantID].Status = status
	return nil
}

func (r *memoryRepository) MarkReady(ctx context.Context, tenantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[tenantID].Status = StatusCompleted
	r.jobs[tenantID].IsReady = true
	return nil
}

func (r *memoryRepository) MarkFailed(ctx context.Context, tenantID string, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[tenantID].Status = StatusFailed
	r.jobs[tenantID].ErrorMessage = &message
	return nil
}

type mockProvisioner struct {
	mock.Mock
}

func (m *mockProvisioner) CreateSchema(ctx context.Context, tenantID string) error {
	return m.Called(ctx, tenantID).Error(0)
}

func (m *mockProvisioner) MigrateModules(ctx context.Context, tenantID string) error {
	return m.Called(ctx, tenantID).Error(0)
}

func (m *mockProvisioner) CreateAdminUser(ctx context.Context, tenantID string) error {
	return m.Called(ctx, tenantID).Error(0)
}

func (m *mockProvisioner) ActivateStarterModules(ctx context.Context, tenantID string) error {
	return m.Called(ctx, tenantID).Error(0)
}

type recordingHub struct {
	mu     sync.Mutex
	events []Status
	ready  []bool
}

func (h *recordingHub) BroadcastStatus(tenantID string, status Status, isReady bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, status)
	h.ready = append(h.ready, isReady)
}

func TestPipelineWalksStagesInOrder(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	require.NoError(t, repo.Enqueue(ctx, NewJob("aminas-fabrics")))

	prov := new(mockProvisioner)
	prov.On("CreateSchema", ctx, "aminas-fabrics").Return(nil)
	prov.On("MigrateModules", ctx, "aminas-fabrics").Return(nil)
	prov.On("CreateAdminUser", ctx, "aminas-fabrics").Return(nil)
	prov.On("ActivateStarterModules", ctx, "aminas-fabrics").Return(nil)

	hub := &recordingHub{}
	p := NewPipeline(repo, prov, hub, zap.NewNop(), DefaultPipelineConfig())

	// One stage per tick: five ticks to walk queued -> completed.
	for i := 0; i < 5; i++ {
		p.RunOnce(ctx)
	}

	job, err := repo.GetByTenantID(ctx, "aminas-fabrics")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, job.Status)
	assert.True(t, job.IsReady)

	assert.Equal(t, []Status{
		StatusCreatingDB, StatusMigrating, StatusCreatingAdmin,
		StatusActivatingModules, StatusCompleted,
	}, hub.events)
	assert.Equal(t, []bool{false, false, false, false, true}, hub.ready)

	prov.AssertExpectations(t)
}

func TestPipelineCompletedJobIsLeftAlone(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	job := NewJob("done-tenant")
	job.Status = StatusCompleted
	job.IsReady = true
	require.NoError(t, repo.Enqueue(ctx, job))

	prov := new(mockProvisioner)
	p := NewPipeline(repo, prov, nil, zap.NewNop(), DefaultPipelineConfig())
	p.RunOnce(ctx)

	prov.AssertNotCalled(t, "CreateSchema", mock.Anything, mock.Anything)
}

func TestPipelineStageFailureMarksJobFailed(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	require.NoError(t, repo.Enqueue(ctx, NewJob("broken-tenant")))

	prov := new(mockProvisioner)
	prov.On("CreateSchema", ctx, "broken-tenant").Return(errors.New("schema quota exceeded"))

	hub := &recordingHub{}
	p := NewPipeline(repo, prov, hub, zap.NewNop(), DefaultPipelineConfig())
	p.RunOnce(ctx)

	job, err := repo.GetByTenantID(ctx, "broken-tenant")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, job.Status)
	assert.False(t, job.IsReady)
	require.NotNil(t, job.ErrorMessage)
	assert.Equal(t, "schema quota exceeded", *job.ErrorMessage)
	assert.Equal(t, []Status{StatusFailed}, hub.events)

	// A failed job is terminal; later ticks must not retry it.
	p.RunOnce(ctx)
	prov.AssertNumberOfCalls(t, "CreateSchema", 1)
}

func TestNext(t *testing.T) {
	next, ok := Next(StatusQueued)
	assert.True(t, ok)
	assert.Equal(t, StatusCreatingDB, next)

	_, ok = Next(StatusCompleted)
	assert.False(t, ok)
	_, ok = Next(StatusFailed)
	assert.False(t, ok)
	_, ok = Next("unknown")
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusQueued, StatusCreatingDB))
	assert.True(t, CanTransition(StatusMigrating, StatusCreatingAdmin))
	assert.True(t, CanTransition(StatusQueued, StatusFailed))
	assert.False(t, CanTransition(StatusQueued, StatusMigrating))
	assert.False(t, CanTransition(StatusCompleted, StatusFailed))
	assert.False(t, CanTransition(StatusFailed, StatusQueued))
}
