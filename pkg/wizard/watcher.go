package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ProvisioningStatus is the last-observed remote state of a tenant
// provisioning job. The client never drives transitions; it only reflects
// what the status endpoint reports.
type ProvisioningStatus string

const (
	StatusQueued            ProvisioningStatus = "queued"
	StatusCreatingDB        ProvisioningStatus = "creating_db"
	StatusMigrating         ProvisioningStatus = "migrating"
	StatusCreatingAdmin     ProvisioningStatus = "creating_admin"
	StatusActivatingModules ProvisioningStatus = "activating_modules"
	StatusCompleted         ProvisioningStatus = "completed"
	StatusFailed            ProvisioningStatus = "failed"
)

var statusDisplay = map[ProvisioningStatus]string{
	StatusQueued:            "Queueing task...",
	StatusCreatingDB:        "Provisioning isolated storage...",
	StatusMigrating:         "Initializing module schemas...",
	StatusCreatingAdmin:     "Securing administrative credentials...",
	StatusActivatingModules: "Auto-activating starter modules...",
	StatusCompleted:         "Success! Launching...",
}

// DisplayStatus maps a remote status to its user-facing progress line. An
// unrecognized status falls back to a generic line, never an error.
func DisplayStatus(status ProvisioningStatus) string {
	if s, ok := statusDisplay[status]; ok {
		return s
	}
	return "Processing..."
}

// RegistrationRequest is the creation payload assembled from the collected
// form sections when the final step is submitted.
type RegistrationRequest struct {
	TenantID      string `json:"tenantId"`
	TenantName    string `json:"tenantName"`
	CompanyName   string `json:"companyName"`
	Purpose       string `json:"purpose"`
	Plan          string `json:"plan"`
	PrimaryColor  string `json:"primaryColor"`
	Font          string `json:"font"`
	BusinessType  string `json:"businessType"`
	AdminName     string `json:"adminName"`
	AdminEmail    string `json:"adminEmail"`
	AdminPassword string `json:"adminPassword"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// RegistrationResponse is the creation endpoint's acceptance reply.
type RegistrationResponse struct {
	Success  bool   `json:"success"`
	TenantID string `json:"tenant_id"`
	Message  string `json:"message,omitempty"`
}

// StatusResponse is one poll result from the status endpoint.
type StatusResponse struct {
	Success bool               `json:"success"`
	Status  ProvisioningStatus `json:"status"`
	IsReady bool               `json:"is_ready"`
}

// Registrar issues the one-shot tenant creation request.
type Registrar interface {
	Register(ctx context.Context, req RegistrationRequest) (*RegistrationResponse, error)
}

// StatusClient fetches the current provisioning status for a tenant.
type StatusClient interface {
	Status(ctx context.Context, tenantID string) (*StatusResponse, error)
}

// StoredSettings are the two values persisted durably once onboarding
// succeeds; region-aware UI adaptation reads them elsewhere.
type StoredSettings struct {
	Country  string `json:"country"`
	Vertical string `json:"vertical"`
}

// SettingsStore loads and saves durable client settings.
type SettingsStore interface {
	Load(ctx context.Context) (*StoredSettings, error)
	Save(ctx context.Context, s StoredSettings) error
}

// Update is delivered to the caller on every observed status change.
type Update struct {
	Status  ProvisioningStatus
	Display string
}

const (
	// DefaultPollInterval is the fixed period between status polls.
	DefaultPollInterval = 3 * time.Second

	// UnboundedAttempts disables the poll attempt ceiling. This matches the
	// shipped behavior: the backend is trusted to always reach a terminal
	// state. See WatcherConfig.MaxAttempts.
	UnboundedAttempts = 0
)

var (
	// ErrSubmissionInFlight is returned when Provision is called while a
	// previous submission is still running. The continue action must be
	// disabled while a submission is in flight; this guard backstops that.
	ErrSubmissionInFlight = errors.New("wizard: submission already in flight")

	// ErrProvisioningTimeout is returned when MaxAttempts polls have passed
	// without the job reporting ready.
	ErrProvisioningTimeout = errors.New("wizard: provisioning did not become ready in time")
)

// WatcherConfig tunes the provisioning watcher.
type WatcherConfig struct {
	PollInterval time.Duration
	// MaxAttempts bounds the number of status polls before giving up.
	// UnboundedAttempts (zero) polls forever, like the original flow.
	MaxAttempts int
}

// DefaultWatcherConfig returns the shipped polling behavior.
func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		PollInterval: DefaultPollInterval,
		MaxAttempts:  UnboundedAttempts,
	}
}

// Watcher submits the registration request and drives the status poll loop
// until the tenant is ready. Cancellation of the supplied context is the
// single teardown path: success, caller abandonment and process shutdown all
// stop the same ticker.
type Watcher struct {
	registrar Registrar
	status    StatusClient
	settings  SettingsStore
	logger    *zap.Logger
	config    WatcherConfig

	mu       sync.Mutex
	inFlight bool
}

// NewWatcher creates a watcher. settings may be nil if the caller persists
// durable settings itself.
func NewWatcher(registrar Registrar, status StatusClient, settings SettingsStore, logger *zap.Logger, config WatcherConfig) *Watcher {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	return &Watcher{
		registrar: registrar,
		status:    status,
		settings:  settings,
		logger:    logger,
		config:    config,
	}
}

// Provision submits the registration request and, on acceptance, polls until
// the job is ready. onUpdate is invoked for every observed status change,
// starting with an optimistic queued update before the first poll returns.
//
// A submission failure is returned immediately so the caller can surface it
// and return the merchant to the wizard. Poll transport errors are logged and
// swallowed; the loop continues on the next tick.
func (w *Watcher) Provision(ctx context.Context, req RegistrationRequest, onUpdate func(Update)) error {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return ErrSubmissionInFlight
	}
	w.inFlight = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight = false
		w.mu.Unlock()
	}()

	resp, err := w.registrar.Register(ctx, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		if resp.Message != "" {
			return errors.New(resp.Message)
		}
		return errors.New("wizard: registration rejected")
	}

	// Queued is shown optimistically; the server has only accepted the
	// request at this point.
	w.emit(onUpdate, StatusQueued)

	if err := w.watch(ctx, req.TenantID, onUpdate); err != nil {
		return err
	}

	if w.settings != nil {
		if err := w.settings.Save(ctx, StoredSettings{Country: req.Country, Vertical: req.Purpose}); err != nil {
			w.logger.Warn("failed to persist onboarding settings", zap.Error(err))
		}
	}
	return nil
}

func (w *Watcher) watch(ctx context.Context, tenantID string, onUpdate func(Update)) error {
	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	// The first poll happens immediately; the ticker paces the rest.
	last := StatusQueued
	attempts := 0
	for {
		attempts++
		resp, err := w.status.Status(ctx, tenantID)
		if err != nil {
			// Transient transport failures must not abort the loop.
			w.logger.Warn("status poll failed",
				zap.String("tenant_id", tenantID),
				zap.Error(err))
		} else {
			if resp.Status != last {
				last = resp.Status
				w.emit(onUpdate, resp.Status)
			}
			// Readiness terminates the loop regardless of the named status.
			if resp.IsReady {
				return nil
			}
		}

		if w.config.MaxAttempts != UnboundedAttempts && attempts >= w.config.MaxAttempts {
			return ErrProvisioningTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Watcher) emit(onUpdate func(Update), status ProvisioningStatus) {
	if onUpdate != nil {
		onUpdate(Update{Status: status, Display: DisplayStatus(status)})
	}
}
