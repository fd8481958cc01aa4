package notifications

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"vendora/merchant-console/merchant-console-backend/internal/provisioning"
)

// statusChannel is the Postgres notification channel carrying provisioning
// transitions from the worker process to the API's websocket hub.
const statusChannel = "provisioning_status"

// PgBroadcaster implements provisioning.Broadcaster by publishing each
// transition as a Postgres notification. The pipeline worker broadcasts
// through it; the API process listens and fans the events out to its
// websocket subscribers.
type PgBroadcaster struct {
	db     sqlx.ExecerContext
	logger *zap.Logger
}

// NewPgBroadcaster creates a broadcaster publishing on the shared database.
func NewPgBroadcaster(db sqlx.ExecerContext, logger *zap.Logger) *PgBroadcaster {
	return &PgBroadcaster{db: db, logger: logger}
}

// BroadcastStatus publishes one transition. Delivery is best effort: the
// status endpoint remains the contract of record, so a failed notify is
// logged, not surfaced.
func (b *PgBroadcaster) BroadcastStatus(tenantID string, status provisioning.Status, isReady bool) {
	payload, err := json.Marshal(StatusEvent{
		TenantID:  tenantID,
		Status:    status,
		IsReady:   isReady,
		Timestamp: time.Now(),
	})
	if err != nil {
		b.logger.Error("Failed to encode status notification", zap.Error(err))
		return
	}
	if _, err := b.db.ExecContext(context.Background(),
		"SELECT pg_notify($1, $2)", statusChannel, string(payload)); err != nil {
		b.logger.Warn("Failed to publish status notification",
			zap.String("tenant_id", tenantID), zap.Error(err))
	}
}

// Listener bridges Postgres status notifications into a local broadcaster,
// normally the API's websocket hub.
type Listener struct {
	pq     *pq.Listener
	sink   provisioning.Broadcaster
	logger *zap.Logger
}

// NewListener creates a listener on the given connection string.
func NewListener(dsn string, sink provisioning.Broadcaster, logger *zap.Logger) *Listener {
	l := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("Status listener connection event", zap.Error(err))
		}
	})
	return &Listener{pq: l, sink: sink, logger: logger}
}

// Run forwards notifications until the context is cancelled. A nil
// notification marks a reconnect; transitions missed during the gap are
// recovered by the client's poll loop.
func (l *Listener) Run(ctx context.Context) error {
	if err := l.pq.Listen(statusChannel); err != nil {
		return err
	}
	defer l.pq.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-l.pq.Notify:
			if n == nil {
				continue
			}
			l.dispatch(n.Extra)
		}
	}
}

func (l *Listener) dispatch(payload string) {
	var event StatusEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		l.logger.Warn("Dropping malformed status notification", zap.Error(err))
		return
	}
	l.sink.BroadcastStatus(event.TenantID, event.Status, event.IsReady)
}
