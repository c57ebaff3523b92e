// Package flux keeps a cached view of GitOps rollout status for the
// admin dashboard.
package flux

import (
	"context"
	"log"
	"sync"
	"time"

	types "github.com/matkb/matkb/pkg/domain"
	fluxk8s "github.com/matkb/matkb/pkg/domain/flux/k8s"
	"github.com/matkb/matkb/pkg/loop"
)

// Monitor polls the cluster on an interval and caches the last report.
//
// Reads never hit the Kubernetes API; the dashboard may refresh as often
// as it likes without load concerns. A failed poll keeps the previous
// observation and records the failure reason next to it.
type Monitor struct {
	observer fluxk8s.Interface
	interval time.Duration
	logger   *log.Logger
	now      func() time.Time

	mu     sync.RWMutex
	report types.FluxReport
}

type MonitorOption func(*Monitor) *Monitor

func WithMonitorLogger(l *log.Logger) MonitorOption {
	return func(m *Monitor) *Monitor {
		m.logger = l
		return m
	}
}

// WithMonitorClock fixes the report timestamp source, for tests.
func WithMonitorClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) *Monitor {
		m.now = now
		return m
	}
}

func NewMonitor(observer fluxk8s.Interface, interval time.Duration, options ...MonitorOption) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	m := &Monitor{
		observer: observer,
		interval: interval,
		logger:   log.Default(),
		now:      time.Now,
	}
	for _, opt := range options {
		m = opt(m)
	}
	return m
}

// Run polls until ctx is done. The first poll happens immediately.
func (m *Monitor) Run(ctx context.Context) error {
	_, err := loop.Start(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (struct{}, loop.Next) {
		m.PollOnce(ctx)
		return struct{}{}, loop.Continue(m.interval)
	})
	return err
}

// PollOnce performs one observation and swaps the cached report.
func (m *Monitor) PollOnce(ctx context.Context) {
	observed, err := m.observer.Observe(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.report.PolledAt = m.now()
	if err != nil {
		m.logger.Printf("flux poll: %s", err)
		m.report.Err = err.Error()
		return
	}
	m.report.Deployments = observed
	m.report.Err = ""
}

// Latest is the cached report. Before the first poll it is zero-valued;
// callers should treat a zero PolledAt as "not observed yet".
func (m *Monitor) Latest() types.FluxReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	report := m.report
	report.Deployments = append([]types.FluxDeployment{}, m.report.Deployments...)
	return report
}
