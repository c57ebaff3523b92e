package flux_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	types "github.com/matkb/matkb/pkg/domain"
	"github.com/matkb/matkb/pkg/domain/flux"
	"github.com/matkb/matkb/pkg/utils/cmp"
)

type stubObserver struct {
	observations [][]types.FluxDeployment
	errs         []error
	calls        int
}

func (s *stubObserver) Observe(context.Context) ([]types.FluxDeployment, error) {
	idx := s.calls
	s.calls += 1
	if idx >= len(s.observations) {
		idx = len(s.observations) - 1
	}
	return s.observations[idx], s.errs[idx]
}

func TestMonitor(t *testing.T) {
	ctx := context.Background()
	polledAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return polledAt }
	logger := log.New(io.Discard, "", 0)

	t.Run("it caches the last observation", func(t *testing.T) {
		observed := []types.FluxDeployment{
			{Name: "matkb-api", Kustomization: "matkb", State: types.FluxReady},
		}
		observer := &stubObserver{
			observations: [][]types.FluxDeployment{observed},
			errs:         []error{nil},
		}
		testee := flux.NewMonitor(
			observer, time.Minute,
			flux.WithMonitorLogger(logger), flux.WithMonitorClock(clock),
		)

		testee.PollOnce(ctx)

		report := testee.Latest()
		if !report.PolledAt.Equal(polledAt) {
			t.Errorf("unexpected poll time: %s", report.PolledAt)
		}
		if report.Err != "" {
			t.Errorf("unexpected error in report: %s", report.Err)
		}
		if !cmp.SliceEqWith(report.Deployments, observed, types.FluxDeployment.Equal) {
			t.Errorf("unexpected deployments: %+v", report.Deployments)
		}
	})

	t.Run("a failed poll keeps the previous observation", func(t *testing.T) {
		observed := []types.FluxDeployment{
			{Name: "matkb-api", Kustomization: "matkb", State: types.FluxReady},
		}
		observer := &stubObserver{
			observations: [][]types.FluxDeployment{observed, nil},
			errs:         []error{nil, errors.New("fake api failure")},
		}
		testee := flux.NewMonitor(
			observer, time.Minute,
			flux.WithMonitorLogger(logger), flux.WithMonitorClock(clock),
		)

		testee.PollOnce(ctx)
		testee.PollOnce(ctx)

		report := testee.Latest()
		if report.Err == "" {
			t.Error("the report should carry the poll failure")
		}
		if !cmp.SliceEqWith(report.Deployments, observed, types.FluxDeployment.Equal) {
			t.Errorf("unexpected deployments: %+v", report.Deployments)
		}
	})

	t.Run("a later success clears the failure", func(t *testing.T) {
		observed := []types.FluxDeployment{
			{Name: "matkb-api", Kustomization: "matkb", State: types.FluxReady},
		}
		observer := &stubObserver{
			observations: [][]types.FluxDeployment{nil, observed},
			errs:         []error{errors.New("fake api failure"), nil},
		}
		testee := flux.NewMonitor(
			observer, time.Minute,
			flux.WithMonitorLogger(logger), flux.WithMonitorClock(clock),
		)

		testee.PollOnce(ctx)
		testee.PollOnce(ctx)

		report := testee.Latest()
		if report.Err != "" {
			t.Errorf("unexpected error in report: %s", report.Err)
		}
		if !cmp.SliceEqWith(report.Deployments, observed, types.FluxDeployment.Equal) {
			t.Errorf("unexpected deployments: %+v", report.Deployments)
		}
	})

	t.Run("before the first poll the report is zero", func(t *testing.T) {
		testee := flux.NewMonitor(
			&stubObserver{observations: [][]types.FluxDeployment{nil}, errs: []error{nil}},
			time.Minute,
			flux.WithMonitorLogger(logger), flux.WithMonitorClock(clock),
		)

		report := testee.Latest()
		if !report.PolledAt.IsZero() {
			t.Errorf("unexpected poll time: %s", report.PolledAt)
		}
	})

	t.Run("Run polls until the context is done", func(t *testing.T) {
		observer := &stubObserver{
			observations: [][]types.FluxDeployment{nil},
			errs:         []error{nil},
		}
		testee := flux.NewMonitor(
			observer, time.Millisecond,
			flux.WithMonitorLogger(logger), flux.WithMonitorClock(clock),
		)

		cctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()
		if err := testee.Run(cctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("unexpected error: %s", err)
		}
		if observer.calls < 2 {
			t.Errorf("unexpected poll count: %d", observer.calls)
		}
	})
}
