package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibill/revenue-dashboard-api/internal/config"
	"github.com/medibill/revenue-dashboard-api/internal/domain"
	"github.com/medibill/revenue-dashboard-api/internal/usecases/reporting"
)

type stubReporter struct {
	rows      []domain.RevenueRow
	err       error
	calls     int
	lastMonth string

	// When set, BuildReport blocks until the channel is closed
	block chan struct{}
}

func (s *stubReporter) BuildReport(_ context.Context, monthToken string) ([]domain.RevenueRow, error) {
	s.calls++
	s.lastMonth = monthToken
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func newTestService(reporter *stubReporter, snapshots *reporting.SnapshotStore) *ReportRefreshService {
	cfg := &config.Config{
		ReportRefresh: config.ReportRefresh{
			CronSchedule: "0 6 * * *",
			Enabled:      false,
		},
	}
	return NewReportRefreshService(reporter, snapshots, cfg)
}

func TestRefreshSnapshot(t *testing.T) {
	t.Run("builds and stores the previous month's report", func(t *testing.T) {
		reporter := &stubReporter{
			rows: []domain.RevenueRow{
				{Doctor: domain.Doctor{ID: "d1", Name: "Dr Naidoo"}},
			},
		}
		snapshots := reporting.NewSnapshotStore()
		service := newTestService(reporter, snapshots)

		service.refreshSnapshot()

		expectedMonth := domain.MonthOf(time.Now()).Previous()
		assert.Equal(t, expectedMonth.Token(), reporter.lastMonth)

		snapshot := snapshots.Latest()
		require.NotNil(t, snapshot)
		assert.Equal(t, expectedMonth.Token(), snapshot.Month)
		require.Len(t, snapshot.Rows, 1)
		assert.Equal(t, "Dr Naidoo", snapshot.Rows[0].Name)

		status := service.Status()
		assert.False(t, status.Running)
		assert.Empty(t, status.LastError)
		assert.False(t, status.LastStartedAt.IsZero())
		assert.False(t, status.LastCompletedAt.IsZero())
	})

	t.Run("a failed build keeps the previous snapshot and records the error", func(t *testing.T) {
		reporter := &stubReporter{
			rows: []domain.RevenueRow{{Doctor: domain.Doctor{ID: "d1"}}},
		}
		snapshots := reporting.NewSnapshotStore()
		service := newTestService(reporter, snapshots)

		service.refreshSnapshot()
		first := snapshots.Latest()
		require.NotNil(t, first)

		reporter.err = errors.New("upstream unavailable")
		service.refreshSnapshot()

		assert.Same(t, first, snapshots.Latest())

		status := service.Status()
		assert.Equal(t, "upstream unavailable", status.LastError)
		assert.False(t, status.Running)
	})

	t.Run("a later success clears the recorded error", func(t *testing.T) {
		reporter := &stubReporter{err: errors.New("upstream unavailable")}
		snapshots := reporting.NewSnapshotStore()
		service := newTestService(reporter, snapshots)

		service.refreshSnapshot()
		assert.Equal(t, "upstream unavailable", service.Status().LastError)

		reporter.err = nil
		service.refreshSnapshot()
		assert.Empty(t, service.Status().LastError)
	})
}

func TestRunNow(t *testing.T) {
	t.Run("a second trigger while one is running is rejected", func(t *testing.T) {
		reporter := &stubReporter{block: make(chan struct{})}
		snapshots := reporting.NewSnapshotStore()
		service := newTestService(reporter, snapshots)

		require.NoError(t, service.RunNow())

		// The run is claimed before RunNow returns, so the rejection
		// does not depend on the goroutine having been scheduled
		assert.True(t, service.Status().Running)

		err := service.RunNow()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already in progress")

		close(reporter.block)

		assert.Eventually(t, func() bool {
			return !service.Status().Running
		}, time.Second, 10*time.Millisecond)

		assert.Equal(t, 1, reporter.calls)
		require.NotNil(t, snapshots.Latest())
	})

	t.Run("a trigger after completion runs again", func(t *testing.T) {
		reporter := &stubReporter{}
		service := newTestService(reporter, reporting.NewSnapshotStore())

		require.NoError(t, service.RunNow())
		assert.Eventually(t, func() bool {
			return !service.Status().Running
		}, time.Second, 10*time.Millisecond)

		require.NoError(t, service.RunNow())
		assert.Eventually(t, func() bool {
			return !service.Status().Running
		}, time.Second, 10*time.Millisecond)

		assert.Equal(t, 2, reporter.calls)
	})
}

func TestStart(t *testing.T) {
	t.Run("disabled scheduler never builds a report", func(t *testing.T) {
		reporter := &stubReporter{}
		service := newTestService(reporter, reporting.NewSnapshotStore())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.Zero(t, reporter.calls)
	})
}

func TestStatus(t *testing.T) {
	t.Run("reports the configured schedule", func(t *testing.T) {
		service := newTestService(&stubReporter{}, reporting.NewSnapshotStore())

		status := service.Status()
		assert.Equal(t, "0 6 * * *", status.CronSchedule)
		assert.False(t, status.Enabled)
		assert.False(t, status.Running)
	})
}
