package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/medibill/revenue-dashboard-api/internal/config"
	"github.com/medibill/revenue-dashboard-api/internal/domain"
	"github.com/medibill/revenue-dashboard-api/internal/usecases/reporting"
)

// ReportRefreshConfig holds the snapshot scheduler settings
type ReportRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportRefreshService periodically rebuilds the previous month's revenue
// report and stores it as an in-memory snapshot for the read-only endpoint
type ReportRefreshService struct {
	scheduler *gocron.Scheduler
	config    ReportRefreshConfig
	reporter  reporting.Reporter
	snapshots *reporting.SnapshotStore

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

// RefreshStatus is the scheduler state reported by the cron status endpoint
type RefreshStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt time.Time `json:"last_completed_at,omitempty"`
	LastError       string    `json:"last_error,omitempty"`
}

// NewReportRefreshService creates the snapshot refresh scheduler
func NewReportRefreshService(
	reporter reporting.Reporter,
	snapshots *reporting.SnapshotStore,
	appConfig *config.Config,
) *ReportRefreshService {
	refreshConfig := ReportRefreshConfig{
		CronSchedule: appConfig.ReportRefresh.CronSchedule,
		Enabled:      appConfig.ReportRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("report refresh scheduler configuration loaded")

	return &ReportRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		reporter:  reporter,
		snapshots: snapshots,
	}
}

// Start schedules the refresh job. A no-op when disabled by configuration.
func (s *ReportRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("report refresh scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting report refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshSnapshot()
	})
	if err != nil {
		return fmt.Errorf("scheduling report refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping report refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers a refresh outside the schedule, e.g. from the cron
// endpoint. The run is claimed before this returns, so two rapid triggers
// cannot both report success; the loser gets the in-progress error.
func (s *ReportRefreshService) RunNow() error {
	if !s.tryBeginRefresh() {
		return fmt.Errorf("report refresh already in progress")
	}

	go s.runRefresh()
	return nil
}

// Status reports the current scheduler state
func (s *ReportRefreshService) Status() RefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return RefreshStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.refreshRunning,
		LastStartedAt:   s.lastRefreshStartedAt,
		LastCompletedAt: s.lastRefreshCompletedAt,
		LastError:       s.lastRefreshError,
	}
}

// tryBeginRefresh claims the single refresh slot. Returns false when a
// refresh is already in progress.
func (s *ReportRefreshService) tryBeginRefresh() bool {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		return false
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	return true
}

// refreshSnapshot is the scheduled entry point; a tick that overlaps a
// still-running refresh is skipped
func (s *ReportRefreshService) refreshSnapshot() {
	if !s.tryBeginRefresh() {
		logrus.Info("report refresh already in progress, skipping")
		return
	}

	s.runRefresh()
}

// runRefresh rebuilds the previous calendar month's report. The previous
// month is the most recent fully-closed reporting period. The caller must
// have claimed the refresh slot via tryBeginRefresh.
func (s *ReportRefreshService) runRefresh() {
	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	month := domain.MonthOf(time.Now()).Previous()

	logrus.WithField("month", month.Token()).Info("refreshing report snapshot")

	rows, err := s.reporter.BuildReport(context.Background(), month.Token())
	if err != nil {
		logrus.WithError(err).WithField("month", month.Token()).Error("report snapshot refresh failed")

		s.refreshMutex.Lock()
		s.lastRefreshError = err.Error()
		s.refreshMutex.Unlock()
		return
	}

	snapshot := s.snapshots.Save(month, rows)

	s.refreshMutex.Lock()
	s.lastRefreshError = ""
	s.refreshMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"month":       snapshot.Month,
		"rows":        len(snapshot.Rows),
	}).Info("report snapshot refreshed")
}
