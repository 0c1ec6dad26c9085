package reporting

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill"
	"github.com/medibill/revenue-dashboard-api/internal/config"
	"github.com/medibill/revenue-dashboard-api/internal/domain"
	"github.com/medibill/revenue-dashboard-api/pkg/log"
	"github.com/medibill/revenue-dashboard-api/pkg/utils"
)

// Service runs the report workflow: authenticate, fetch the roster, fetch
// both monthly metrics in parallel, aggregate.
type Service struct {
	cfg        *config.Config
	integrator medibill.Integrator

	// Held bearer token, reused across runs and discarded on whole-batch
	// failure so the next run re-authenticates. The only cross-request
	// state in the service.
	tokenMutex sync.Mutex
	token      string
}

// NewService creates the reporting workflow service
func NewService(cfg *config.Config, integrator medibill.Integrator) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// BuildReport builds the aggregated revenue rows for one "YYYY-MM" month.
// Only whole-batch failures (invalid input, authentication, roster) surface
// as errors; per-doctor metric failures have already degraded to zero
// amounts inside the fetch.
func (s *Service) BuildReport(ctx context.Context, monthToken string) ([]domain.RevenueRow, error) {
	month, err := domain.ParseMonth(monthToken)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	if !s.cfg.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	token, err := s.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	doctors, err := s.integrator.ListDoctors(ctx, token)
	if err != nil {
		// The roster failure may mean the held token went stale; discard
		// it so the next run re-authenticates
		s.discardToken()
		return nil, err
	}

	if len(doctors) == 0 {
		logrus.Info("no doctors found after filtering, returning empty report")
		return []domain.RevenueRow{}, nil
	}

	doctorIDs := make([]string, len(doctors))
	for i, doctor := range doctors {
		doctorIDs[i] = doctor.ID
	}

	logrus.WithFields(logrus.Fields{
		"doctors": len(doctorIDs),
		"month":   month.Token(),
	}).Info("fetching monthly metrics")

	// Both metric kinds are independent; fetch them concurrently and wait
	// for both
	var invoiced, received []domain.MonthlyMetric

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		invoiced = s.integrator.FetchMonthlyAmounts(ctx, domain.MetricInvoiced, token, doctorIDs, month)
	}()

	go func() {
		defer wg.Done()
		received = s.integrator.FetchMonthlyAmounts(ctx, domain.MetricReceived, token, doctorIDs, month)
	}()

	wg.Wait()

	rows := domain.AggregateRevenue(doctors, invoiced, received, month.Label())

	if log.IsDevelopment() {
		logrus.Debug("aggregated revenue rows: ", utils.PrettyJson(rows))
	}

	return rows, nil
}

// ensureToken reuses the held token or authenticates for a fresh one
func (s *Service) ensureToken(ctx context.Context) (string, error) {
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()

	if s.token != "" {
		return s.token, nil
	}

	logrus.Info("no held token, authenticating against the MediBill API")

	token, err := s.integrator.Authenticate(ctx, s.cfg.Medibill.Email, s.cfg.Medibill.Password)
	if err != nil {
		return "", err
	}

	s.token = token
	return token, nil
}

// discardToken drops the held token so the next run re-authenticates
func (s *Service) discardToken() {
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()

	s.token = ""
}
