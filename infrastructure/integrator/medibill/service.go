package medibill

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill/medibillclient"
	"github.com/medibill/revenue-dashboard-api/internal/config"
	"github.com/medibill/revenue-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks

// Integrator is the MediBill API integration surface the usecases depend on
type Integrator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	ListDoctors(ctx context.Context, token string) ([]domain.Doctor, error)
	FetchMonthlyAmounts(ctx context.Context, kind domain.MetricKind, token string, doctorIDs []string, month domain.Month) []domain.MonthlyMetric
}

type Service struct {
	cfg    *config.Config
	Client medibillclient.Client
}

func New(cfg *config.Config, client medibillclient.Client) Integrator {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

// Authenticate exchanges credentials for a bearer token. No retries and no
// expiry tracking: the caller owns the token lifecycle and re-authenticates
// when a later call reports the token as invalid.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentialsInput
	}

	token, err := s.Client.Login(ctx, email, password)
	if err != nil {
		return "", errors.Wrap(ErrAuthenticationFailed, err.Error())
	}

	return token, nil
}

// ListDoctors retrieves the roster with internal test accounts filtered
// out. Zero doctors after filtering is not an error.
func (s *Service) ListDoctors(ctx context.Context, token string) ([]domain.Doctor, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	records, err := s.Client.GetDoctors(ctx, token)
	if err != nil {
		return nil, errors.Wrap(ErrDirectoryFetchFailed, err.Error())
	}

	doctors := make([]domain.Doctor, 0, len(records))
	for _, record := range records {
		if record.IsTestAccount() {
			logrus.WithFields(logrus.Fields{
				"doctor_id":     record.UserID,
				"practice_name": *record.PracticeName,
			}).Debug("skipping test account")
			continue
		}

		doctors = append(doctors, domain.Doctor{
			ID:            record.UserID,
			AccountNumber: record.AccountNumber,
			Name:          record.DoctorName,
		})
	}

	return doctors, nil
}

// metricOutcome is the settled result of one per-doctor report request,
// success or failure, so the defaulting policy has a uniform shape to fold
// over.
type metricOutcome struct {
	doctorID string
	amount   float64
	err      error
}

// foldOutcome applies the partial-failure policy: a failed fetch degrades
// to amount 0 instead of failing the batch.
func foldOutcome(kind domain.MetricKind, outcome metricOutcome) domain.MonthlyMetric {
	if outcome.err != nil {
		logrus.WithError(outcome.err).WithFields(logrus.Fields{
			"metric_kind": kind,
			"doctor_id":   outcome.doctorID,
		}).Warn("metric fetch degraded, defaulting amount to 0")

		return domain.MonthlyMetric{DoctorID: outcome.doctorID, Amount: 0}
	}

	return domain.MonthlyMetric{DoctorID: outcome.doctorID, Amount: outcome.amount}
}

// FetchMonthlyAmounts fetches one metric for every doctor ID, one upstream
// request per doctor, dispatched concurrently and joined only after all of
// them settle. The result always carries exactly one entry per requested ID,
// in no guaranteed order; any per-doctor failure is folded to amount 0 and
// logged, never propagated.
func (s *Service) FetchMonthlyAmounts(ctx context.Context, kind domain.MetricKind, token string, doctorIDs []string, month domain.Month) []domain.MonthlyMetric {
	outcomes := make([]metricOutcome, len(doctorIDs))

	var wg sync.WaitGroup

	// Optional cap on concurrent upstream requests; 0 means unbounded
	var semaphore chan struct{}
	if max := s.cfg.ReportFetch.MaxConcurrentRequests; max > 0 {
		semaphore = make(chan struct{}, max)
	}

	for i, doctorID := range doctorIDs {
		wg.Add(1)

		go func(i int, doctorID string) {
			defer wg.Done()

			if semaphore != nil {
				semaphore <- struct{}{}
				defer func() { <-semaphore }()
			}

			amount, err := s.fetchDoctorAmount(ctx, kind, token, doctorID, month)
			outcomes[i] = metricOutcome{doctorID: doctorID, amount: amount, err: err}
		}(i, doctorID)
	}

	wg.Wait()

	metrics := make([]domain.MonthlyMetric, 0, len(outcomes))
	for _, outcome := range outcomes {
		metrics = append(metrics, foldOutcome(kind, outcome))
	}

	return metrics
}

// fetchDoctorAmount looks up one doctor's series and picks the requested
// month. A series without that month is a plain 0, not an error.
func (s *Service) fetchDoctorAmount(ctx context.Context, kind domain.MetricKind, token, doctorID string, month domain.Month) (float64, error) {
	switch kind {
	case domain.MetricInvoiced:
		report, err := s.Client.GetInvoicesReport(ctx, token, doctorID)
		if err != nil {
			return 0, err
		}

		amount, found := report.AmountFor(month.Token())
		if !found {
			logrus.WithFields(logrus.Fields{
				"doctor_id": doctorID,
				"month":     month.Token(),
			}).Debug("no invoiced entry for requested month")
		}
		return amount, nil

	case domain.MetricReceived:
		report, err := s.Client.GetReceivedReport(ctx, token, doctorID)
		if err != nil {
			return 0, err
		}

		amount, found := report.AmountFor(month.Token())
		if !found {
			logrus.WithFields(logrus.Fields{
				"doctor_id": doctorID,
				"month":     month.Token(),
			}).Debug("no received entry for requested month")
		}
		return amount, nil

	default:
		return 0, errors.Errorf("unknown metric kind: %s", kind)
	}
}
