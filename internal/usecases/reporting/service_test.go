package reporting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill"
	"github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill/mocks"
	"github.com/medibill/revenue-dashboard-api/internal/config"
	"github.com/medibill/revenue-dashboard-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Medibill: config.Medibill{
			Email:    "reports@example.com",
			Password: "secret",
		},
	}
}

func TestBuildReportInvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations set: an invalid month must never reach the upstream
	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), mockIntegrator)

	for _, token := range []string{"2024-13", "2024/01", "13-2024", ""} {
		_, err := service.BuildReport(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidMonth, "token %q", token)
	}
}

func TestBuildReportMissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	_, err := service.BuildReport(context.Background(), "2024-01")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestBuildReportAuthenticationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), mockIntegrator)

	// Only Authenticate may be called; the roster fetch must never run
	mockIntegrator.EXPECT().
		Authenticate(gomock.Any(), "reports@example.com", "secret").
		Return("", errors.Wrap(medibill.ErrAuthenticationFailed, "invalid login credentials"))

	_, err := service.BuildReport(context.Background(), "2024-01")
	assert.ErrorIs(t, err, medibill.ErrAuthenticationFailed)
}

func TestBuildReportEmptyRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), mockIntegrator)

	mockIntegrator.EXPECT().
		Authenticate(gomock.Any(), "reports@example.com", "secret").
		Return("tok-123", nil)

	mockIntegrator.EXPECT().
		ListDoctors(gomock.Any(), "tok-123").
		Return([]domain.Doctor{}, nil)

	// No metric fetch expectations: an empty roster means no work to do
	rows, err := service.BuildReport(context.Background(), "2024-01")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBuildReportSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), mockIntegrator)

	doctors := []domain.Doctor{
		{ID: "d1", AccountNumber: "A001", Name: "Dr A"},
		{ID: "d2", AccountNumber: "A002", Name: "Dr B"},
	}

	mockIntegrator.EXPECT().
		Authenticate(gomock.Any(), "reports@example.com", "secret").
		Return("tok-123", nil)

	mockIntegrator.EXPECT().
		ListDoctors(gomock.Any(), "tok-123").
		Return(doctors, nil)

	mockIntegrator.EXPECT().
		FetchMonthlyAmounts(gomock.Any(), domain.MetricInvoiced, "tok-123", []string{"d1", "d2"}, gomock.Any()).
		Return([]domain.MonthlyMetric{
			{DoctorID: "d1", Amount: 1500},
		})

	mockIntegrator.EXPECT().
		FetchMonthlyAmounts(gomock.Any(), domain.MetricReceived, "tok-123", []string{"d1", "d2"}, gomock.Any()).
		Return([]domain.MonthlyMetric{
			{DoctorID: "d1", Amount: 500},
			{DoctorID: "d2", Amount: 320},
		})

	rows, err := service.BuildReport(context.Background(), "2024-01")
	assert.NoError(t, err)

	assert.Equal(t, []domain.RevenueRow{
		{Doctor: doctors[0], InvoicedAmount: 1500, ReceivedAmount: 500, MonthLabel: "January 2024"},
		{Doctor: doctors[1], InvoicedAmount: 0, ReceivedAmount: 320, MonthLabel: "January 2024"},
	}, rows)
}

func TestBuildReportReusesHeldToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), mockIntegrator)

	// A single authentication serves both runs
	mockIntegrator.EXPECT().
		Authenticate(gomock.Any(), "reports@example.com", "secret").
		Return("tok-123", nil).
		Times(1)

	mockIntegrator.EXPECT().
		ListDoctors(gomock.Any(), "tok-123").
		Return([]domain.Doctor{}, nil).
		Times(2)

	_, err := service.BuildReport(context.Background(), "2024-01")
	assert.NoError(t, err)

	_, err = service.BuildReport(context.Background(), "2024-02")
	assert.NoError(t, err)
}

func TestBuildReportDiscardsTokenOnRosterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), mockIntegrator)

	gomock.InOrder(
		mockIntegrator.EXPECT().
			Authenticate(gomock.Any(), "reports@example.com", "secret").
			Return("tok-stale", nil),
		mockIntegrator.EXPECT().
			ListDoctors(gomock.Any(), "tok-stale").
			Return(nil, errors.Wrap(medibill.ErrDirectoryFetchFailed, "status 401")),
		// The next run must re-authenticate with a fresh token
		mockIntegrator.EXPECT().
			Authenticate(gomock.Any(), "reports@example.com", "secret").
			Return("tok-fresh", nil),
		mockIntegrator.EXPECT().
			ListDoctors(gomock.Any(), "tok-fresh").
			Return([]domain.Doctor{}, nil),
	)

	_, err := service.BuildReport(context.Background(), "2024-01")
	assert.ErrorIs(t, err, medibill.ErrDirectoryFetchFailed)

	rows, err := service.BuildReport(context.Background(), "2024-01")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
