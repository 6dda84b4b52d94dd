package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ginny-app/ginny-server/internal/service"
)

// mockStatsService is a mock for monthlyStatsGetter and categoryBreakdownGetter.
type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) MonthlyStats(ctx context.Context, year, month int) (*service.MonthlyStats, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MonthlyStats), args.Error(1)
}

func (m *mockStatsService) CategoryBreakdown(ctx context.Context, year, month int) ([]service.CategoryTotal, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CategoryTotal), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockStatsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewMonthlyStatsHandler(svc).Register(api)
	NewCategoryBreakdownHandler(svc).Register(api)
	return api
}

func TestDefaultYearMonth_FillsCurrentDate(t *testing.T) {
	now := time.Now()

	year, month := defaultYearMonth(0, 0)
	assert.Equal(t, now.Year(), year)
	assert.Equal(t, int(now.Month()), month)

	year, month = defaultYearMonth(2024, 5)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 5, month)
}

func TestHTTP_MonthlyStats_ExplicitMonth(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("MonthlyStats", mock.Anything, 2025, 7).Return(&service.MonthlyStats{
		Income:   decimal.RequireFromString("65000"),
		Expenses: decimal.RequireFromString("12340.50"),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/monthly?year=2025&month=7")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlyStatsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "65000", body.Income)
	assert.Equal(t, "12340.5", body.Expenses)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthlyStats_DefaultsToCurrentMonth(t *testing.T) {
	now := time.Now()
	mockSvc := new(mockStatsService)
	mockSvc.On("MonthlyStats", mock.Anything, now.Year(), int(now.Month())).
		Return(&service.MonthlyStats{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/monthly")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthlyStats_InvalidMonthRejected(t *testing.T) {
	mockSvc := new(mockStatsService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Get("/v1/stats/monthly?month=13")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "MonthlyStats")
}

func TestHTTP_MonthlyStats_Error(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("MonthlyStats", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/monthly?year=2025&month=1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_CategoryBreakdown_IncludesDisplayMetadata(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("CategoryBreakdown", mock.Anything, 2025, 8).Return([]service.CategoryTotal{
		{Category: "food", Total: decimal.RequireFromString("5200")},
		{Category: "transport", Total: decimal.RequireFromString("1840")},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/categories?year=2025&month=8")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CategoryBreakdownResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, 2)

	food := body.Categories[0]
	assert.Equal(t, "food", food.Category)
	assert.Equal(t, "Comida", food.Label)
	assert.Equal(t, "5200", food.Total)
	assert.NotEmpty(t, food.Icon)
	assert.NotEmpty(t, food.Color)
}

func TestHTTP_CategoryBreakdown_UnknownCategoryGetsOtherMetadata(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("CategoryBreakdown", mock.Anything, 2025, 8).Return([]service.CategoryTotal{
		{Category: "mystery", Total: decimal.RequireFromString("10")},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/categories?year=2025&month=8")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CategoryBreakdownResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Categories, 1)
	assert.Equal(t, "Otros", body.Categories[0].Label)
}

func TestHTTP_CategoryBreakdown_Error(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("CategoryBreakdown", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/categories?year=2025&month=8")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
