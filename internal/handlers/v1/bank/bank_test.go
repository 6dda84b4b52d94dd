package bank

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ginny-app/ginny-server/internal/service"
)

// mockStatsService is a mock for banksSummarizer and bankStatsGetter.
type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) BanksSummary(ctx context.Context) ([]service.BankSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.BankSummary), args.Error(1)
}

func (m *mockStatsService) StatsByBank(ctx context.Context, bankName string, year, month int) (*service.BankStats, error) {
	args := m.Called(ctx, bankName, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BankStats), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockStatsService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListBanksHandler(svc).Register(api)
	NewBankStatsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListBanks_Success(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("BanksSummary", mock.Anything).Return([]service.BankSummary{{
		BankName:         "Banco Popular",
		TransactionCount: 4,
		TotalIncome:      decimal.RequireFromString("15000"),
		TotalExpenses:    decimal.RequireFromString("6590"),
		Balance:          decimal.RequireFromString("8410"),
	}}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/banks")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListBanksResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Banks, 1)
	assert.Equal(t, "Banco Popular", body.Banks[0].BankName)
	assert.Equal(t, 4, body.Banks[0].TransactionCount)
	assert.Equal(t, "8410", body.Banks[0].Balance)
}

func TestHTTP_ListBanks_Error(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("BanksSummary", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/banks")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_BankStats_Success(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("StatsByBank", mock.Anything, "Banreservas", 2025, 8).Return(&service.BankStats{
		Income:   decimal.RequireFromString("65000"),
		Expenses: decimal.RequireFromString("5300"),
		Categories: []service.CategoryTotal{
			{Category: "utilities", Total: decimal.RequireFromString("5300")},
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/by-bank?bank=Banreservas&year=2025&month=8")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BankStatsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "65000", body.Income)
	assert.Equal(t, "5300", body.Expenses)
	assert.Len(t, body.Categories, 1)
	assert.Equal(t, "utilities", body.Categories[0].Category)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BankStats_MissingBankRejected(t *testing.T) {
	mockSvc := new(mockStatsService)

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/by-bank?year=2025&month=8")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "StatsByBank")
}

func TestHTTP_BankStats_Error(t *testing.T) {
	mockSvc := new(mockStatsService)
	mockSvc.On("StatsByBank", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/stats/by-bank?bank=Vimenca&year=2025&month=8")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
