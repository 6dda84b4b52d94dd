package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ginny-app/ginny-server/internal/service"
)

// mockSyncService is a mock for syncRunner and syncStatusGetter.
type mockSyncService struct {
	mock.Mock
}

func (m *mockSyncService) Sync(ctx context.Context) (*service.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncResult), args.Error(1)
}

func (m *mockSyncService) Status(ctx context.Context) (*service.SyncStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncStatus), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockSyncService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewRunSyncHandler(svc).Register(api)
	NewSyncStatusHandler(svc).Register(api)
	return api
}

func TestHTTP_RunSync_Success(t *testing.T) {
	mockSvc := new(mockSyncService)
	mockSvc.On("Sync", mock.Anything).Return(&service.SyncResult{Synced: 3, Total: 10}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/sync")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RunSyncResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Synced)
	assert.Equal(t, 10, body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_RunSync_MailboxError(t *testing.T) {
	mockSvc := new(mockSyncService)
	mockSvc.On("Sync", mock.Anything).Return(nil, errors.New("token expired"))

	resp := newTestAPI(t, mockSvc).Post("/v1/sync")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "reconnect your Gmail account")
}

func TestHTTP_SyncStatus_NeverSynced(t *testing.T) {
	mockSvc := new(mockSyncService)
	mockSvc.On("Status", mock.Anything).Return(&service.SyncStatus{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/sync/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SyncStatusResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.LastSyncAt)
	assert.Equal(t, 0, body.SyncedEmailCount)
}

func TestHTTP_SyncStatus_AfterSyncs(t *testing.T) {
	lastSync := time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)
	mockSvc := new(mockSyncService)
	mockSvc.On("Status", mock.Anything).Return(&service.SyncStatus{
		LastSyncAt:       &lastSync,
		SyncedEmailCount: 42,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/sync/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SyncStatusResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.LastSyncAt)
	assert.Equal(t, "2025-08-15T10:30:00Z", *body.LastSyncAt)
	assert.Equal(t, 42, body.SyncedEmailCount)
}

func TestHTTP_SyncStatus_Error(t *testing.T) {
	mockSvc := new(mockSyncService)
	mockSvc.On("Status", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/sync/status")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
