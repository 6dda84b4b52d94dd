package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ginny-app/ginny-server/internal/service"
)

// mockUserService is a mock for userResolver.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetOrCreate(ctx context.Context) (*service.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockUserService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetProfileHandler(svc).Register(api)
	return api
}

func TestHTTP_GetProfile_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockUserService)
	mockSvc.On("GetOrCreate", mock.Anything).Return(&service.User{
		ID:        userID,
		Email:     "maria@gmail.com",
		Name:      "maria",
		CreatedAt: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/profile")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetProfileResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.ID)
	assert.Equal(t, "maria@gmail.com", body.Email)
	assert.Equal(t, "maria", body.Name)
	assert.Equal(t, "2025-08-01T09:00:00Z", body.CreatedAt)
}

func TestHTTP_GetProfile_Error(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("GetOrCreate", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/profile")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
