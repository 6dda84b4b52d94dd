package profile

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ginny-app/ginny-server/internal/service"
)

// GetProfileResponseBody is the response body for the current user.
type GetProfileResponseBody struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email" doc:"User email address"`
	Name      string `json:"name" doc:"Display name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// GetProfileOutput is the Huma output for the current user.
type GetProfileOutput struct {
	Body GetProfileResponseBody
}

// userResolver is the interface for resolving the current user.
type userResolver interface {
	GetOrCreate(ctx context.Context) (*service.User, error)
}

// GetProfileHandler handles GET /v1/profile.
type GetProfileHandler struct {
	UserService userResolver
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(svc userResolver) *GetProfileHandler {
	return &GetProfileHandler{UserService: svc}
}

// Register registers the profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile",
		Summary:     "Get current user",
		Description: "Resolves the current user from the connected mailbox, falling back to the demo user.",
		Tags:        []string{"Profile"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, input *struct{}) (*GetProfileOutput, error) {
	user, err := h.UserService.GetOrCreate(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get user", err)
	}

	return &GetProfileOutput{Body: GetProfileResponseBody{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}}, nil
}
