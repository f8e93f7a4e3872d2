package response

import (
	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName *string   `json:"full_name,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Role     string    `json:"role"`
}

func FromProfileView(view *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		ID:       view.ID,
		FullName: view.FullName,
		Email:    view.Email,
		Role:     view.Role,
	}
}
