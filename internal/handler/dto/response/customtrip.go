package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

type CustomRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	TripDetails string    `json:"trip_details"`
	BudgetCents *int64    `json:"budget_cents,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCustomRequestView(view *queries.CustomRequestView) *CustomRequestResponse {
	return &CustomRequestResponse{
		ID:          view.ID,
		TripDetails: view.TripDetails,
		BudgetCents: view.BudgetCents,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
	}
}

func FromCustomRequestViews(views []*queries.CustomRequestView) []*CustomRequestResponse {
	out := make([]*CustomRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCustomRequestView(v))
	}
	return out
}
