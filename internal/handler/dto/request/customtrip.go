package request

import (
	"strings"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
)

type SubmitCustomRequest struct {
	Destination string `json:"destination" binding:"required"`
	TravelDates string `json:"travel_dates,omitempty"`
	Travelers   int    `json:"travelers" binding:"min=0"`
	Details     string `json:"details" binding:"required"`
	BudgetCents *int64 `json:"budget_cents,omitempty"`
}

func (r SubmitCustomRequest) ToParams() commands.SubmitRequestParams {
	return commands.SubmitRequestParams{
		Destination: strings.TrimSpace(r.Destination),
		TravelDates: strings.TrimSpace(r.TravelDates),
		Travelers:   r.Travelers,
		Details:     strings.TrimSpace(r.Details),
		BudgetCents: r.BudgetCents,
	}
}
