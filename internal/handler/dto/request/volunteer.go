package request

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
)

type ApplyRequest struct {
	OpportunityID uuid.UUID `json:"opportunity_id" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	Skills        string    `json:"skills,omitempty"`
	Motivation    string    `json:"motivation" binding:"required"`
	Availability  string    `json:"availability,omitempty"`
}

func (r ApplyRequest) ToParams() commands.ApplyParams {
	return commands.ApplyParams{
		OpportunityID: r.OpportunityID,
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.TrimSpace(r.Email),
		Skills:        strings.TrimSpace(r.Skills),
		Motivation:    strings.TrimSpace(r.Motivation),
		Availability:  strings.TrimSpace(r.Availability),
	}
}
