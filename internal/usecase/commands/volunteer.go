package commands

import (
	"context"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/volunteer"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/clock"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrApplicationValidation = errs.New("application validation failed")

type ApplyParams struct {
	OpportunityID uuid.UUID
	Name          string
	Email         string
	Skills        string
	Motivation    string
	Availability  string
}

type VolunteerCommands interface {
	// Apply submits one application against a volunteer listing. There is
	// no update path; the team follows up by email.
	Apply(ctx context.Context, params ApplyParams, userID uuid.UUID) (uuid.UUID, error)
}

type volunteerCommandsImpl struct {
	volunteerRepo VolunteerRepository
	listingReads  ListingReads
	clock         clock.Clock
}

func NewVolunteerCommands(volunteerRepo VolunteerRepository, listingReads ListingReads, clk clock.Clock) VolunteerCommands {
	return &volunteerCommandsImpl{
		volunteerRepo: volunteerRepo,
		listingReads:  listingReads,
		clock:         clk,
	}
}

func (v *volunteerCommandsImpl) Apply(ctx context.Context, params ApplyParams, userID uuid.UUID) (uuid.UUID, error) {
	// The opportunity must be visible; its category is conventionally
	// volunteer but not enforced here.
	if _, err := v.listingReads.SnapshotByID(ctx, params.OpportunityID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrListingNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	application, err := volunteer.NewApplication(
		params.OpportunityID,
		userID,
		params.Name,
		params.Email,
		params.Skills,
		params.Motivation,
		params.Availability,
		v.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrApplicationValidation)
	}

	id, err := v.volunteerRepo.Create(ctx, application)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return id, nil
}
