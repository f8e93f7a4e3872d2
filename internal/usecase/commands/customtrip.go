package commands

import (
	"context"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/customtrip"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/clock"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestValidation = errs.New("custom request validation failed")

type SubmitRequestParams struct {
	Destination string
	TravelDates string
	Travelers   int
	Details     string
	BudgetCents *int64
}

type CustomRequestCommands interface {
	// SubmitRequest creates one bespoke-trip inquiry. Status changes after
	// submission are the admin side's business; this side only reads them.
	SubmitRequest(ctx context.Context, params SubmitRequestParams, userID uuid.UUID) (uuid.UUID, error)
}

type customRequestCommandsImpl struct {
	requestRepo CustomRequestRepository
	clock       clock.Clock
}

func NewCustomRequestCommands(requestRepo CustomRequestRepository, clk clock.Clock) CustomRequestCommands {
	return &customRequestCommandsImpl{requestRepo: requestRepo, clock: clk}
}

func (c *customRequestCommandsImpl) SubmitRequest(ctx context.Context, params SubmitRequestParams, userID uuid.UUID) (uuid.UUID, error) {
	brief := customtrip.TripBrief{
		Destination: params.Destination,
		TravelDates: params.TravelDates,
		Travelers:   params.Travelers,
		Details:     params.Details,
	}

	request, err := customtrip.NewRequest(userID, brief, params.BudgetCents, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRequestValidation)
	}

	id, err := c.requestRepo.Create(ctx, request)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return id, nil
}
