package commands

import (
	"context"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/user"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound   = errs.New("profile not found")
	ErrProfileValidation = errs.New("profile validation failed")
)

type ProfileCommands interface {
	// UpdateFullName is the only profile mutation the application owns;
	// email and role belong to the auth and admin sides.
	UpdateFullName(ctx context.Context, userID uuid.UUID, fullName string) (*queries.ProfileView, error)
}

type profileCommandsImpl struct {
	profileRepo    ProfileRepository
	profileQueries queries.ProfileQueries
}

func NewProfileCommands(profileRepo ProfileRepository, profileQueries queries.ProfileQueries) ProfileCommands {
	return &profileCommandsImpl{
		profileRepo:    profileRepo,
		profileQueries: profileQueries,
	}
}

func (p *profileCommandsImpl) UpdateFullName(ctx context.Context, userID uuid.UUID, fullName string) (*queries.ProfileView, error) {
	name, err := user.NewFullName(fullName)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileValidation)
	}

	if err := p.profileRepo.UpdateFullName(ctx, userID, name.Value()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	return p.profileQueries.GetByID(ctx, userID)
}
