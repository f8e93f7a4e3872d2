package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/user"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/clock"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/errs"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/jwt"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/password"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type SignUpParams struct {
	Email    string
	Password string
	FullName string
}

type AuthCommands interface {
	// SignUp creates the identity plus its profile row and signs the new
	// user in.
	SignUp(ctx context.Context, params SignUpParams) (*AuthResult, error)
	SignIn(ctx context.Context, email, plainPassword string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo    UserRepository
	profileRepo ProfileRepository
	authReads   AuthReadStore
	jwtService  *jwt.Service
	clock       clock.Clock
	logger      *slog.Logger
}

func NewAuthCommands(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	authReads AuthReadStore,
	jwtService *jwt.Service,
	clk clock.Clock,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		authReads:   authReads,
		jwtService:  jwtService,
		clock:       clk,
		logger:      logger,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, params SignUpParams) (*AuthResult, error) {
	credentials, err := user.NewCredentials(params.Email, params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	fullName, err := user.NewFullName(params.FullName)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.Hash(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(credentials.Email(), hash, user.RoleUser, a.clock.Now())

	userID, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	profile := user.NewProfile(userID, fullName, credentials.Email(), user.RoleUser)
	if err := a.profileRepo.Create(ctx, profile); err != nil {
		// The identity exists without a profile; the profile page will show
		// empty fields until an admin repairs the row.
		a.logger.Warn("failed to create profile at sign-up", "user_id", userID, "error", err.Error())
	}

	tokenPair, err := a.issueTokens(userID, user.RoleUser)
	if err != nil {
		return nil, err
	}

	return &AuthResult{UserID: userID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) SignIn(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	credentials, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, hash, err := a.authReads.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.Verify(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{UserID: view.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate the user still exists
	if _, err := a.authReads.FindByID(ctx, claims.UserID); err != nil {
		return nil, ErrUserNotFound
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
