package response

import (
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
)

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	UserID string            `json:"user_id"`
	Tokens TokenPairResponse `json:"tokens"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		UserID: result.UserID.String(),
		Tokens: TokenPairResponse{
			AccessToken:  result.TokenPair.AccessToken,
			RefreshToken: result.TokenPair.RefreshToken,
		},
	}
}

type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromAuthorizedUser(view *queries.AuthorizedUserView) *MeResponse {
	return &MeResponse{
		ID:    view.ID.String(),
		Email: view.Email,
		Role:  view.Role,
	}
}
