package request

import (
	"strings"

	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

func (r SignUpRequest) ToParams() commands.SignUpParams {
	return commands.SignUpParams{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
		FullName: strings.TrimSpace(r.FullName),
	}
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
