//go:build unit

package builder

import (
	reqdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test Traveler",
	}
}

func (a *AuthBuilder) BuildSignUpDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
	}
}

func (a *AuthBuilder) BuildSignInDTO() reqdto.SignInRequest {
	return reqdto.SignInRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}
