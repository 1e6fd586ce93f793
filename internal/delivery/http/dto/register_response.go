package dto

import (
	"kaamwala/internal/domain/user"
	"kaamwala/internal/usecase"
)

type RegisterResponse struct {
	User     user.User         `json:"user"`
	Warnings []usecase.Warning `json:"warnings"`
	// Redirect is the profile page to open next; empty when no id was assigned.
	Redirect string `json:"redirect,omitempty"`
}

func NewRegisterResponse(res usecase.RegisterResult) RegisterResponse {
	out := RegisterResponse{User: res.User, Warnings: res.Warnings}
	if out.Warnings == nil {
		out.Warnings = []usecase.Warning{}
	}
	if res.User.UserID != "" {
		out.Redirect = "/profile/" + res.User.UserID
	}
	return out
}
