package dto

import "kaamwala/internal/domain/user"

type AuthResponse struct {
	Authenticated bool       `json:"authenticated"`
	User          *user.User `json:"user"`
}

func NewAuthResponse(authenticated bool, u *user.User) AuthResponse {
	if u != nil {
		s := u.Sanitized()
		u = &s
	}
	return AuthResponse{Authenticated: authenticated, User: u}
}
