package dto

import (
	"time"

	"account_backend/internal/feature/accounts/domain/entity"
)

// MessageResp is the generic success/failure body used across endpoints.
type MessageResp struct {
	Msg string `json:"msg"`
}

// LoginResp carries the bearer token issued on successful authentication.
type LoginResp struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// UserResp is the profile representation returned by GET /user.
// The password hash is deliberately absent.
type UserResp struct {
	ID        string    `json:"id"`
	FirstName string    `json:"nome"`
	LastName  string    `json:"sobrenome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResp projects a User entity into its public representation.
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
