package core

import (
	"context"
	"time"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name,omitempty"`
	Provider       string    `json:"provider"`
	TwoFAEnabled   bool      `json:"twoFAEnabled"`
	BackedUp       bool      `json:"backedUp"`
	ProModeEnabled bool      `json:"proModeEnabled"`
	IsPro          bool      `json:"isPro"`
	Rewards        int       `json:"rewards"`
	CreatedAt      time.Time `json:"createdAt"`
}

type LoginInput struct {
	Provider  string
	Email     string
	Password  string
	NewWallet bool
}

// ProfileUpdate carries the optional profile flags; nil fields are left
// untouched.
type ProfileUpdate struct {
	TwoFAEnabled   *bool `json:"twoFAEnabled,omitempty"`
	BackedUp       *bool `json:"backedUp,omitempty"`
	ProModeEnabled *bool `json:"proModeEnabled,omitempty"`
	IsPro          *bool `json:"isPro,omitempty"`
}

type UserStore interface {
	Create(ctx context.Context, user *User) error
	Find(ctx context.Context, id string) (*User, error)
	FindEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AccountService interface {
	Login(ctx context.Context, input LoginInput) (*User, string, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}
