// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the access level of a reader account.
type Role string

const (
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// AvatarFrame describes the decorative frame drawn around an avatar.
type AvatarFrame struct {
	Enabled   bool   `json:"enabled"`
	Color     string `json:"color,omitempty"`
	Animation string `json:"animation,omitempty"`
	Thickness int    `json:"thickness,omitempty"`
}

// User is a reader profile.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email,omitempty"`
	Role         Role         `json:"role,omitempty"`
	Avatar       string       `json:"avatar,omitempty"`
	CreatedAt    string       `json:"createdAt,omitempty"`
	AvatarFrame  *AvatarFrame `json:"avatarFrame,omitempty"`
	Bio          string       `json:"bio,omitempty"`
	Telegram     string       `json:"telegram,omitempty"`
	Discord      string       `json:"discord,omitempty"`
	Website      string       `json:"website,omitempty"`
	IsPremium    bool         `json:"isPremium,omitempty"`
	PremiumUntil string       `json:"premiumUntil,omitempty"`
}

// SavedAccount is a locally cached profile used for quick account switching.
type SavedAccount struct {
	User       User   `json:"user"`
	LastActive string `json:"lastActive"`
}

// AuthState is the local session: the active user, the authentication flag
// and the saved accounts of this device.
type AuthState struct {
	User            *User          `json:"user"`
	IsAuthenticated bool           `json:"isAuthenticated"`
	SavedAccounts   []SavedAccount `json:"savedAccounts,omitempty"`
}

// AuthStorage is the persisted shape of the auth-storage key.
type AuthStorage struct {
	State   AuthState `json:"state"`
	Version int       `json:"version"`
}

// Minimized returns a copy of the storage without saved accounts. This is the
// form that leaves the device.
func (a AuthStorage) Minimized() AuthStorage {
	return AuthStorage{
		State: AuthState{
			User:            a.State.User,
			IsAuthenticated: a.State.IsAuthenticated,
		},
		Version: a.Version,
	}
}

// FindSavedAccount returns the index of the saved account with the given
// user id, or -1.
func (a AuthState) FindSavedAccount(userID string) int {
	for i, acc := range a.SavedAccounts {
		if acc.User.ID == userID {
			return i
		}
	}
	return -1
}
