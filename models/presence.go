package models

// PresenceState is the online flag kept by the realtime backend.
type PresenceState string

const (
	PresenceOnline  PresenceState = "online"
	PresenceOffline PresenceState = "offline"
)

// PresenceStatus is the value stored at users/<id>/status.
type PresenceStatus struct {
	State    PresenceState `json:"state"`
	LastSeen any           `json:"lastSeen"`
}

// PresenceInfo is the public profile stored at users/<id>/info.
type PresenceInfo struct {
	Username  string `json:"username"`
	Avatar    string `json:"avatar,omitempty"`
	Role      Role   `json:"role,omitempty"`
	IsPremium bool   `json:"isPremium"`
}

// NewPresenceInfo extracts the public part of a profile.
func NewPresenceInfo(u User) PresenceInfo {
	return PresenceInfo{
		Username:  u.Username,
		Avatar:    u.Avatar,
		Role:      u.Role,
		IsPremium: u.IsPremium,
	}
}

// OnlineUser is a user currently marked online.
type OnlineUser struct {
	UserID string `json:"userId"`
	PresenceInfo
	LastSeen string `json:"lastSeen,omitempty"`
}
