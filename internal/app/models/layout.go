package models

import "github.com/a-h/templ"

// User is the identity snapshot handed to the shell. A nil *User means the
// visitor has no authenticated session.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// NavigationEntry is one link of the dashboard menu. An empty Badge is not rendered.
type NavigationEntry struct {
	Title        string `json:"title"`
	Path         string `json:"path"`
	Icon         string `json:"icon"`
	Badge        string `json:"badge,omitempty"`
	BadgeVariant string `json:"badge_variant,omitempty"`
}

type NavigationGroup struct {
	Title   string            `json:"title"`
	Entries []NavigationEntry `json:"entries"`
}

// UserSummary is what the header and sidebar footer display for the current user.
type UserSummary struct {
	Initials    string `json:"initials"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type ResolvedEntry struct {
	NavigationEntry
	Active bool `json:"active"`
}

type ResolvedGroup struct {
	Title   string          `json:"title"`
	Entries []ResolvedEntry `json:"entries"`
}

// NavigationState is the display state computed for one request.
type NavigationState struct {
	Path   string          `json:"path"`
	Title  string          `json:"title"`
	Groups []ResolvedGroup `json:"groups"`
	Mobile []ResolvedEntry `json:"mobile"`
	User   UserSummary     `json:"user"`
}

type LayoutTempl struct {
	Title         string
	User          *User
	Nav           NavigationState
	Notifications NotificationSummary
	QuickStats    []QuickStat
	Content       templ.Component
}
