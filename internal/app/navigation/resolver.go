// Package navigation derives what the dashboard shell displays for a given
// route and user. Every function here is pure and safe for concurrent use.
package navigation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
)

// ResolvePageTitle returns the title configured for path, or DefaultTitle.
// Only exact matches count.
func ResolvePageTitle(path string) string {
	if title, ok := pageTitles[path]; ok {
		return title
	}
	return DefaultTitle
}

// IsActive reports whether the entry at entryPath is the current route or one
// of its descendants.
func IsActive(entryPath, path string) bool {
	return path == entryPath || strings.HasPrefix(path, entryPath+"/")
}

// ResolveActiveEntries flags every entry matching path. Nested entries may all
// be active at once; picking one is left to the renderer.
func ResolveActiveEntries(path string, entries []models.NavigationEntry) []models.ResolvedEntry {
	resolved := make([]models.ResolvedEntry, 0, len(entries))
	for _, e := range entries {
		resolved = append(resolved, models.ResolvedEntry{NavigationEntry: e, Active: IsActive(e.Path, path)})
	}
	return resolved
}

// ResolveMobileEntries uses exact matching, like the compact header menu.
func ResolveMobileEntries(path string, entries []models.NavigationEntry) []models.ResolvedEntry {
	resolved := make([]models.ResolvedEntry, 0, len(entries))
	for _, e := range entries {
		resolved = append(resolved, models.ResolvedEntry{NavigationEntry: e, Active: path == e.Path})
	}
	return resolved
}

func ResolveGroups(path string, groups []models.NavigationGroup) []models.ResolvedGroup {
	resolved := make([]models.ResolvedGroup, 0, len(groups))
	for _, g := range groups {
		resolved = append(resolved, models.ResolvedGroup{Title: g.Title, Entries: ResolveActiveEntries(path, g.Entries)})
	}
	return resolved
}

// ResolveUserSummary never fails: a nil user yields the anonymous placeholder.
func ResolveUserSummary(user *models.User) models.UserSummary {
	if user == nil {
		return models.UserSummary{Initials: FallbackInitial, DisplayName: AnonymousName}
	}

	last := firstLetter(user.LastName)
	if last == "" {
		last = FallbackInitial
	}

	name := user.FullName
	if name == "" {
		name = user.FirstName
	}
	if name == "" {
		name = AnonymousName
	}

	return models.UserSummary{
		Initials:    firstLetter(user.FirstName) + last,
		DisplayName: name,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
	}
}

// Resolve computes the full shell state for one request.
func Resolve(path string, user *models.User, groups []models.NavigationGroup) models.NavigationState {
	return models.NavigationState{
		Path:   path,
		Title:  ResolvePageTitle(path),
		Groups: ResolveGroups(path, groups),
		Mobile: ResolveMobileEntries(path, MobileEntries),
		User:   ResolveUserSummary(user),
	}
}

func firstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(s))
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
