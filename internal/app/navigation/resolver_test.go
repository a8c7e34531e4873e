package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
)

func TestResolvePageTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/dashboard", "Tableau de bord"},
		{"/dashboard/clients", "Clients"},
		{"/dashboard/invoices", "Factures"},
		{"/dashboard/payments", "Paiements"},
		{"/dashboard/settings", "Paramètres"},
		{"/dashboard/reports", "Rapports"},
		{"/unknown/path", "Tableau de bord"},
		{"/dashboard/clients/42", "Tableau de bord"},
		{"/dashboard/invoices/create", "Tableau de bord"},
		{"/dashboard/calendar", "Tableau de bord"},
		{"", "Tableau de bord"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePageTitle(tt.path))
		})
	}
}

func TestIsActive(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		assert.True(t, IsActive("/dashboard/invoices", "/dashboard/invoices"))
	})

	t.Run("descendant route", func(t *testing.T) {
		assert.True(t, IsActive("/dashboard/invoices", "/dashboard/invoices/create"))
		assert.True(t, IsActive("/dashboard/clients", "/dashboard/clients/42/edit"))
	})

	t.Run("requires a slash boundary", func(t *testing.T) {
		assert.False(t, IsActive("/dashboard/invoices", "/dashboard/invoice"))
		assert.False(t, IsActive("/dashboard/invoices", "/dashboard/invoicesx"))
	})

	t.Run("unrelated route", func(t *testing.T) {
		assert.False(t, IsActive("/dashboard/payments", "/dashboard/reports"))
	})
}

func TestResolveActiveEntries(t *testing.T) {
	entries := []models.NavigationEntry{
		{Title: "Dashboard", Path: "/dashboard"},
		{Title: "Clients", Path: "/dashboard/clients", Badge: "24"},
		{Title: "Factures", Path: "/dashboard/invoices"},
	}

	t.Run("flags every matching entry", func(t *testing.T) {
		got := ResolveActiveEntries("/dashboard/clients/42", entries)
		require.Len(t, got, 3)
		assert.True(t, got[0].Active, "parent entry also matches by prefix")
		assert.True(t, got[1].Active)
		assert.False(t, got[2].Active)
	})

	t.Run("keeps declared order and entry data", func(t *testing.T) {
		got := ResolveActiveEntries("/dashboard", entries)
		require.Len(t, got, 3)
		for i, e := range entries {
			assert.Equal(t, e, got[i].NavigationEntry)
		}
		assert.Equal(t, []bool{true, false, false}, []bool{got[0].Active, got[1].Active, got[2].Active})
	})

	t.Run("empty list", func(t *testing.T) {
		got := ResolveActiveEntries("/dashboard", nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestResolveMobileEntries(t *testing.T) {
	got := ResolveMobileEntries("/dashboard/invoices/create", MobileEntries)
	require.Len(t, got, len(MobileEntries))
	for _, e := range got {
		assert.False(t, e.Active, "mobile menu only matches exact paths: %s", e.Path)
	}

	got = ResolveMobileEntries("/dashboard/invoices", MobileEntries)
	assert.True(t, got[2].Active)
	assert.False(t, got[0].Active)
}

func TestResolveUserSummary(t *testing.T) {
	t.Run("anonymous placeholder", func(t *testing.T) {
		want := models.UserSummary{Initials: "U", DisplayName: "Utilisateur"}
		assert.Equal(t, want, ResolveUserSummary(nil))
		assert.Equal(t, ResolveUserSummary(nil), ResolveUserSummary(nil))
	})

	t.Run("first and last name", func(t *testing.T) {
		got := ResolveUserSummary(&models.User{ID: "u1", FirstName: "Ana", LastName: "Lee", FullName: "Ana Lee", Email: "ana@example.com"})
		assert.Equal(t, "AL", got.Initials)
		assert.Equal(t, "Ana Lee", got.DisplayName)
		assert.Equal(t, "ana@example.com", got.Email)
	})

	t.Run("missing last name uses fallback", func(t *testing.T) {
		got := ResolveUserSummary(&models.User{ID: "u1", FirstName: "Ana"})
		assert.Equal(t, "AU", got.Initials)
		assert.Equal(t, "Ana", got.DisplayName, "falls back to first name")
	})

	t.Run("lowercase and accented names", func(t *testing.T) {
		got := ResolveUserSummary(&models.User{ID: "u1", FirstName: "élodie", LastName: "ørsted"})
		assert.Equal(t, "ÉØ", got.Initials)
	})

	t.Run("no names at all", func(t *testing.T) {
		got := ResolveUserSummary(&models.User{ID: "u1", Email: "x@example.com", AvatarURL: "https://img.example.com/x.png"})
		assert.Equal(t, "U", got.Initials)
		assert.Equal(t, "Utilisateur", got.DisplayName)
		assert.Equal(t, "https://img.example.com/x.png", got.AvatarURL)
	})
}

func TestResolve(t *testing.T) {
	user := &models.User{ID: "u1", FirstName: "Ana", LastName: "Lee", FullName: "Ana Lee"}

	state := Resolve("/dashboard/invoices/create", user, SidebarGroups)
	assert.Equal(t, "/dashboard/invoices/create", state.Path)
	assert.Equal(t, DefaultTitle, state.Title)
	require.Len(t, state.Groups, 2)
	assert.Equal(t, "Navigation", state.Groups[0].Title)
	assert.Equal(t, "Outils", state.Groups[1].Title)

	var active []string
	for _, g := range state.Groups {
		for _, e := range g.Entries {
			if e.Active {
				active = append(active, e.Path)
			}
		}
	}
	assert.Equal(t, []string{"/dashboard", "/dashboard/invoices"}, active)
	assert.Equal(t, "AL", state.User.Initials)
}

func TestResolve_Deterministic(t *testing.T) {
	user := &models.User{ID: "u1", FirstName: "Ana", LastName: "Lee"}
	first := Resolve("/dashboard/clients", user, SidebarGroups)

	var wg sync.WaitGroup
	results := make([]models.NavigationState, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Resolve("/dashboard/clients", user, SidebarGroups)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, first, r)
	}
}

func TestSidebarGroups_UniquePaths(t *testing.T) {
	for _, g := range SidebarGroups {
		seen := map[string]bool{}
		for _, e := range g.Entries {
			assert.NotEmpty(t, e.Title)
			assert.False(t, seen[e.Path], "duplicate path %s in group %s", e.Path, g.Title)
			seen[e.Path] = true
		}
	}
}
