package navigation

import "github.com/FACorreiaa/facturation-pro/internal/app/models"

const (
	DefaultTitle    = "Tableau de bord"
	AnonymousName   = "Utilisateur"
	FallbackInitial = "U"

	BrandName    = "Facturation Pro"
	BrandTagline = "Gestion simplifiée"

	NewInvoicePath = "/dashboard/invoices/create"
	SettingsPath   = "/dashboard/settings"
	HelpPath       = "/dashboard/help"
)

// pageTitles is intentionally flat: sub-routes fall back to DefaultTitle.
var pageTitles = map[string]string{
	"/dashboard":          "Tableau de bord",
	"/dashboard/clients":  "Clients",
	"/dashboard/invoices": "Factures",
	"/dashboard/payments": "Paiements",
	"/dashboard/settings": "Paramètres",
	"/dashboard/reports":  "Rapports",
}

var SidebarGroups = []models.NavigationGroup{
	{
		Title: "Navigation",
		Entries: []models.NavigationEntry{
			{Title: "Dashboard", Path: "/dashboard", Icon: "home"},
			{Title: "Clients", Path: "/dashboard/clients", Icon: "users", Badge: "24", BadgeVariant: "secondary"},
			{Title: "Factures", Path: "/dashboard/invoices", Icon: "file-text", Badge: "3", BadgeVariant: "destructive"},
			{Title: "Paiements", Path: "/dashboard/payments", Icon: "credit-card"},
			{Title: "Rapports", Path: "/dashboard/reports", Icon: "bar-chart-3"},
			{Title: "Calendrier", Path: "/dashboard/calendar", Icon: "calendar"},
		},
	},
	{
		Title: "Outils",
		Entries: []models.NavigationEntry{
			{Title: "Téléchargements", Path: "/dashboard/exports", Icon: "download"},
			{Title: "Acomptes", Path: "/dashboard/advances", Icon: "dollar-sign"},
		},
	},
}

var MobileEntries = []models.NavigationEntry{
	{Title: "Dashboard", Path: "/dashboard", Icon: "📊"},
	{Title: "Clients", Path: "/dashboard/clients", Icon: "👥"},
	{Title: "Factures", Path: "/dashboard/invoices", Icon: "🧾"},
	{Title: "Paiements", Path: "/dashboard/payments", Icon: "💳"},
	{Title: "Rapports", Path: "/dashboard/reports", Icon: "📈"},
}

// UtilityLinks are shown under the sidebar and in the profile dropdown.
var UtilityLinks = []models.NavigationEntry{
	{Title: "Paramètres", Path: SettingsPath, Icon: "settings"},
	{Title: "Aide", Path: HelpPath, Icon: "help-circle"},
}
