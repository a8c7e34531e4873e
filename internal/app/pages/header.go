package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/navigation"
)

const (
	mobileEntryClass       = "flex items-center gap-3 p-2 rounded-lg transition-colors hover:bg-muted"
	mobileEntryActiveClass = "bg-primary/10 text-primary hover:bg-primary/10"
	menuPanelClass         = "absolute right-0 mt-2 rounded-lg border bg-background shadow-lg"
)

// dropdown is a <details> menu; app.js closes open ones on outside clicks.
func dropdown(id, label, panelClass string, trigger g.Node, panel ...g.Node) g.Node {
	return g.El("details", html.ID(id), html.Class("relative"),
		g.El("summary", html.Class("list-none cursor-pointer relative"), html.Aria("label", label), trigger),
		html.Div(html.Class(panelClass), g.Group(panel)),
	)
}

func headerNode(data models.LayoutTempl) g.Node {
	return html.Header(html.Class("h-16 border-b bg-background/95 backdrop-blur"),
		html.Div(html.Class("h-full flex items-center justify-between px-4 md:px-6"),
			html.Div(html.Class("flex items-center gap-4"),
				mobileMenu(data.Nav.Mobile),
				html.A(html.Href("/dashboard"), html.Class("flex items-center gap-2"),
					brandMark("h-8 w-8"),
					html.Span(html.Class("hidden md:inline font-bold text-xl"), g.Text("Facturation")),
				),
				html.H1(html.ID("page-title"), html.Class("hidden md:block ml-4 text-lg font-semibold"), g.Text(data.Nav.Title)),
			),
			html.Div(html.Class("hidden md:flex flex-1 max-w-md mx-4"),
				html.Div(html.Class("relative w-full"),
					icon("search", "absolute left-3 top-1/2 -translate-y-1/2 h-4 w-4 text-muted-foreground"),
					html.Input(html.Type("search"), html.Name("q"), html.Placeholder("Rechercher clients, factures..."),
						html.Class("w-full rounded-md border pl-10 py-2")),
				),
			),
			html.Div(html.Class("flex items-center gap-2"),
				link(navigation.NewInvoicePath,
					html.Class("inline-flex items-center rounded-md bg-primary px-3 py-1.5 text-sm text-white"),
					icon("plus", "h-4 w-4 md:mr-2"),
					html.Span(html.Class("hidden md:inline"), g.Text("Nouvelle facture")),
				),
				notificationMenuNode(data.Notifications),
				profileMenu(data.Nav.User),
			),
		),
		html.H1(html.Class("md:hidden px-4 pb-3 text-lg font-semibold"), g.Text(data.Nav.Title)),
	)
}

// Header renders the top bar: mobile menu, page title, search, notifications
// and the profile menu.
func Header(data models.LayoutTempl) templ.Component {
	return component(func(context.Context) g.Node { return headerNode(data) })
}

func mobileEntry(e models.ResolvedEntry) g.Node {
	class := mobileEntryClass
	if e.Active {
		class = cn(mobileEntryClass, mobileEntryActiveClass)
	}
	return link(e.Path, html.Class(class),
		g.If(e.Active, html.Data("active", "true")),
		html.Span(html.Class("text-lg"), g.Text(e.Icon)),
		html.Span(g.Text(e.Title)),
	)
}

func mobileUtilityLink(e models.NavigationEntry) g.Node {
	return link(e.Path, html.Class("flex items-center p-2"),
		icon(e.Icon, "mr-2 h-4 w-4"),
		g.Text(e.Title),
	)
}

func mobileMenu(entries []models.ResolvedEntry) g.Node {
	return g.El("details", html.ID("mobile-menu"), html.Class("lg:hidden relative"),
		g.El("summary", html.Class("list-none cursor-pointer"), html.Aria("label", "Menu"), icon("menu", "h-5 w-5")),
		html.Div(html.Class("absolute left-0 top-10 w-64 rounded-lg border bg-background p-4 shadow-lg"),
			html.Div(html.Class("space-y-4"), g.Map(entries, mobileEntry)),
			html.Div(html.Class("mt-8 pt-6 border-t space-y-3"), g.Map(navigation.UtilityLinks, mobileUtilityLink)),
		),
	)
}

func notificationItem(n models.Notification) g.Node {
	class := "notification p-3 rounded hover:bg-muted"
	if n.ReadAt == nil {
		class = cn(class, "unread bg-muted/40")
	}
	return html.Li(html.Class(class),
		html.P(html.Class("text-sm font-medium"), g.Text(n.Title)),
		html.P(html.Class("text-xs text-muted-foreground"), g.Text(n.Detail)),
	)
}

func notificationMenuNode(summary models.NotificationSummary) g.Node {
	trigger := g.Group{
		icon("bell", "h-5 w-5"),
		g.If(summary.Unread > 0, html.Span(
			html.Class("notification-count absolute -top-1 -right-1 min-w-[18px] h-[18px] rounded-full bg-destructive px-1 text-[10px] text-white flex items-center justify-center"),
			g.Text(strconv.Itoa(summary.Unread)),
		)),
	}
	return dropdown("notifications", "Notifications", cn(menuPanelClass, "w-80"), html.Span(html.Class("block p-2"), trigger),
		html.P(html.Class("px-3 py-2 text-sm font-semibold"), g.Text("Notifications")),
		html.Ul(html.Class("max-h-64 overflow-y-auto p-1 divide-y"),
			g.If(len(summary.Recent) == 0,
				html.Li(html.Class("empty p-3 text-sm text-muted-foreground"), g.Text("Aucune notification")),
			),
			g.Map(summary.Recent, notificationItem),
		),
		html.Button(html.Type("button"), html.Class("w-full py-2 text-sm text-primary"),
			hx.Post("/api/notifications/read"), hx.Target("#notifications"), hx.Swap("outerHTML"),
			g.Text("Tout marquer comme lu"),
		),
		html.A(html.Href("/dashboard/notifications"), html.Class("block w-full py-2 text-center text-sm text-primary"),
			g.Text("Voir toutes les notifications"),
		),
	)
}

// NotificationMenu is also returned on its own as an htmx fragment.
func NotificationMenu(summary models.NotificationSummary) templ.Component {
	return component(func(context.Context) g.Node { return notificationMenuNode(summary) })
}

func profileMenu(user models.UserSummary) g.Node {
	return dropdown("profile-menu", "Profil", cn(menuPanelClass, "w-56"), avatar(user, "h-9 w-9"),
		html.Div(html.Class("flex flex-col space-y-1 px-3 py-2"),
			html.P(html.Class("user-name text-sm font-medium leading-none"), g.Text(user.DisplayName)),
			html.P(html.Class("user-email text-xs leading-none text-muted-foreground"), g.Text(user.Email)),
		),
		html.Hr(),
		link(navigation.SettingsPath, html.Class("block px-3 py-2 text-sm"), g.Text("Paramètres")),
		link(navigation.HelpPath, html.Class("block px-3 py-2 text-sm"), g.Text("Aide & Support")),
		html.Hr(),
		g.El("form", html.Action("/sign-out"), html.Method("post"),
			html.Button(html.Type("submit"), html.Class("sign-out w-full px-3 py-2 text-left text-sm text-destructive"),
				icon("log-out", "mr-2 inline h-4 w-4"),
				g.Text("Déconnexion"),
			),
		),
	)
}
