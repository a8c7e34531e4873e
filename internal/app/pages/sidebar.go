package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/navigation"
)

const (
	entryClass       = "flex items-center justify-between rounded-md px-3 py-2 text-sm transition-colors hover:bg-muted"
	entryActiveClass = "bg-primary/10 text-primary font-medium hover:bg-primary/10"
	badgeClass       = "ml-auto rounded-full px-2 py-0.5 text-xs font-semibold bg-secondary text-secondary-foreground"
	groupLabelClass  = "px-2 text-xs font-semibold text-muted-foreground uppercase tracking-wider"
)

func badgeVariantClass(variant string) string {
	switch variant {
	case "destructive":
		return "bg-destructive text-destructive-foreground"
	case "outline":
		return "bg-transparent border text-foreground"
	default:
		return ""
	}
}

func navEntry(e models.ResolvedEntry) g.Node {
	class := entryClass
	if e.Active {
		class = cn(entryClass, entryActiveClass)
	}
	return html.Li(
		link(e.Path,
			html.Class(class),
			g.If(e.Active, g.Group{html.Data("active", "true"), html.Aria("current", "page")}),
			html.Div(html.Class("flex items-center gap-3"),
				icon(e.Icon, "h-4 w-4"),
				html.Span(g.Text(e.Title)),
			),
			g.If(e.Badge != "", html.Span(
				html.Class(cn(badgeClass, badgeVariantClass(e.BadgeVariant))),
				html.Data("variant", e.BadgeVariant),
				g.Text(e.Badge),
			)),
		),
	)
}

func navGroup(grp models.ResolvedGroup) g.Node {
	return html.Section(html.Class("nav-group px-1 mb-4"), html.Data("group", grp.Title),
		html.H2(html.Class(groupLabelClass), g.Text(grp.Title)),
		html.Ul(html.Class("mt-2 space-y-1"), g.Map(grp.Entries, navEntry)),
	)
}

func quickStat(s models.QuickStat) g.Node {
	return html.Div(html.Class("quick-stat flex items-center justify-between"),
		html.Div(html.Class("flex items-center gap-2"),
			icon(s.Icon, "h-3 w-3 text-muted-foreground"),
			html.Span(html.Class("stat-label text-sm text-muted-foreground"), g.Text(s.Label)),
		),
		html.Span(html.Class("stat-value text-sm font-medium"), g.Text(s.Value)),
	)
}

func utilityButton(e models.NavigationEntry) g.Node {
	return link(e.Path,
		html.Class("flex-1 inline-flex items-center justify-center rounded-md border px-3 py-1.5 text-sm"),
		icon(e.Icon, "mr-2 h-3 w-3"),
		g.Text(e.Title),
	)
}

func sidebarNode(data models.LayoutTempl) g.Node {
	user := data.Nav.User
	return html.Nav(html.ID("sidebar"), html.Class("flex h-full w-64 flex-col border-r"),
		html.Div(html.Class("p-6 flex items-center gap-3"),
			brandMark("h-10 w-10"),
			html.Div(
				html.H1(html.Class("font-bold text-lg"), g.Text(navigation.BrandName)),
				html.P(html.Class("text-sm text-muted-foreground"), g.Text(navigation.BrandTagline)),
			),
		),
		html.Div(html.Class("flex-1 px-3"),
			html.Div(html.Class("mb-6 px-2"),
				link(navigation.NewInvoicePath,
					html.Class("new-invoice inline-flex w-full items-center justify-center rounded-md bg-primary px-4 py-2 text-white"),
					icon("plus-circle", "mr-2 h-4 w-4"),
					g.Text("Nouvelle facture"),
				),
			),
			g.Map(data.Nav.Groups, navGroup),
			html.Hr(html.Class("my-4")),
			html.Section(html.ID("quick-stats"), html.Class("px-1"),
				html.H2(html.Class(groupLabelClass), g.Text("Vue d'ensemble")),
				html.Div(html.Class("space-y-3 p-2"), g.Map(data.QuickStats, quickStat)),
			),
		),
		html.Footer(html.ID("sidebar-user"), html.Class("p-4 border-t"),
			html.Div(html.Class("flex items-center gap-3"),
				avatar(user, "h-8 w-8"),
				html.Div(html.Class("flex flex-col"),
					html.Span(html.Class("user-name text-sm font-medium truncate max-w-[120px]"), g.Text(user.DisplayName)),
					html.Span(html.Class("user-email text-xs text-muted-foreground truncate max-w-[120px]"), g.Text(user.Email)),
				),
			),
			html.Div(html.Class("mt-4 flex gap-2"), g.Map(navigation.UtilityLinks, utilityButton)),
		),
	)
}

// Sidebar renders the navigation groups, quick stats and the user footer.
func Sidebar(data models.LayoutTempl) templ.Component {
	return component(func(context.Context) g.Node { return sidebarNode(data) })
}
