package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
	"github.com/FACorreiaa/facturation-pro/internal/app/navigation"
)

func head(title string) g.Node {
	return html.Head(
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
		g.El("title", g.Text(title)),
		html.Link(html.Rel("stylesheet"), html.Href("/assets/css/app.css")),
		html.Script(html.Src("https://unpkg.com/htmx.org@2.0.4"), html.Defer()),
		html.Script(html.Src("https://unpkg.com/lucide@latest"), html.Defer()),
		html.Script(html.Src("/assets/js/app.js"), html.Defer()),
	)
}

func documentTitle(page string) string {
	if page == "" {
		return navigation.BrandName
	}
	return page + " - " + navigation.BrandName
}

// LayoutPage renders the authenticated shell around data.Content.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return component(func(ctx context.Context) g.Node {
		title := data.Title
		if title == "" {
			title = data.Nav.Title
		}
		return html.Doctype(html.HTML(html.Lang("fr"),
			head(documentTitle(title)),
			html.Body(html.Class("min-h-screen bg-background"), hx.Boost("true"),
				html.Div(html.Class("sticky top-0 z-50"), headerNode(data)),
				html.Div(html.Class("flex"),
					html.Aside(html.Class("hidden lg:block"),
						html.Div(html.Class("sticky top-16 h-[calc(100vh-4rem)] overflow-y-auto border-r"),
							sidebarNode(data),
						),
					),
					html.Main(html.ID("content"), html.Class("flex-1 p-4 md:p-6 lg:p-8"),
						html.Div(html.Class("max-w-7xl mx-auto w-full"), embed(ctx, data.Content)),
					),
				),
			),
		))
	})
}

// PublicLayout is used by pages outside the dashboard: landing, sign-in, 404.
func PublicLayout(title string, content templ.Component) templ.Component {
	return component(func(ctx context.Context) g.Node {
		return html.Doctype(html.HTML(html.Lang("fr"),
			head(documentTitle(title)),
			html.Body(html.Class("min-h-screen bg-background"),
				html.Header(html.Class("h-16 border-b flex items-center px-6"),
					html.A(html.Href("/"), html.Class("flex items-center gap-2"),
						brandMark("h-8 w-8"),
						html.Span(html.Class("font-bold text-xl"), g.Text(navigation.BrandName)),
					),
				),
				html.Main(html.ID("content"), html.Class("mx-auto max-w-5xl p-6"), embed(ctx, content)),
			),
		))
	})
}

func brandMark(size string) g.Node {
	return html.Div(html.Class(cn("rounded-lg bg-primary flex items-center justify-center", size)),
		html.Span(html.Class("font-bold text-white"), g.Text("F")),
	)
}

func avatar(user models.UserSummary, size string) g.Node {
	var inner g.Node
	if user.AvatarURL != "" {
		inner = html.Img(
			html.Src(string(templ.URL(user.AvatarURL))),
			html.Alt(user.DisplayName),
			html.Class("aspect-square h-full w-full"),
		)
	} else {
		inner = html.Span(html.Class("avatar-fallback text-sm font-medium"), g.Text(user.Initials))
	}
	return html.Span(html.Class(cn("relative flex shrink-0 overflow-hidden rounded-full bg-muted items-center justify-center", size)), inner)
}
