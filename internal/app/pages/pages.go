package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/FACorreiaa/facturation-pro/internal/app/navigation"
)

// SectionPage is the placeholder body for dashboard sections whose business
// screens live outside this service.
func SectionPage(title, path string) templ.Component {
	return component(func(context.Context) g.Node {
		return html.Section(html.Class("section rounded-lg border p-8"), html.Data("path", path),
			html.H2(html.Class("text-2xl font-semibold"), g.Text(title)),
			html.P(html.Class("mt-2 text-muted-foreground"), g.Text("Aucun élément à afficher pour le moment.")),
		)
	})
}

func LandingPage() templ.Component {
	return component(func(context.Context) g.Node {
		return g.Group{
			html.Section(html.Class("hero py-24 text-center"),
				html.H1(html.Class("text-4xl font-bold"), g.Text("La facturation, simplement.")),
				html.P(html.Class("mt-4 text-lg text-muted-foreground"), g.Text("Clients, factures, paiements et rapports au même endroit.")),
				html.Div(html.Class("mt-8 flex justify-center gap-4"),
					html.A(html.Href("/sign-in"), html.Class("rounded-md bg-primary px-6 py-3 text-white"), g.Text("Se connecter")),
					html.A(html.Href("/sign-up"), html.Class("rounded-md border px-6 py-3"), g.Text("Créer un compte")),
				),
			),
			html.Footer(html.Class("border-t py-8 text-center text-sm text-muted-foreground"), g.Text("© "+navigation.BrandName)),
		}
	})
}

func NotFoundPage() templ.Component {
	return component(func(context.Context) g.Node {
		return html.Section(html.Class("not-found py-24 text-center"),
			html.H1(html.Class("text-4xl font-bold"), g.Text("404")),
			html.P(html.Class("mt-4 text-muted-foreground"), g.Text("Cette page n'existe pas.")),
			html.A(html.Href("/dashboard"), html.Class("mt-6 inline-block text-primary"), g.Text("Retour au tableau de bord")),
		)
	})
}

func flashBanner(messages []string) g.Node {
	return g.Map(messages, func(m string) g.Node {
		return html.Div(html.Class("flash mb-4 rounded-md border border-destructive px-3 py-2 text-sm text-destructive"), html.Role("alert"),
			g.Text(m),
		)
	})
}

const inputClass = "mt-1 block w-full rounded-md border px-3 py-2"

func field(label, name, kind string, required bool) g.Node {
	return g.El("label", html.Class("block text-sm font-medium"),
		g.Text(label),
		html.Input(html.Type(kind), html.Name(name), html.Class(inputClass), g.If(required, html.Required())),
	)
}

func authForm(id, action, submit string, fields ...g.Node) g.Node {
	return g.El("form", html.ID(id), html.Action(action), html.Method("post"), html.Class("space-y-4"),
		g.Group(fields),
		html.Button(html.Type("submit"), html.Class("w-full rounded-md bg-primary py-2 text-white"), g.Text(submit)),
	)
}

func SignInPage(flashes []string) templ.Component {
	return component(func(context.Context) g.Node {
		return html.Section(html.Class("auth mx-auto max-w-sm py-12"),
			html.H1(html.Class("text-2xl font-bold mb-6"), g.Text("Connexion")),
			flashBanner(flashes),
			authForm("sign-in-form", "/sign-in", "Se connecter",
				field("Email", "email", "email", true),
				field("Mot de passe", "password", "password", true),
			),
			html.P(html.Class("mt-4 text-sm"),
				html.A(html.Href("/sign-up"), html.Class("text-primary"), g.Text("Pas encore de compte ? Inscription")),
			),
		)
	})
}

func SignUpPage(flashes []string) templ.Component {
	return component(func(context.Context) g.Node {
		return html.Section(html.Class("auth mx-auto max-w-sm py-12"),
			html.H1(html.Class("text-2xl font-bold mb-6"), g.Text("Inscription")),
			flashBanner(flashes),
			authForm("sign-up-form", "/sign-up", "Créer mon compte",
				field("Prénom", "first_name", "text", true),
				field("Nom", "last_name", "text", false),
				field("Email", "email", "email", true),
				field("Mot de passe", "password", "password", true),
			),
		)
	})
}
