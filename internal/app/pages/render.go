package pages

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// cn merges tailwind classes, later classes winning over conflicting earlier ones.
func cn(classes ...string) string {
	return twmerge.Merge(classes...)
}

// component exposes a node tree as a templ.Component so handlers render
// pages the same way regardless of how they were built.
func component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// embed renders a templ.Component inside a node tree.
func embed(ctx context.Context, c templ.Component) g.Node {
	if c == nil {
		return nil
	}
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

func icon(name, class string) g.Node {
	return g.El("i", html.Data("lucide", name), html.Class(class))
}

// link sanitises the target the same way templ does for href attributes.
func link(path string, children ...g.Node) g.Node {
	return html.A(html.Href(string(templ.URL(path))), g.Group(children))
}
