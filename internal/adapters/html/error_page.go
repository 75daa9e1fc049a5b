package html

import (
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage renders the 500 page. The message is only shown in dev mode.
func ErrorPage(w io.Writer, message string, isDev bool) error {
	page := g.Group([]g.Node{
		g.Raw("<!doctype html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text("Error")),
				StyleEl(g.Raw(`body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
h1 { color: #e74c3c; }
pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }`)),
			),
			Body(
				H1(g.Text("Internal Server Error")),
				g.If(isDev, Pre(g.Text(message))),
				g.If(!isDev, P(g.Text("An error occurred while processing your request."))),
			),
		),
	})
	return page.Render(w)
}
