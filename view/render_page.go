package view

import (
	"github.com/arelate/gamesort/data"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"io"
)

const (
	DefaultPageTitle = "Game Sort"

	ControlsClass = "sort-controls"

	ByOrderClass     = "by-order"
	ByNameClass      = "by-name"
	ByDeveloperClass = "by-developer"
)

// ControlHrefFunc returns the link a sort control points to, an empty
// criterion stands for the baseline order.
type ControlHrefFunc func(criterion string) string

type PageOptions struct {
	Title       string
	Stylesheet  string
	Placeholder string
	ControlHref ControlHrefFunc
}

type sortControl struct {
	class     string
	title     string
	criterion string
}

var sortControls = []sortControl{
	{class: ByOrderClass, title: "Order", criterion: ""},
	{class: ByNameClass, title: "Name", criterion: data.SortByName},
	{class: ByDeveloperClass, title: "Developer", criterion: data.SortByDeveloper},
}

// RenderPage writes a complete HTML document with sort controls and the
// games rendered into the image container. Records that fail to render are
// reported by RenderGames and left out of the page.
func RenderPage(w io.Writer, games []data.GameRecord, opts *PageOptions) error {

	if opts == nil {
		opts = &PageOptions{}
	}

	title := opts.Title
	if title == "" {
		title = DefaultPageTitle
	}

	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = data.DefaultPlaceholderImage
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlNode := element(atom.Html, "lang", "en")
	doc.AppendChild(htmlNode)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	head.AppendChild(element(atom.Meta, "name", "viewport", "content", "width=device-width, initial-scale=1"))
	head.AppendChild(elementWithText(atom.Title, title))
	if opts.Stylesheet != "" {
		head.AppendChild(element(atom.Link, "rel", "stylesheet", "href", opts.Stylesheet))
	}
	htmlNode.AppendChild(head)

	body := element(atom.Body)
	htmlNode.AppendChild(body)

	body.AppendChild(elementWithText(atom.H1, title))
	if opts.ControlHref != nil {
		body.AppendChild(renderControls(opts.ControlHref))
	}

	container := element(atom.Div, "id", ImageContainerId)
	body.AppendChild(container)

	_ = RenderGames(container, games, placeholder)

	return html.Render(w, doc)
}

func renderControls(controlHref ControlHrefFunc) *html.Node {
	nav := element(atom.Nav, "class", ControlsClass)
	for _, sc := range sortControls {
		nav.AppendChild(elementWithText(atom.A, sc.title,
			"class", sc.class,
			"href", controlHref(sc.criterion)))
	}
	return nav
}
