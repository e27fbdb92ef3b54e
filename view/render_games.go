package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/arelate/gamesort/data"
	"github.com/boggydigital/nod"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"strings"
)

const (
	ImageContainerId = "imageContainer"

	GameContainerClass = "game-container"
	GameImageClass     = "game-image"
	BrokenImageClass   = "broken-img"
	LiveLinkClass      = "live-link"
	RepoLinkClass      = "repo-link"

	UntitledTitle    = "Untitled"
	UnknownDeveloper = "Unknown"
	DeveloperPrefix  = "Developer: "
	DefaultImageAlt  = "Game"
	LiveAppTitle     = "Live App"
	RepoTitle        = "GitHub Repo"

	imageStyle     = "width: 300px; height: auto"
	externalTarget = "_blank"
	externalRel    = "noopener noreferrer"
)

// RenderGames replaces container children with a block per game record.
// A record that fails to render is reported and skipped, the rest are
// rendered regardless. The returned error joins all record errors.
func RenderGames(container *html.Node, games []data.GameRecord, placeholder string) error {

	clearChildren(container)

	var errs []error

	for i, gr := range games {
		block, err := isolatedGameBlock(gr, placeholder)
		if err != nil {
			errs = append(errs, nod.Error(fmt.Errorf("rendering game %d: %w", i, err)))
			continue
		}
		container.AppendChild(block)
	}

	return errors.Join(errs...)
}

// gameBlock builds a single record block, replaceable in tests.
var gameBlock = renderGame

func isolatedGameBlock(gr data.GameRecord, placeholder string) (block *html.Node, err error) {

	defer func() {
		if r := recover(); r != nil {
			block, err = nil, fmt.Errorf("%v", r)
		}
	}()

	return gameBlock(gr, placeholder), nil
}

func renderGame(gr data.GameRecord, placeholder string) *html.Node {

	block := element(atom.Div, "class", GameContainerClass)

	appName, hasAppName := gr.GetString(data.AppNameProperty)

	title := UntitledTitle
	if hasAppName {
		title = appName
	}
	block.AppendChild(elementWithText(atom.H3, title))

	block.AppendChild(elementWithText(atom.P, DeveloperPrefix+gr.StringOr(data.DevNameProperty, UnknownDeveloper)))

	alt := DefaultImageAlt
	if hasAppName {
		alt = appName
	}
	block.AppendChild(element(atom.Img,
		"src", data.ImageSrc(gr, placeholder),
		"alt", alt+" Image",
		"class", GameImageClass,
		"style", imageStyle,
		"onerror", imageErrorHandler(placeholder)))

	if app, ok := gr.GetString(data.AppProperty); ok {
		appendExternalLink(block, app, LiveAppTitle, LiveLinkClass+" me-2")
	}

	if repo, ok := gr.GetString(data.RepoProperty); ok {
		appendExternalLink(block, repo, RepoTitle, RepoLinkClass)
	}

	return block
}

// imageErrorHandler disarms itself before swapping to the placeholder, so a
// failing placeholder can't trigger it again.
func imageErrorHandler(placeholder string) string {
	quoted, _ := json.Marshal(placeholder)
	return "this.onerror=null;this.src=" + string(quoted) + ";this.classList.add('" + BrokenImageClass + "');"
}

// appendExternalLink adds a link that opens in a new browsing context. Links
// that would run script are reported and left out, the rest of the block
// is kept.
func appendExternalLink(block *html.Node, href, title, class string) {

	href = strings.TrimSpace(href)

	if IsScriptLink(href) {
		nod.Error(errors.New("skipping script link: " + href))
		return
	}

	block.AppendChild(elementWithText(atom.A, title,
		"href", href,
		"target", externalTarget,
		"rel", externalRel,
		"class", class))
}

var scriptSchemes = []string{"javascript:", "vbscript:", "data:"}

// IsScriptLink reports links with script capable schemes. Browsers ignore
// tabs and newlines inside the scheme, so those are removed before matching.
func IsScriptLink(href string) bool {
	normalized := strings.ToLower(strings.NewReplacer("\t", "", "\n", "", "\r", "").Replace(strings.TrimSpace(href)))
	for _, scheme := range scriptSchemes {
		if strings.HasPrefix(normalized, scheme) {
			return true
		}
	}
	return false
}
