package view

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...string) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		node.Attr = append(node.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return node
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func elementWithText(a atom.Atom, s string, attrs ...string) *html.Node {
	node := element(a, attrs...)
	node.AppendChild(text(s))
	return node
}

func clearChildren(node *html.Node) {
	for c := node.FirstChild; c != nil; c = node.FirstChild {
		node.RemoveChild(c)
	}
}

func GetAttr(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
