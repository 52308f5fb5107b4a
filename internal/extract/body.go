package extract

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoBody is returned when a fetched document has no <body> element.
// Callers must treat this as a hard failure for the page rather than
// extracting from an empty string.
var ErrNoBody = errors.New("document has no body element")

// BodyText parses raw HTML and returns the concatenated text content of the
// <body> subtree, text nodes in document order with tags stripped.
func BodyText(raw []byte) (string, error) {
	node, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	// The HTML5 parse algorithm synthesizes an empty <body> for head-only
	// and empty documents, so presence of the node alone proves nothing.
	body := findFirst(node, "body")
	if body == nil || !hasContent(body) {
		return "", ErrNoBody
	}
	var b strings.Builder
	collectText(&b, body)
	return b.String(), nil
}

// hasContent reports whether a body subtree carries any element or
// non-whitespace text child.
func hasContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
	}
	return false
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
