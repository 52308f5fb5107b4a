package manual

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// IndexEntry is one command discovered on the command reference page:
// the anchor text is the command name, the href resolves to its manual
// page URL.
type IndexEntry struct {
	Name string
	URL  string
}

// CommandList scrapes the command index. The reference chapter lists every
// command as a link inside the page's first <ul>; each entry's href is
// resolved against the index URL so callers always get absolute page URLs.
func (s *Site) CommandList(ctx context.Context, indexURL string) ([]IndexEntry, error) {
	body, err := s.Client.GetOK(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("parse index url: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse command index: %w", err)
	}
	list := doc.Find("ul").First()
	if list.Length() == 0 {
		return nil, fmt.Errorf("no command list on index page %s", indexURL)
	}

	// Only the list's direct children are commands; sub-lists inside an
	// entry belong to that entry.
	var entries []IndexEntry
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("a").First()
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		entries = append(entries, IndexEntry{Name: name, URL: base.ResolveReference(ref).String()})
	})
	return entries, nil
}
