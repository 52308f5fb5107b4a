package manual

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/condordocs/internal/fetch"
)

// The Version History chapter number moved around between releases;
// these are probed in order until one is not a 404.
var versionHistoryChapters = []int{10, 9, 8}

// LinkedVersions lists the releases a manual's Version History chapter
// links to. An empty slice with nil error means no history page exists for
// this version.
func (s *Site) LinkedVersions(ctx context.Context, version string) ([]string, error) {
	version = CheckVersionString(version)
	var body []byte
	found := false
	for _, ch := range versionHistoryChapters {
		pageURL := fmt.Sprintf("%s/%s/%d_Version_History.html", s.baseURL(), version, ch)
		b, status, err := s.Client.Get(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		if status == 404 {
			continue
		}
		if status < 200 || status > 299 {
			return nil, &fetch.StatusError{URL: pageURL, Status: status}
		}
		body = b
		found = true
		break
	}
	if !found {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse version history: %w", err)
	}
	var versions []string
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := a.Text()
		if strings.HasPrefix(text, "Version") {
			versions = append(versions, strings.ReplaceAll(text, "Version ", ""))
		}
	})
	return versions, nil
}

// Exists reports whether the online manual root for a version answers 200.
func (s *Site) Exists(ctx context.Context, version string) (bool, error) {
	_, status, err := s.Client.Get(ctx, s.RootURL(version))
	if err != nil {
		return false, err
	}
	return status == 200, nil
}

// DiscoverVersions walks the Version History links starting from one
// version and returns every reachable release that still has an online
// manual, newest first. The walk is an explicit work queue with a seen set,
// so cyclic or repeated links terminate.
func (s *Site) DiscoverVersions(ctx context.Context, start string) ([]string, error) {
	queue := []string{CheckVersionString(start)}
	seen := make(map[string]struct{})
	var found []string
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		linked, err := s.LinkedVersions(ctx, v)
		if err != nil {
			return nil, err
		}
		for _, lv := range linked {
			key := CheckVersionString(lv)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			found = append(found, lv)
			queue = append(queue, key)
		}
	}

	kept := found[:0]
	for _, v := range found {
		ok, err := s.Exists(ctx, v)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, v)
		}
	}
	return SortVersions(kept), nil
}
