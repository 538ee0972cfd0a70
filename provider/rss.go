package provider

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/episan-cli/episan/internal/cache"
	"github.com/episan-cli/episan/network"
	"github.com/episan-cli/episan/source"
)

// rssSource exposes an RSS 2.0 search feed as a catalog source.
// The feed URL carries a %s slot that receives the escaped query.
type rssSource struct {
	name string
	feed string
}

func newRSSSource(name, feed string) *rssSource {
	return &rssSource{name: name, feed: feed}
}

// rssDocument mirrors the subset of RSS 2.0 the search needs.
type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title     string `xml:"title"`
	Link      string `xml:"link"`
	Enclosure struct {
		URL string `xml:"url,attr"`
	} `xml:"enclosure"`
}

func (s *rssSource) Name() string {
	return s.name
}

func (s *rssSource) ID() string {
	return s.name + " builtin"
}

func (s *rssSource) Options() []source.Option {
	return []source.Option{
		{
			Name:        "feed",
			Description: "Feed URL template, %s is replaced with the search query",
			Shape:       "string",
		},
	}
}

func (s *rssSource) Search(query string) ([]*source.Candidate, error) {
	cacheKey := cache.GenerateKey(query, s.ID())
	var cachedCandidates []*source.Candidate
	if cache.Read(cacheKey, &cachedCandidates) {
		for _, c := range cachedCandidates {
			c.Source = s
		}
		return cachedCandidates, nil
	}

	resp, err := network.Client.Get(s.searchURL(query))
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: %s", resp.Status)
	}

	var document rssDocument
	if err := xml.NewDecoder(resp.Body).Decode(&document); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	var candidates []*source.Candidate
	for _, item := range document.Channel.Items {
		if item.Title == "" {
			continue
		}

		// Prefer the enclosure when the feed carries one, it points at the payload.
		link := item.Enclosure.URL
		if link == "" {
			link = item.Link
		}
		if link == "" {
			continue
		}

		candidates = append(candidates, &source.Candidate{
			Title:  item.Title,
			Link:   link,
			Source: s,
		})
	}

	if len(candidates) > 0 {
		_ = cache.Write(cacheKey, candidates)
	}

	return candidates, nil
}

// searchURL renders the feed template with the escaped query.
func (s *rssSource) searchURL(query string) string {
	escaped := url.QueryEscape(query)
	if strings.Contains(s.feed, "%s") {
		return strings.ReplaceAll(s.feed, "%s", escaped)
	}
	return s.feed + escaped
}
