// Best-effort Marjane product lookup. The storefront may block scraping or
// render cards client-side, so callers must treat failures as a cue to fall
// back to manual price capture.
package marjane

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.marjane.ma"

const maxResults = 12

type Product struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// SearchURL returns the storefront search page for a query. Even when
// scraping fails the URL is useful for opening the page manually.
func (c *Client) SearchURL(query string) string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return fmt.Sprintf("%s/search?q=%s", base, url.QueryEscape(strings.TrimSpace(query)))
}

// Anchors whose href mentions /product, with their inner text. The markup is
// not stable so this stays deliberately loose.
var productAnchorPattern = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]*/product[^"]*)"[^>]*>(.*?)</a>`)

var tagPattern = regexp.MustCompile(`(?s)<[^>]*>`)

var spacePattern = regexp.MustCompile(`\s+`)

func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("create marjane request: %w", err)
	}
	req.Header.Set("User-Agent", "sahha/1.0 (+https://github.com/zakariamou/sahha)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute marjane request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("read marjane response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("marjane request failed with status %d", resp.StatusCode)
	}

	matches := productAnchorPattern.FindAllStringSubmatch(string(body), maxResults)
	out := make([]Product, 0, len(matches))
	for _, m := range matches {
		name := spacePattern.ReplaceAllString(strings.TrimSpace(tagPattern.ReplaceAllString(m[2], " ")), " ")
		if len(name) < 3 {
			continue
		}
		href := m[1]
		if !strings.HasPrefix(href, "http") {
			href = base + href
		}
		out = append(out, Product{Name: name, URL: href})
	}
	return out, nil
}
