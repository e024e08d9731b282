package scrape

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Client fetches register pages and their PDF attachments, optionally
// through a proxy.
type Client struct {
	http *http.Client
}

// NewClient creates a client. An empty proxy uses the standard proxy
// environment variables.
func NewClient(proxy string) (*Client, error) {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if proxy != "" {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy: %w", err)
		}
		transport.Proxy = http.ProxyURL(u)
	}

	return &Client{
		http: &http.Client{
			Timeout:   60 * time.Second,
			Transport: transport,
		},
	}, nil
}

// PDFLinks fetches the register index page and returns the absolute URLs
// of its PDF attachments, deduplicated, in document order. Council pages
// are not reliably UTF-8, so the body is decoded per its declared
// charset before parsing.
func (c *Client) PDFLinks(ctx context.Context, pageURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %s", pageURL, resp.Status)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", pageURL, err)
	}

	doc, err := html.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	base := resp.Request.URL
	return ExtractPDFLinks(doc, base), nil
}

// ExtractPDFLinks walks a parsed document and resolves every anchor that
// points at a PDF against the base URL.
func ExtractPDFLinks(doc *html.Node, base *url.URL) []string {
	var links []string
	seen := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if link, ok := resolvePDFLink(base, attr.Val); ok && !seen[link] {
					seen[link] = true
					links = append(links, link)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return links
}

func resolvePDFLink(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	if !strings.HasSuffix(strings.ToLower(resolved.Path), ".pdf") {
		return "", false
	}
	return resolved.String(), true
}

// Sample returns up to n URLs drawn randomly without replacement. The
// register carries years of PDFs; each run works a random handful so
// the whole register is covered over time without hammering the site.
func Sample(urls []string, n int, rng *rand.Rand) []string {
	if n >= len(urls) {
		out := make([]string, len(urls))
		copy(out, urls)
		return out
	}

	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(urls))[:n] {
		out = append(out, urls[i])
	}
	return out
}

// Fetch downloads the resource at url.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %s", rawURL, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
