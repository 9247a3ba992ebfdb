package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ============================================================================
// Web Tool Implementations
// ============================================================================

// maxPageTextLength bounds how much page text goes back to the model
const maxPageTextLength = 4000

func (e *Executor) executeFetchWebpage(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	rawURL := argString(args, "url")

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &ToolResult{Success: false, Error: "url must be a valid http or https URL"}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return &ToolResult{Success: false, Error: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; BrrrBot/1.0)")
	req.Header.Set("Accept", "text/html")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return errorResult(ToolFetchWebpage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &ToolResult{Success: false, Error: fmt.Sprintf("page returned status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return &ToolResult{Success: false, Error: fmt.Sprintf("failed to parse page: %v", err)}
	}

	doc.Find("script, style, noscript, nav, footer, iframe").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	text := extractPageText(doc)
	text = truncate(text, maxPageTextLength)

	return &ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"url":   rawURL,
			"title": title,
			"text":  text,
		},
		Message: fmt.Sprintf("Fetched %s (%d chars)", rawURL, len(text)),
	}
}

// extractPageText collapses the document body into whitespace-normalized
// paragraphs
func extractPageText(doc *goquery.Document) string {
	var parts []string
	doc.Find("h1, h2, h3, p, li, td, pre").Each(func(_ int, sel *goquery.Selection) {
		t := strings.TrimSpace(sel.Text())
		if t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	}
	return strings.Join(parts, "\n")
}
