package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/oneevent/oneevent-api/internal/domain"
)

const (
	// MarkdownBudget is the maximum number of characters kept from scraped Markdown.
	MarkdownBudget = 12000
	// HTMLBudget is the maximum number of characters kept from a directly fetched page.
	HTMLBudget = 8000
	// MinContentLength is the shortest cleaned text worth sending to the language model.
	MinContentLength = 100
)

var blankLineRun = regexp.MustCompile(`\n{3,}`)

// Clean reduces fetched page content to bounded plain text for a prompt.
// Results shorter than MinContentLength fail with domain.ErrInsufficientContent.
func Clean(raw string, isMarkdown bool) (string, error) {
	var cleaned string
	if isMarkdown {
		cleaned = CleanMarkdown(raw)
	} else {
		var err error
		cleaned, err = CleanHTML(raw)
		if err != nil {
			return "", err
		}
	}

	if length := len([]rune(cleaned)); length < MinContentLength {
		return "", fmt.Errorf("%w: %d characters after cleaning, need at least %d",
			domain.ErrInsufficientContent, length, MinContentLength)
	}
	return cleaned, nil
}

// CleanMarkdown collapses runs of blank lines and truncates to MarkdownBudget.
func CleanMarkdown(raw string) string {
	cleaned := strings.ReplaceAll(raw, "\r\n", "\n")
	cleaned = blankLineRun.ReplaceAllString(cleaned, "\n\n")
	return truncate(strings.TrimSpace(cleaned), MarkdownBudget)
}

// CleanHTML drops script and style blocks, keeps the article (or main) element when present and
// returns its text with entities decoded and whitespace collapsed, truncated to HTMLBudget.
func CleanHTML(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style").Remove()

	selection := doc.Find("article").First()
	if selection.Length() == 0 {
		selection = doc.Find("main").First()
	}
	if selection.Length() == 0 {
		selection = doc.Selection
	}

	var b strings.Builder
	for _, node := range selection.Nodes {
		writeText(&b, node)
	}

	return truncate(strings.Join(strings.Fields(b.String()), " "), HTMLBudget), nil
}

// writeText appends the text of n, separating element boundaries with a space so adjacent
// blocks do not run together.
func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		b.WriteByte(' ')
		defer b.WriteByte(' ')
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeText(b, child)
	}
}

func truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return strings.TrimSpace(string(runes[:budget]))
}
