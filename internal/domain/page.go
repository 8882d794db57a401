package domain

// PageContent is the body retrieved for a URL, either raw HTML from a direct fetch or Markdown
// from a scraping service.
type PageContent struct {
	URL        string
	Body       string
	IsMarkdown bool
	Fetcher    string
}
