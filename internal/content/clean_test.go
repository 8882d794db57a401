package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneevent/oneevent-api/internal/domain"
)

func TestCleanHTML(t *testing.T) {
	t.Run("script_removed_from_article", func(t *testing.T) {
		got, err := CleanHTML(`<article>Hello <script>evil()</script>World</article>`)

		require.NoError(t, err)
		assert.Contains(t, got, "Hello")
		assert.Contains(t, got, "World")
		assert.NotContains(t, got, "evil")
	})

	t.Run("prefers_article_over_page_chrome", func(t *testing.T) {
		page := `<html><head><style>body{color:red}</style></head><body>
			<nav>Menu</nav><main><article><h1>Title</h1><p>Body text</p></article></main>
			<footer>Copyright</footer></body></html>`

		got, err := CleanHTML(page)

		require.NoError(t, err)
		assert.Equal(t, "Title Body text", got)
	})

	t.Run("falls_back_to_main", func(t *testing.T) {
		got, err := CleanHTML(`<body><nav>Menu</nav><main><p>Only this</p></main></body>`)

		require.NoError(t, err)
		assert.Equal(t, "Only this", got)
	})

	t.Run("falls_back_to_whole_document", func(t *testing.T) {
		got, err := CleanHTML(`<body><div>One</div><div>Two</div></body>`)

		require.NoError(t, err)
		assert.Equal(t, "One Two", got)
	})

	t.Run("entities_decoded_and_whitespace_collapsed", func(t *testing.T) {
		got, err := CleanHTML("<p>Fish&nbsp;&amp;\n\n chips &lt;3 &quot;yum&quot; it&#39;s</p>")

		require.NoError(t, err)
		assert.Equal(t, `Fish & chips <3 "yum" it's`, got)
	})

	t.Run("truncated_to_budget", func(t *testing.T) {
		got, err := CleanHTML("<p>" + strings.Repeat("é", HTMLBudget+50) + "</p>")

		require.NoError(t, err)
		assert.Equal(t, HTMLBudget, len([]rune(got)))
	})
}

func TestCleanMarkdown(t *testing.T) {
	got := CleanMarkdown("\n# Title\n\n\n\nPara one\n\n\nPara two\n\n")
	assert.Equal(t, "# Title\n\nPara one\n\nPara two", got)

	long := CleanMarkdown(strings.Repeat("a", MarkdownBudget+1))
	assert.Len(t, long, MarkdownBudget)
}

func TestClean(t *testing.T) {
	t.Run("insufficient_content", func(t *testing.T) {
		_, err := Clean("<article>Too short</article>", false)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInsufficientContent))
	})

	t.Run("exactly_minimum_length_is_enough", func(t *testing.T) {
		got, err := Clean(strings.Repeat("x", MinContentLength), true)

		require.NoError(t, err)
		assert.Len(t, got, MinContentLength)
	})

	t.Run("markdown_passes_through", func(t *testing.T) {
		body := "# Heading\n\n" + strings.Repeat("word ", 40)

		got, err := Clean(body, true)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "# Heading"))
	})
}
