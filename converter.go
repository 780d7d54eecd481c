package newscrawl

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment taken from pageURL into Markdown.
	// Relative links are resolved against pageURL when it is non-empty.
	Convert(pageURL string, html string) (string, error)
}
