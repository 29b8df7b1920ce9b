package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	MaxDescriptionLength = 3000
	MaxTitleLength       = 255
)

// CleanDescription converts an HTML description to plain text and truncates it.
func CleanDescription(description string) string {
	text := description
	if strings.Contains(description, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(description)); err == nil {
			doc.Find("script, style").Remove()
			doc.Find("br, p, li, div, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
				s.AppendHtml("\n")
			})
			text = doc.Text()
		}
	}
	return Truncate(collapseSpaces(text), MaxDescriptionLength)
}

// Truncate cuts str to at most limit runes.
func Truncate(str string, limit int) string {
	if utf8.RuneCountInString(str) <= limit {
		return str
	}
	runes := []rune(str)
	return string(runes[:limit])
}

func collapseSpaces(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
