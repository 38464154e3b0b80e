// Package extract pulls classifiable Spanish phrases out of HTML
// documents (exported mail threads, intranet pages, chat archives).
package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Sentence length bounds: shorter fragments are navigation noise,
// longer ones are unlikely to be a single business phrase.
const (
	minSentenceLen = 10
	maxSentenceLen = 500
)

// Phrases parses HTML content and returns its visible text split into
// candidate sentences, deduplicated, in document order.
func Phrases(htmlContent string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	text := visibleText(doc)
	return dedupe(splitSentences(text)), nil
}

// visibleText collects text nodes, skipping script/style content
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// splitSentences splits text on sentence terminators. Spanish business
// text also uses line-oriented chat fragments, so a trailing fragment
// without a terminator still counts.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' {
				appendSentence(&sentences, current.String())
				current.Reset()
			}
		}
	}
	appendSentence(&sentences, current.String())

	return sentences
}

func appendSentence(sentences *[]string, raw string) {
	s := strings.TrimSpace(raw)
	s = strings.TrimRight(s, ".!?")
	if len(s) >= minSentenceLen && len(s) <= maxSentenceLen {
		*sentences = append(*sentences, s)
	}
}

func dedupe(sentences []string) []string {
	seen := make(map[string]bool, len(sentences))
	var unique []string
	for _, s := range sentences {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, s)
		}
	}
	return unique
}
