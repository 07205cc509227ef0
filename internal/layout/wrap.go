package layout

import "strings"

// Wrap breaks text into lines no wider than width using a greedy fill.
// Words wider than width are split between runes. Explicit newlines start a
// new line. Blank text yields no lines.
func Wrap(text string, width float64, measure func(string) float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			if measure(word) <= width {
				line = word
				continue
			}
			chunks := breakWord(word, width, measure)
			lines = append(lines, chunks[:len(chunks)-1]...)
			line = chunks[len(chunks)-1]
		}
		lines = append(lines, line)
	}
	return lines
}

// breakWord splits a single overlong word. Every chunk holds at least one
// rune so the loop always makes progress.
func breakWord(word string, width float64, measure func(string) float64) []string {
	var (
		chunks []string
		cur    []rune
	)
	for _, r := range word {
		next := append(cur, r)
		if len(cur) > 0 && measure(string(next)) > width {
			chunks = append(chunks, string(cur))
			cur = []rune{r}
			continue
		}
		cur = next
	}
	return append(chunks, string(cur))
}
