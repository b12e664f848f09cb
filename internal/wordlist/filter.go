package wordlist

import "strings"

// IsValidWord reports whether word is non-empty and made only of ASCII letters.
func IsValidWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

// Filter keeps the lines that are valid words, preserving their order.
func Filter(lines []string) []string {
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsValidWord(line) {
			words = append(words, line)
		}
	}
	return words
}

// SplitLines splits text on newlines. A trailing carriage return is dropped
// from each line so CRLF files behave like LF files.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
