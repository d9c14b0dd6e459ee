package ai

import (
	"strings"
	"unicode/utf8"
)

// MaxPhraseLength is the maximum length of user text embedded in a prompt.
const MaxPhraseLength = 200

// MaxNameLength is the maximum length of a person name embedded in a prompt.
const MaxNameLength = 50

// SanitizeForPrompt sanitizes user input before embedding it in a prompt.
// It neutralizes characters that could break prompt structure, collapses
// whitespace and truncates to maxLength.
func SanitizeForPrompt(input string, maxLength int) string {
	input = strings.ReplaceAll(input, `"`, `'`)
	input = strings.ReplaceAll(input, "`", "'")
	input = strings.ReplaceAll(input, "\x00", "")

	// Splitting on whitespace and rejoining handles newline injection and
	// collapses runs of spaces in one pass.
	input = strings.Join(strings.Fields(input), " ")

	if len(input) > maxLength {
		// Cut on a rune boundary so a multibyte Vietnamese character is
		// never split into invalid UTF-8.
		cut := maxLength
		for cut > 0 && !utf8.RuneStart(input[cut]) {
			cut--
		}
		input = strings.TrimSpace(input[:cut])
	}

	return input
}
