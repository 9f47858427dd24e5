package cards

import (
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[^\w\s-]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// SanitizeTitle turns a card title into a folder name made of word
// characters, hyphens and underscores. It never returns "".
func SanitizeTitle(title string) string {
	s := unsafeChars.ReplaceAllString(title, "")
	s = spaceRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return OutputDirName
	}
	return s
}
