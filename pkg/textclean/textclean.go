// Package textclean provides pure functions that clean text coming from
// import files: markup removal for attribute texts and normalization of
// contributor names.
package textclean

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	breakTagRe   = regexp.MustCompile(`(?i)<\s*/?\s*(p|br)(\s[^>]*)?/?\s*>`)
	parenRe      = regexp.MustCompile(`\s*\([^()]*\)`)
	spacesRe     = regexp.MustCompile(`\s+`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// StripHTML unescapes HTML entities, converts paragraph and line-break
// tags to newlines, removes all other markup, and trims the result.
func StripHTML(s string) string {
	s = html.UnescapeString(s)
	s = breakTagRe.ReplaceAllString(s, "\n")

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				// the tokenizer gives up on broken input, keep the rest as is
				sb.Write(z.Raw())
			}
			break
		}
		if tt == html.TextToken {
			sb.Write(z.Raw())
		}
	}
	res := newlineRunRe.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimSpace(res)
}

// CleanName normalizes a contributor name: Unicode NFC form, parenthetical
// parts such as "(ed.)" removed, runs of whitespace collapsed to one space.
// CleanName(CleanName(s)) == CleanName(s).
func CleanName(s string) string {
	s = norm.NFC.String(s)
	for parenRe.MatchString(s) {
		s = parenRe.ReplaceAllString(s, "")
	}
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
