// internal/github/username.go
package github

import (
	"regexp"
	"strings"
)

var profileURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com/([^/]+)/?$`), // https://github.com/username
	regexp.MustCompile(`github\.com/([^/]+)/.*`), // https://github.com/username/anything
}

// NormalizeUsername extracts a bare lowercase login from a profile URL, an @handle or a plain handle.
// The result is not validated; an invalid login surfaces as not found at fetch time.
func NormalizeUsername(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, p := range profileURLPatterns {
		if m := p.FindStringSubmatch(s); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(s, "@", ""))
}
