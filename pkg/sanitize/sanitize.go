// Package sanitize restricts macro output to plain image markup.
package sanitize

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var cssLength = regexp.MustCompile(`^\s*(auto|undefined(px)?|[0-9]+(\.[0-9]+)?(px|%|em|rem|vw|vh)?)\s*$`)

var (
	defaultOnce   sync.Once
	defaultPolicy *Policy
)

// Policy wraps a bluemonday policy allowing <img> with src, alt, title,
// class and width/height styles.
type Policy struct {
	policy *bluemonday.Policy
}

// New builds the image policy.
func New() *Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("img")
	policy.AllowAttrs("src", "alt", "title", "class").OnElements("img")
	policy.AllowStyles("width", "height").Matching(cssLength).OnElements("img")
	policy.AllowRelativeURLs(true)
	policy.AllowURLSchemes("http", "https")
	policy.AllowDataURIImages()
	policy.RequireParseableURLs(true)
	return &Policy{policy: policy}
}

// Default returns a shared Policy.
func Default() *Policy {
	defaultOnce.Do(func() {
		defaultPolicy = New()
	})
	return defaultPolicy
}

// Sanitize strips anything the policy does not allow.
func (p *Policy) Sanitize(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(p.policy.Sanitize(trimmed))
}
