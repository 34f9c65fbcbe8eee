package store

import "github.com/microcosm-cc/bluemonday"

// Sanitizer neutralizes executable markup in user content while keeping
// the plain text. Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Clean implements engine.Sanitizer.
func (s *Sanitizer) Clean(raw string) string {
	return s.policy.Sanitize(raw)
}
