// Package intent maps free-form chat messages to canned responses via
// an ordered rule table. Classification is a total function: every
// input yields exactly one response and no error.
package intent

import "strings"

// Rule pairs a set of trigger keywords with the response returned when
// any of them appears in a message. Rules are evaluated in declared
// order; the table is configuration, fixed after construction.
type Rule struct {
	Terms    []string `yaml:"terms"`
	Response string   `yaml:"response"`
}

// Router selects the first matching rule for a message.
type Router struct {
	rules    []Rule
	fallback string
}

// NewRouter creates a Router over the given rule table. Terms are
// lowercased once here so Classify only lowercases the message.
// Nil rules or an empty fallback fall back to the built-in table.
func NewRouter(rules []Rule, fallback string) *Router {
	if rules == nil {
		rules = DefaultRules()
	}
	if fallback == "" {
		fallback = DefaultFallback
	}

	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		terms := make([]string, len(r.Terms))
		for j, t := range r.Terms {
			terms[j] = strings.ToLower(t)
		}
		normalized[i] = Rule{Terms: terms, Response: r.Response}
	}

	return &Router{rules: normalized, fallback: fallback}
}

// Classify returns the response of the first rule, in declared order,
// with any term contained in the lowercased message. Ties between
// overlapping rules are broken by table order alone, never by
// specificity or term count. No rule matching means the fallback.
func (r *Router) Classify(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, term := range rule.Terms {
			if term != "" && strings.Contains(lower, term) {
				return rule.Response
			}
		}
	}
	return r.fallback
}

// Rules returns a copy of the table, for display surfaces.
func (r *Router) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}
