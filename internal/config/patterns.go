// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
)

// ThemeRoots are the top-level directories recognised as theme content.
// They form the default whitelist and the non-configurable upload check.
var ThemeRoots = []string{"layouts/", "assets/", "config/", "snippets/", "templates/"}

// DefaultIgnore always excludes the persisted configuration itself, at any
// depth, from synchronisation.
const DefaultIgnore = `(^|/)config\.yml$`

// Patterns is the compiled whitelist/ignore set. It is built once at startup
// and never mutated afterwards, so it may be read concurrently.
type Patterns struct {
	whitelist []*regexp.Regexp
	ignore    []*regexp.Regexp
}

// NewPatterns compiles the default theme roots plus the configured
// whitelist, and config.yml plus the configured ignore list.
//
// Default roots are anchored to the start of the relative path; configured
// expressions are used as written and may match anywhere in the path.
// Returns [ErrInvalidPattern] (wrapped) for an expression that does not
// compile.
func NewPatterns(whitelist, ignore []string) (*Patterns, error) {
	p := &Patterns{
		whitelist: make([]*regexp.Regexp, 0, len(ThemeRoots)+len(whitelist)),
		ignore:    make([]*regexp.Regexp, 0, 1+len(ignore)),
	}

	for _, root := range ThemeRoots {
		p.whitelist = append(p.whitelist, regexp.MustCompile("^"+regexp.QuoteMeta(root)))
	}
	p.ignore = append(p.ignore, regexp.MustCompile(DefaultIgnore))

	for _, expr := range whitelist {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: whitelist %q: %v", ErrInvalidPattern, expr, err)
		}
		p.whitelist = append(p.whitelist, re)
	}

	for _, expr := range ignore {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: ignore %q: %v", ErrInvalidPattern, expr, err)
		}
		p.ignore = append(p.ignore, re)
	}

	return p, nil
}

// DefaultPatterns returns the patterns used when nothing is configured.
func DefaultPatterns() *Patterns {
	p, _ := NewPatterns(nil, nil)
	return p
}

// Whitelisted reports whether path matches at least one whitelist pattern.
func (p *Patterns) Whitelisted(path string) bool {
	for _, re := range p.whitelist {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Ignored reports whether path matches any ignore pattern.
func (p *Patterns) Ignored(path string) bool {
	for _, re := range p.ignore {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
