// Package csp builds Content-Security-Policy header values.
package csp

import (
	"fmt"
	"strings"
)

// Builder accumulates CSP directives. Not safe for concurrent use.
type Builder struct {
	directives map[string][]string
	reportOnly bool
}

func NewBuilder() *Builder {
	return &Builder{directives: make(map[string][]string)}
}

func (b *Builder) DefaultSrc(sources ...string) *Builder {
	b.directives["default-src"] = sources
	return b
}

func (b *Builder) ConnectSrc(sources ...string) *Builder {
	b.directives["connect-src"] = sources
	return b
}

// FrameAncestors controls which origins may embed responses in a frame.
func (b *Builder) FrameAncestors(sources ...string) *Builder {
	b.directives["frame-ancestors"] = sources
	return b
}

func (b *Builder) BaseUri(sources ...string) *Builder {
	b.directives["base-uri"] = sources
	return b
}

func (b *Builder) FormAction(sources ...string) *Builder {
	b.directives["form-action"] = sources
	return b
}

// ReportOnly switches the header to report-only mode, where violations are
// reported but not enforced.
func (b *Builder) ReportOnly(enabled bool) *Builder {
	b.reportOnly = enabled
	return b
}

// Build renders the policy string. Directives are emitted in a fixed order
// so the output is stable.
func (b *Builder) Build() string {
	if len(b.directives) == 0 {
		return ""
	}

	order := []string{
		"default-src",
		"connect-src",
		"frame-ancestors",
		"form-action",
		"base-uri",
	}

	var parts []string
	for _, directive := range order {
		if sources, ok := b.directives[directive]; ok && len(sources) > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", directive, strings.Join(sources, " ")))
		}
	}

	return strings.Join(parts, "; ")
}

// HeaderName returns the header the policy should be sent under.
func (b *Builder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// StrictPolicy is the policy for JSON-only endpoints: no content loading,
// no framing, same-origin connections only.
func StrictPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'none'").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'self'")
}
