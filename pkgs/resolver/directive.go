package resolver

import (
	"strings"
	"unicode"
)

// DirectiveKind classifies a normalized configuration line.
type DirectiveKind int

const (
	Unrecognized DirectiveKind = iota
	ContextDirective
	MatchDirective
	HostnameDirective
	AnnotationDirective
)

// Line prefixes, matched against the lowercased line. The trailing space is
// part of the prefix: a keyword with no payload never matches.
const (
	hostPrefix       = "host "
	matchPrefix      = "match "
	hostnamePrefix   = "hostname "
	annotationPrefix = "#_desc "
)

func (k DirectiveKind) String() string {
	switch k {
	case ContextDirective:
		return "host"
	case MatchDirective:
		return "match"
	case HostnameDirective:
		return "hostname"
	case AnnotationDirective:
		return "annotation"
	default:
		return "unrecognized"
	}
}

// Directive is one classified line.
type Directive struct {
	Kind DirectiveKind

	// Tokens holds the context members of a ContextDirective.
	Tokens []string

	// Value holds the payload of a HostnameDirective or AnnotationDirective:
	// everything after the keyword, not further split.
	Value string
}

// Normalize case-folds the line and trims trailing whitespace.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimRightFunc(line, unicode.IsSpace))
}

// Classify normalizes a raw line and matches it against the known directive
// prefixes in order: host, match, hostname, annotation. The prefixes are
// disjoint, so at most one applies.
func Classify(raw string) Directive {
	line := Normalize(raw)

	switch {
	case strings.HasPrefix(line, hostPrefix):
		return Directive{Kind: ContextDirective, Tokens: strings.Fields(line[len(hostPrefix):])}
	case strings.HasPrefix(line, matchPrefix):
		return Directive{Kind: MatchDirective}
	case strings.HasPrefix(line, hostnamePrefix):
		return Directive{Kind: HostnameDirective, Value: payload(line, hostnamePrefix)}
	case strings.HasPrefix(line, annotationPrefix):
		return Directive{Kind: AnnotationDirective, Value: payload(line, annotationPrefix)}
	default:
		return Directive{Kind: Unrecognized}
	}
}

// payload returns the rest of the line after the keyword with the separating
// whitespace removed. It may be empty.
func payload(line, prefix string) string {
	return strings.TrimLeftFunc(line[len(prefix):], unicode.IsSpace)
}

// IsAliasValid reports whether token can name a host: it must not contain any
// of the selector meta-characters '*', '?' or '!'.
func IsAliasValid(token string) bool {
	return token != "" && !strings.ContainsAny(token, "*?!")
}
