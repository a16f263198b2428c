// Package hostlist renders resolved host records for the shell completion
// widget and for inspection.
//
// The primary format is one line per host, "alias|->|hostname|annotation",
// where the annotation field is empty or the annotation text in brackets.
package hostlist

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tony-sol/zsh-ssh/pkgs/resolver"
)

// Separator between the alias and hostname fields of a primary line.
const Separator = "|->|"

// Entry is one resolved host.
type Entry struct {
	Alias            string `yaml:"alias" cbor:"1,keyasint"`
	Hostname         string `yaml:"hostname" cbor:"2,keyasint"`
	Annotation       string `yaml:"annotation,omitempty" cbor:"3,keyasint,omitempty"`
	HostnameOverride string `yaml:"hostname_override,omitempty" cbor:"4,keyasint,omitempty"`
}

// DisplayAnnotation returns the bracketed annotation, or "" when there is none.
func (e Entry) DisplayAnnotation(useColor bool) string {
	if e.Annotation == "" {
		return ""
	}
	return "[" + Colorize(e.Annotation, ColorBlue, useColor) + "]"
}

// Line renders the primary output line.
func (e Entry) Line(useColor bool) string {
	return e.Alias + Separator + e.Hostname + "|" + e.DisplayAnnotation(useColor)
}

// List is the resolved host list in creation order.
type List struct {
	Entries  []Entry `yaml:"hosts" cbor:"1,keyasint"`
	Fallback string  `yaml:"fallback,omitempty" cbor:"2,keyasint,omitempty"`
}

// New resolves every record of res against its global fallback.
func New(res *resolver.Result) *List {
	entries := make([]Entry, 0, len(res.Records))
	for _, rec := range res.Records {
		entries = append(entries, Entry{
			Alias:            rec.Alias,
			Hostname:         res.EffectiveHostname(rec),
			Annotation:       rec.Annotation,
			HostnameOverride: rec.HostnameOverride,
		})
	}
	return &List{Entries: entries, Fallback: res.Fallback}
}

// Lines renders every entry as a primary line.
func (l *List) Lines(useColor bool) []string {
	lines := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		lines = append(lines, e.Line(useColor))
	}
	return lines
}

// WriteLines writes the primary lines, newline terminated.
func (l *List) WriteLines(w io.Writer, useColor bool) error {
	for _, line := range l.Lines(useColor) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// diagnostic exposes the raw accumulated fields of one record.
type diagnostic struct {
	Alias            string `yaml:"alias"`
	HostnameOverride string `yaml:"hostname_override"`
	Annotation       string `yaml:"annotation"`
}

// Diagnostic renders the raw fields of e as a single flow-style YAML mapping,
// e.g. {alias: web, hostname_override: web.internal, annotation: ""}.
func (e Entry) Diagnostic() (string, error) {
	var node yaml.Node
	if err := node.Encode(diagnostic{
		Alias:            e.Alias,
		HostnameOverride: e.HostnameOverride,
		Annotation:       e.Annotation,
	}); err != nil {
		return "", fmt.Errorf("failed to encode diagnostic for %q: %w", e.Alias, err)
	}
	node.Style = yaml.FlowStyle

	out, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("failed to encode diagnostic for %q: %w", e.Alias, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// WriteDiagnostics writes one diagnostic line per entry.
func (l *List) WriteDiagnostics(w io.Writer) error {
	for _, e := range l.Entries {
		line, err := e.Diagnostic()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// YAML renders the whole list as a YAML document.
func (l *List) YAML() ([]byte, error) {
	doc := *l
	if doc.Entries == nil {
		doc.Entries = []Entry{}
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode host list: %w", err)
	}
	return out, nil
}
