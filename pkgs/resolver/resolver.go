// Package resolver folds SSH-config-like text into per-alias host records.
//
// Lines are scanned once, top to bottom. A "Host" line replaces the active
// context; "Hostname" and "#_desc" lines apply to every alias in that context
// with first-write-wins precedence. A "Hostname" line seen while no context is
// active becomes the global hostname fallback. Aliases containing '*', '?' or
// '!' are selector patterns and never receive a record.
package resolver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tony-sol/zsh-ssh/pkgs/invariant"
)

// Result is the finalized output of one resolution pass.
type Result struct {
	// Records in the order their alias first appeared in a Host line.
	Records []HostRecord

	// Fallback is the global hostname fallback, empty when none was declared.
	Fallback string
}

// EffectiveHostname resolves rec against this result's global fallback.
func (res *Result) EffectiveHostname(rec HostRecord) string {
	return rec.EffectiveHostname(res.Fallback)
}

// Resolver holds the state of a single pass. It is not safe for concurrent
// use and must not be reused for a second input.
type Resolver struct {
	records  map[string]*HostRecord
	order    []string
	context  []string
	fallback string

	line   int
	logger *slog.Logger
}

// New creates a resolver with empty state.
func New(opts ...Opt) *Resolver {
	cfg := newConfig(opts)
	return &Resolver{
		records: make(map[string]*HostRecord),
		logger:  cfg.logger,
	}
}

// Resolve reads lines from reader until EOF and returns the resolved records.
// Lines have no length limit. A read failure returns the records accumulated
// so far together with the error.
func Resolve(reader io.Reader, opts ...Opt) (*Result, error) {
	invariant.NotNil(reader, "reader")

	r := New(opts...)
	br := bufio.NewReader(reader)
	for {
		line, err := br.ReadString('\n')
		switch {
		case err == nil:
			r.Apply(line)
		case errors.Is(err, io.EOF):
			if line != "" {
				r.Apply(line)
			}
			return r.Result(), nil
		default:
			return r.Result(), fmt.Errorf("failed to read configuration at line %d: %w", r.line+1, err)
		}
	}
}

// ResolveLines resolves an in-memory sequence of lines.
func ResolveLines(lines []string, opts ...Opt) *Result {
	r := New(opts...)
	for _, line := range lines {
		r.Apply(line)
	}
	return r.Result()
}

// Apply processes one raw line.
func (r *Resolver) Apply(raw string) {
	r.line++
	d := Classify(raw)

	switch d.Kind {
	case ContextDirective:
		r.enterContext(d.Tokens)
	case MatchDirective:
		r.logger.Debug("match directive ignored", "line", r.line)
	case HostnameDirective:
		r.applyHostname(d.Value)
	case AnnotationDirective:
		r.applyAnnotation(d.Value)
	}
}

// Context returns a copy of the active context tokens.
func (r *Resolver) Context() []string {
	return append([]string(nil), r.context...)
}

// Result snapshots the records in creation order.
func (r *Resolver) Result() *Result {
	records := make([]HostRecord, 0, len(r.order))
	for _, alias := range r.order {
		records = append(records, *r.records[alias])
	}

	invariant.Postcondition(len(records) == len(r.records), "every record must appear once in creation order")
	return &Result{Records: records, Fallback: r.fallback}
}

func (r *Resolver) enterContext(tokens []string) {
	r.context = tokens
	for _, tok := range tokens {
		if !IsAliasValid(tok) {
			r.logger.Debug("pattern token skipped", "line", r.line, "token", tok)
			continue
		}
		if _, ok := r.records[tok]; ok {
			continue
		}
		r.records[tok] = &HostRecord{Alias: tok}
		r.order = append(r.order, tok)
		r.logger.Debug("host record created", "line", r.line, "alias", tok)
	}
}

func (r *Resolver) applyHostname(value string) {
	if len(r.context) == 0 {
		if r.fallback == "" && value != "" {
			r.fallback = value
			r.logger.Debug("global hostname set", "line", r.line, "hostname", value)
		} else {
			r.logger.Debug("global hostname kept", "line", r.line, "hostname", r.fallback, "ignored", value)
		}
		return
	}

	r.eachInContext(func(rec *HostRecord) {
		if rec.SetHostname(value) {
			r.logger.Debug("hostname set", "line", r.line, "alias", rec.Alias, "hostname", value)
		}
	})
}

func (r *Resolver) applyAnnotation(value string) {
	if len(r.context) == 0 {
		r.logger.Debug("annotation outside host context ignored", "line", r.line)
		return
	}

	r.eachInContext(func(rec *HostRecord) {
		if rec.SetAnnotation(value) {
			r.logger.Debug("annotation set", "line", r.line, "alias", rec.Alias, "annotation", value)
		}
	})
}

// eachInContext calls fn for the record of every alias-valid context token.
func (r *Resolver) eachInContext(fn func(*HostRecord)) {
	for _, tok := range r.context {
		if !IsAliasValid(tok) {
			continue
		}
		rec, ok := r.records[tok]
		invariant.Invariant(ok, "alias %q in context has no record", tok)
		fn(rec)
	}
}
