package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Directive
	}{
		{"host list", "Host alpha  beta\t*.lan", Directive{Kind: ContextDirective, Tokens: []string{"alpha", "beta", "*.lan"}}},
		{"host uppercase", "HOST Alpha", Directive{Kind: ContextDirective, Tokens: []string{"alpha"}}},
		{"match", "Match host foo exec true", Directive{Kind: MatchDirective}},
		{"hostname", "Hostname 10.0.0.1", Directive{Kind: HostnameDirective, Value: "10.0.0.1"}},
		{"hostname rest of line", "HostName a b  c ", Directive{Kind: HostnameDirective, Value: "a b  c"}},
		{"annotation", "#_desc Build Box", Directive{Kind: AnnotationDirective, Value: "build box"}},
		{"plain comment", "# just a comment", Directive{Kind: Unrecognized}},
		{"other directive", "User root", Directive{Kind: Unrecognized}},
		{"blank", "   ", Directive{Kind: Unrecognized}},
		{"bare host keyword", "Host", Directive{Kind: Unrecognized}},
		{"bare hostname keyword", "Hostname  \t", Directive{Kind: Unrecognized}},
		{"bare annotation keyword", "#_desc ", Directive{Kind: Unrecognized}},
		{"tab separator", "Hostname\tx", Directive{Kind: Unrecognized}},
		{"leading indentation", "  Host a", Directive{Kind: Unrecognized}},
		{"hostkeyalias is not host", "HostKeyAlias a", Directive{Kind: Unrecognized}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Classify(tt.line)); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "host a", Normalize("Host A \t\r"))
	assert.Equal(t, "  x", Normalize("  X"))
	assert.Equal(t, "", Normalize(" \n"))
}

func TestIsAliasValid(t *testing.T) {
	for _, tok := range []string{"alpha", "db-1", "10.0.0.1", "host.example.com", "user@box"} {
		assert.True(t, IsAliasValid(tok), tok)
	}
	for _, tok := range []string{"*", "web*", "db?", "!bastion", "a!b", ""} {
		assert.False(t, IsAliasValid(tok), tok)
	}
}

func TestDirectiveKindString(t *testing.T) {
	assert.Equal(t, "host", ContextDirective.String())
	assert.Equal(t, "match", MatchDirective.String())
	assert.Equal(t, "hostname", HostnameDirective.String())
	assert.Equal(t, "annotation", AnnotationDirective.String())
	assert.Equal(t, "unrecognized", Unrecognized.String())
}
