package hostlist

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tony-sol/zsh-ssh/pkgs/resolver"
)

func listFrom(t *testing.T, input string) *List {
	t.Helper()
	res, err := resolver.Resolve(strings.NewReader(input), resolver.WithLogOutput(io.Discard))
	require.NoError(t, err)
	return New(res)
}

const sample = `Host alpha beta
Hostname realalpha
#_desc primary node
Host gamma
`

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "shared context",
			input: sample,
			want: []string{
				"alpha|->|realalpha|[primary node]",
				"beta|->|realalpha|[primary node]",
				"gamma|->|gamma|",
			},
		},
		{
			name:  "global fallback",
			input: "Hostname fallback.example\nHost x\n",
			want:  []string{"x|->|fallback.example|"},
		},
		{
			name:  "wildcard skipped",
			input: "Host a b*\nHostname h\n",
			want:  []string{"a|->|h|"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, listFrom(t, tt.input).Lines(false)); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColoredAnnotation(t *testing.T) {
	e := Entry{Alias: "a", Hostname: "h", Annotation: "note"}

	assert.Equal(t, "[note]", e.DisplayAnnotation(false))
	assert.Equal(t, "[\033[00;34mnote\033[0m]", e.DisplayAnnotation(true))
	assert.Equal(t, "a|->|h|[\033[00;34mnote\033[0m]", e.Line(true))
	assert.Equal(t, "", Entry{Alias: "a"}.DisplayAnnotation(true))
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listFrom(t, sample).WriteLines(&buf, false))

	assert.Equal(t, "alpha|->|realalpha|[primary node]\nbeta|->|realalpha|[primary node]\ngamma|->|gamma|\n", buf.String())
}

func TestDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listFrom(t, "Hostname g\n"+sample).WriteDiagnostics(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "{") && strings.HasSuffix(line, "}"), "flow mapping expected: %s", line)
	}

	var first map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, map[string]string{
		"alias":             "alpha",
		"hostname_override": "realalpha",
		"annotation":        "primary node",
	}, first)

	// gamma only has the global fallback; its raw override stays empty.
	var last map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(lines[2]), &last))
	assert.Equal(t, "gamma", last["alias"])
	assert.Equal(t, "", last["hostname_override"])
	assert.Equal(t, "", last["annotation"])
}

func TestYAML(t *testing.T) {
	out, err := listFrom(t, "Hostname g\nHost a\n#_desc note\n").YAML()
	require.NoError(t, err)

	assert.Equal(t, `hosts:
    - alias: a
      hostname: g
      annotation: note
fallback: g
`, string(out))

	empty, err := (&List{}).YAML()
	require.NoError(t, err)
	assert.Equal(t, "hosts: []\n", string(empty))
}

func TestFilter(t *testing.T) {
	list := listFrom(t, `Host web-prod web-staging db-prod bastion
Host cache
Hostname redis.internal
`)

	aliases := func(l *List) []string {
		out := []string{}
		for _, e := range l.Entries {
			out = append(out, e.Alias)
		}
		return out
	}

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Same(t, list, list.Filter("  "))
	})

	t.Run("prefix match", func(t *testing.T) {
		assert.Equal(t, []string{"web-prod", "web-staging"}, aliases(list.Filter("web")))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"bastion"}, aliases(list.Filter("BAST")))
	})

	t.Run("matches hostname", func(t *testing.T) {
		assert.Equal(t, []string{"cache"}, aliases(list.Filter("redis")))
	})

	t.Run("closest first", func(t *testing.T) {
		got := aliases(list.Filter("prod"))
		assert.Equal(t, []string{"db-prod", "web-prod"}, got)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, list.Filter("zzz").Entries)
	})
}

func TestDigest(t *testing.T) {
	a := listFrom(t, sample)
	b := listFrom(t, strings.ToUpper(sample))
	c := listFrom(t, sample+"Host delta\n")

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	dc, err := c.Digest()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(da, "blake2b:"))
	assert.Len(t, da, len("blake2b:")+64)
	assert.Equal(t, da, db, "case-folded inputs resolve identically")
	assert.NotEqual(t, da, dc)
}

func TestMarshalBinaryIsDeterministic(t *testing.T) {
	list := listFrom(t, sample)

	first, err := list.MarshalBinary()
	require.NoError(t, err)
	second, err := list.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
