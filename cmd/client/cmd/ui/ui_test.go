package ui

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

func TestRender(t *testing.T) {
	v := []item{{ID: "1", Title: "Gmail"}}
	text := func(w io.Writer) error {
		_, err := io.WriteString(w, "Gmail\n")
		return err
	}

	tests := []struct {
		format string
		want   string
	}{
		{format: FormatJSON, want: "[\n  {\n    \"id\": \"1\",\n    \"title\": \"Gmail\"\n  }\n]\n"},
		{format: FormatYAML, want: "- id: \"1\"\n  title: Gmail\n"},
		{format: FormatText, want: "Gmail\n"},
		{format: "", want: "Gmail\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.format, v, text))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	assert.Error(t, Render(io.Discard, "xml", v, text))
}

func TestDeref(t *testing.T) {
	s := "alice"
	empty := ""
	assert.Equal(t, "alice", Deref(&s))
	assert.Equal(t, "-", Deref(&empty))
	assert.Equal(t, "-", Deref(nil))
}

func TestEnsureNewline(t *testing.T) {
	assert.Equal(t, "a\n", EnsureNewline("a"))
	assert.Equal(t, "a\n", EnsureNewline("a\n"))
}
