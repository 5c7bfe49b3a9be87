package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestRenderer(mode OutputMode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := map[string]OutputMode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"TEXT":     ModeText,
		" json ":   ModeJSON,
		"yaml":     ModeYAML,
		"md":       ModeMarkdown,
		"markdown": ModeMarkdown,
		"xml":      ModeAuto,
	}
	for in, want := range tests {
		assert.Equal(t, want, Mode(in), "Mode(%q)", in)
	}
	assert.True(t, ModeYAML.IsStructured())
	assert.False(t, ModeMarkdown.IsStructured())
	assert.Len(t, Modes(), 5)
}

func TestRenderer_EffectiveMode(t *testing.T) {
	r, _, _ := newTestRenderer(ModeAuto, true)
	assert.Equal(t, ModeText, r.EffectiveMode())

	r, _, _ = newTestRenderer(ModeAuto, false)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())

	r, _, _ = newTestRenderer(ModeJSON, true)
	assert.Equal(t, ModeJSON, r.EffectiveMode())

	r = NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
}

func TestRenderer_Markdown(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown, false)

	r.Header(1, "Backends")
	r.Println(FormatKeyValue("Types", "31"))
	r.Success("done")
	r.Warning("careful")
	r.Error("broken")

	assert.Equal(t, "# Backends\n\n- **Types:** 31\n✓ done\n", out.String())
	assert.Equal(t, "! careful\n✗ broken\n", errOut.String())
}

func TestRenderer_Table(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Table([]string{"Type", "Length"}, [][]any{{"VARCHAR", "1-100"}, {"INT", ""}})
	assert.Contains(t, out.String(), "| Type | Length |")
	assert.Contains(t, out.String(), "| VARCHAR | 1-100 |")

	r, out, _ = newTestRenderer(ModeText, true)
	r.Table([]string{"Type"}, [][]any{{"VARCHAR"}})
	assert.Contains(t, out.String(), "TYPE")
	assert.Contains(t, out.String(), "VARCHAR")
	assert.Contains(t, out.String(), "┌")
}

func TestRenderer_Structured(t *testing.T) {
	payload := map[string]any{"type": "VARCHAR", "nullable": true}

	r, out, _ := newTestRenderer(ModeJSON, false)
	ok, err := r.Structured(payload)
	require.NoError(t, err)
	assert.True(t, ok)
	var gotJSON map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &gotJSON))
	assert.Equal(t, payload, gotJSON)

	r, out, _ = newTestRenderer(ModeYAML, false)
	ok, err = r.Structured(payload)
	require.NoError(t, err)
	assert.True(t, ok)
	var gotYAML map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &gotYAML))
	assert.Equal(t, payload, gotYAML)

	r, out, _ = newTestRenderer(ModeText, true)
	ok, err = r.Structured(payload)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "# A", FormatHeader(0, "A"))
	assert.Equal(t, "### C", FormatHeader(3, "C"))
}
