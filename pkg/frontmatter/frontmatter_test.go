package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParse(t *testing.T) {
	input := "---\nname: deepl\ndescription: Translate with DeepL\n---\n# Skill\n\nBody text.\n"

	var meta skillMeta
	body, err := Parse(strings.NewReader(input), &meta)
	require.NoError(t, err)

	assert.Equal(t, "deepl", meta.Name)
	assert.Equal(t, "Translate with DeepL", meta.Description)
	assert.Equal(t, "# Skill\n\nBody text.\n", string(body))
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := "# Just markdown\n"

	var meta skillMeta
	body, err := Parse(strings.NewReader(input), &meta)
	require.NoError(t, err)

	assert.Empty(t, meta.Name)
	assert.Equal(t, input, string(body))
}

func TestMustParse_MissingFrontmatter(t *testing.T) {
	var meta skillMeta
	_, err := MustParse(strings.NewReader("no frontmatter here"), &meta)
	assert.ErrorIs(t, err, ErrMissingFrontmatter)
}

func TestMustParse_MissingClosingDelimiter(t *testing.T) {
	var meta skillMeta
	_, err := MustParse(strings.NewReader("---\nname: x\n"), &meta)
	assert.Error(t, err)
}

func TestParse_CRLF(t *testing.T) {
	input := "---\r\nname: deepl\r\n---\r\nbody"

	var meta skillMeta
	body, err := Parse(strings.NewReader(input), &meta)
	require.NoError(t, err)

	assert.Equal(t, "deepl", meta.Name)
	assert.Equal(t, "body", string(body))
}

func TestParse_InvalidYAML(t *testing.T) {
	var meta skillMeta
	_, err := Parse(strings.NewReader("---\n: :\n  bad\n---\nbody"), &meta)
	assert.Error(t, err)
}
