package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/motif/internal/ui/kind"
	motiferrors "github.com/alexisbeaulieu97/motif/pkg/errors"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileLayersOverBuiltin(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, `
name: ocean
extends: dark
colors:
  primary: {light: "#0ea5e9", dark: "#38bdf8"}
  success: {light: "#10b981"}
sizes:
  toggle:
    large: {primary: 10, secondary: 1, inner: 4}
typography:
  title-large: {bold: true, underline: true, color: primary}
`)

	tokens, err := LoadFile(path)
	require.NoError(t, err)

	dark := Dark()
	assert.Equal(t, "ocean", tokens.Name())
	assert.Equal(t, "#0ea5e9", tokens.Color(RolePrimary).Light)
	assert.Equal(t, "#38bdf8", tokens.Color(RolePrimary).Dark)
	assert.Equal(t, "#10b981", tokens.Color(RoleSuccess).Dark, "dark falls back to light")
	assert.Equal(t, dark.Color(RoleSurface), tokens.Color(RoleSurface))
	assert.Equal(t, Dimensions{10, 1, 4}, tokens.Size(kind.Toggle, SizeLarge))
	assert.Equal(t, dark.Size(kind.Toggle, SizeSmall), tokens.Size(kind.Toggle, SizeSmall))

	title := tokens.Type(TypeTitleLarge)
	assert.True(t, title.GetBold())
	assert.True(t, title.GetUnderline())
	assert.Equal(t, tokens.Color(RolePrimary), title.GetForeground())
}

func TestParseFileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "missing name",
			content: "colors:\n  primary: {light: \"#ffffff\"}\n",
			field:   "name",
		},
		{
			name:    "unknown base theme",
			content: "name: x\nextends: sepia\n",
			field:   "extends",
		},
		{
			name:    "unknown colour role",
			content: "name: x\ncolors:\n  chartreuse: {light: \"#ffffff\"}\n",
			field:   "colors.chartreuse",
		},
		{
			name:    "bad hex colour",
			content: "name: x\ncolors:\n  primary: {light: \"blue\"}\n",
			field:   "colors.primary.light",
		},
		{
			name:    "unknown kind",
			content: "name: x\nsizes:\n  carousel:\n    small: {primary: 1, secondary: 1}\n",
			field:   "sizes.carousel",
		},
		{
			name:    "unknown size class",
			content: "name: x\nsizes:\n  toggle:\n    huge: {primary: 1, secondary: 1}\n",
			field:   "sizes.toggle.huge",
		},
		{
			name:    "zero rows",
			content: "name: x\nsizes:\n  toggle:\n    small: {primary: 4, secondary: 0}\n",
			field:   "sizes.toggle.small.secondary",
		},
		{
			name:    "typography colour role",
			content: "name: x\ntypography:\n  title-large: {color: mauve}\n",
			field:   "typography.title-large.color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseFile(writeTheme(t, tt.content))
			require.Error(t, err)

			var validationErr *motiferrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseFileSyntaxErrorReportsLine(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "name: x\ncolors:\n  primary: [\n")
	_, err := ParseFile(path)

	var parseErr *motiferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *motiferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportLoadsBack(t *testing.T) {
	t.Parallel()

	want := HighContrast()
	data, err := yaml.Marshal(Export(want))
	require.NoError(t, err)

	got, err := LoadFile(writeTheme(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, want.Name(), got.Name())
	for _, role := range ColorRoles() {
		assert.Equal(t, want.Color(role), got.Color(role), role.String())
	}
	for _, k := range kind.All() {
		assert.Equal(t, want.Size(k, SizeLarge), got.Size(k, SizeLarge), k.String())
	}
}
