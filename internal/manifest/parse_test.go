package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullManifest = `
name: mypkg
version: 1.4.0
supports:
  - linux
platforms:
  - el9
sites:
  - hq
requires:
  zlib: 1.2
loadRequires:
  env-tools: 2
buildRequires:
  gcc: 12
testRequires:
  pytest: 7.4.3
systemRequires:
  make: 4
recipes:
  compile:
    steps:
      - configure
      - build
      - install
flavours:
  - name: release
  - name: instrumented
    recipes:
      profile:
        steps: [build-with-gprof]
exports:
  tools:
    - mytool
    - mytool-admin
  libraries:
    - libmy.so
`

func TestParse_FullManifest(t *testing.T) {
	m, err := Parse([]byte(fullManifest))
	require.NoError(t, err)

	assert.Equal(t, "mypkg", m.Name)
	assert.Equal(t, "1.4.0", m.Version)
	assert.Equal(t, []string{"linux"}, m.Supports)
	assert.Equal(t, []string{"el9"}, m.Platforms)
	assert.Equal(t, []string{"hq"}, m.Sites)

	assert.Equal(t, "1.2", m.Requires["zlib"].String())
	assert.Equal(t, VersionInt, m.LoadRequires["env-tools"].Kind())
	assert.Equal(t, VersionInt, m.BuildRequires["gcc"].Kind())
	assert.Equal(t, "7.4.3", m.TestRequires["pytest"].String())
	assert.Equal(t, VersionInt, m.SystemRequires["make"].Kind())

	require.Contains(t, m.Recipes, "compile")
	assert.Equal(t, []string{"configure", "build", "install"}, m.Recipes["compile"].Steps)

	require.Len(t, m.Flavours, 2)
	assert.Equal(t, ShapeSimple, m.Flavours[0].Shape)
	assert.Equal(t, ShapeRecipes, m.Flavours[1].Shape)

	assert.Equal(t, []string{"mytool", "mytool-admin"}, m.Exports["tools"])
}

func TestParse_MissingName(t *testing.T) {
	_, err := Parse([]byte("version: 1.0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestParse_MissingVersion(t *testing.T) {
	_, err := Parse([]byte("name: mypkg\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingVersion)
}

func TestParse_InvalidSyntax(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse manifest")
}

func TestParse_RequirementMustBeScalar(t *testing.T) {
	doc := `
name: mypkg
version: "1.0"
requires:
  zlib:
    min: 1.2
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScalarRequired)
}

func TestParse_VersionIsFreeFormText(t *testing.T) {
	m, err := Parse([]byte("name: mypkg\nversion: 2.0\n"))
	require.NoError(t, err)
	assert.Equal(t, "2.0", m.Version)
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "package.yml")
	require.NoError(t, os.WriteFile(path, []byte(fullManifest), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mypkg", m.Name)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("/nonexistent/package.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestLoad_ErrorNamesFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingName)
	assert.Contains(t, err.Error(), "broken.yml")
}
