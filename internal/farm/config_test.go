package farm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.yaml")
	want := DefaultConfig()
	require.NoError(t, want.Save(path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = New(got)
	require.NoError(t, err, "saved config must rebuild the same farm")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("radius: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigSchemaViolation(t *testing.T) {
	// Well-formed YAML, wrong shape: basket is missing entirely.
	doc := `radius: 2
start: {q: 0, r: 0}
stations:
  - {q: 1, r: 0}
plots: []
`
	path := filepath.Join(t.TempDir(), "farm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "farm schema")
}

func TestLoadConfigReferenceFile(t *testing.T) {
	// The shipped reference layout must stay loadable and identical to
	// DefaultConfig.
	path := filepath.Join("..", "..", "configs", "kiwifarm.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("reference config not present: %v", err)
	}

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
