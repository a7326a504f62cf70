package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pad.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
name = "Custom Pad"
vendor_id = 0x045e
product_id = 0x02ea
version = 0x0408
`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom Pad", p.Name)
	assert.Equal(t, uint16(0x045e), p.VendorID)
	assert.Equal(t, uint16(0x02ea), p.ProductID)
	assert.Equal(t, uint16(0x0408), p.Version)

	def := p.Definition()
	assert.Equal(t, "Custom Pad", def.Name)
	assert.Equal(t, uint16(0x02ea), def.ProductID)
}

func TestLoadPartialKeepsZeroFields(t *testing.T) {
	path := writeProfile(t, `name = "Renamed Only"`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Only", p.Name)
	assert.Zero(t, p.VendorID)
	assert.Zero(t, p.ProductID)
	assert.Zero(t, p.Version)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeProfile(t, `
name = "Typo Pad"
vendor = 0x1234
`)

	_, err := Load(path)
	assert.Error(t, err, "unknown keys must not be dropped silently")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
