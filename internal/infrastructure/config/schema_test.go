package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "webdeck configuration", doc["title"])
	assert.Contains(t, string(data), "toolbar_height")
	assert.Contains(t, string(data), `"bolt"`)
}

func TestWriteSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, WriteSchemaFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSchemaProvider_CoversEveryKey(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	got := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
		got[k.Key] = true
	}

	for _, want := range []string{
		"storage.backend", "storage.path",
		"logging.level", "logging.format",
		"appearance.theme",
		"search.threshold",
		"window.width", "window.height", "window.toolbar_height",
		"favicon.size", "favicon.prefetch",
	} {
		assert.True(t, got[want], "missing %s", want)
	}
}
