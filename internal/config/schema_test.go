package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_DescribesBothKeys(t *testing.T) {
	schema := Schema()

	assert.Equal(t, "Panewall Configuration", schema.Title)

	count, ok := schema.Properties.Get(keyNumberOfWindows)
	require.True(t, ok)
	assert.Equal(t, "integer", count.Type)
	assert.Equal(t, json.Number("1"), count.Minimum)
	assert.Equal(t, json.Number("4"), count.Maximum)

	url, ok := schema.Properties.Get(keyURL)
	require.True(t, ok)
	assert.Equal(t, "string", url.Type)

	assert.Empty(t, schema.Required, "both keys are optional")
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, schemaID, decoded["$id"])
	assert.Contains(t, decoded, "properties")
}
