package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesFlattenExtra(t *testing.T) {
	record := ProductRecord{
		URL:   "https://example.com/p/1",
		Title: "Shirt",
		Attributes: Attributes{
			ColorOptions: []string{"White"},
			SizeOptions:  []string{"S"},
			Extra:        map[string]any{"material": "linen"},
		},
		RawPrice: 12.5,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	// extra keys live beside the option arrays, not under a nested key
	assert.JSONEq(t, `{
		"url": "https://example.com/p/1",
		"title": "Shirt",
		"category": "",
		"attributes": {"colorOptions":["White"],"sizeOptions":["S"],"material":"linen"},
		"rawPrice": 12.5
	}`, string(data))

	var roundTrip ProductRecord
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, record.Attributes.ColorOptions, roundTrip.Attributes.ColorOptions)
	assert.Equal(t, record.Attributes.SizeOptions, roundTrip.Attributes.SizeOptions)
	assert.Equal(t, "linen", roundTrip.Attributes.Extra["material"])
}

func TestAttributesUnmarshalMissingArrays(t *testing.T) {
	var attrs Attributes
	require.NoError(t, json.Unmarshal([]byte(`{"fit":"slim"}`), &attrs))

	assert.Equal(t, []string{}, attrs.ColorOptions)
	assert.Equal(t, []string{}, attrs.SizeOptions)
	assert.Equal(t, "slim", attrs.Extra["fit"])
}

func TestFallbackRecord(t *testing.T) {
	record := FallbackRecord("https://example.com/p/1")

	assert.Equal(t, "https://example.com/p/1", record.URL)
	assert.Equal(t, "Unknown Product", record.Title)
	assert.Equal(t, "Uncategorized", record.Category)
	assert.Equal(t, []string{}, record.Attributes.ColorOptions)
	assert.Equal(t, []string{}, record.Attributes.SizeOptions)
	assert.Equal(t, 0.0, record.RawPrice)

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"colorOptions":[]`)
	assert.Contains(t, string(data), `"sizeOptions":[]`)
	assert.Contains(t, string(data), `"rawPrice":0`)
}
