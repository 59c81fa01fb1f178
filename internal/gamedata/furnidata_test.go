package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFurnidata = `{
  "roomitemtypes": {
    "furnitype": [
      {"id": 1, "classname": "chair_basic", "name": "Basic Chair", "furniline": "basic"},
      {"id": 2, "classname": "table_basic", "name": "Basic Table", "furniline": "basic"}
    ]
  },
  "wallitemtypes": {
    "furnitype": [
      {"id": 10, "classname": "poster_sun", "name": "Sun Poster"}
    ]
  }
}`

func TestParseFurniCatalog(t *testing.T) {
	doc, err := ParseFurniCatalog([]byte(sampleFurnidata))
	require.NoError(t, err)

	require.Len(t, doc, 3)
	assert.Contains(t, doc, "room/chair_basic")
	assert.Contains(t, doc, "room/table_basic")
	assert.Contains(t, doc, "wall/poster_sun")

	assert.Equal(t, "Basic Chair", doc["room/chair_basic"]["name"])
}

func TestParseFurniCatalog_MissingClassname(t *testing.T) {
	payload := `{"roomitemtypes": {"furnitype": [{"id": 42, "name": "Nameless"}]}}`

	doc, err := ParseFurniCatalog([]byte(payload))
	require.NoError(t, err)
	assert.Contains(t, doc, "room/id:42")
}

func TestParseFurniCatalog_Rejections(t *testing.T) {
	cases := map[string]string{
		"empty payload": "",
		"invalid json":  "{not json",
		"wrong shape":   `{"somethingelse": true}`,
		"empty lists":   `{"roomitemtypes": {"furnitype": []}, "wallitemtypes": {"furnitype": []}}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseFurniCatalog([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestEncodeCatalogSnapshot(t *testing.T) {
	encoded, err := EncodeCatalogSnapshot([]byte(`{"b":1,"a":2}`))
	require.NoError(t, err)

	// Indented, upstream key order preserved, trailing newline
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}\n", string(encoded))

	// Re-parsing the persisted form must yield the same document
	doc1, err := ParseFurniCatalog([]byte(sampleFurnidata))
	require.NoError(t, err)
	persisted, err := EncodeCatalogSnapshot([]byte(sampleFurnidata))
	require.NoError(t, err)
	doc2, err := ParseFurniCatalog(persisted)
	require.NoError(t, err)
	assert.Equal(t, doc1, doc2)
}
