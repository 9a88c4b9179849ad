package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageListValue(t *testing.T) {
	t.Run("should serialize a list to a json array", func(t *testing.T) {
		l := ImageList{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

		v, err := l.Value()

		assert.NoError(t, err)
		assert.JSONEq(t, `["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]`, string(v.([]byte)))
	})

	t.Run("should store NULL for an empty list", func(t *testing.T) {
		var l ImageList

		v, err := l.Value()

		assert.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestImageListScan(t *testing.T) {
	t.Run("should read a json array back", func(t *testing.T) {
		var l ImageList

		err := l.Scan([]byte(`["https://cdn.example.com/a.jpg"]`))

		assert.NoError(t, err)
		assert.Equal(t, ImageList{"https://cdn.example.com/a.jpg"}, l)
	})

	t.Run("should accept string columns", func(t *testing.T) {
		var l ImageList

		err := l.Scan(`["https://cdn.example.com/a.jpg"]`)

		assert.NoError(t, err)
		assert.Len(t, l, 1)
	})

	t.Run("should treat NULL as no images", func(t *testing.T) {
		l := ImageList{"stale"}

		err := l.Scan(nil)

		assert.NoError(t, err)
		assert.Nil(t, l)
	})

	t.Run("should treat legacy free text as no images instead of failing", func(t *testing.T) {
		var l ImageList

		err := l.Scan([]byte("not json at all"))

		assert.NoError(t, err)
		assert.Nil(t, l)
	})
}
