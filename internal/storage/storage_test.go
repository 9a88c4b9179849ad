package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpload(t *testing.T) {
	t.Run("should POST the object and return its public url", func(t *testing.T) {
		var gotPath, gotAuth, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			w.WriteHeader(200)
		}))
		defer server.Close()

		client := NewClient(server.URL, "service-key")

		url, err := client.Upload(context.Background(), BucketPropertyImages, "properties/house.jpg", []byte("img"), "image/jpeg")

		assert.NoError(t, err)
		assert.Equal(t, "/storage/v1/object/property-images/properties/house.jpg", gotPath)
		assert.Equal(t, "Bearer service-key", gotAuth)
		assert.Equal(t, "image/jpeg", gotContentType)
		assert.Equal(t, server.URL+"/storage/v1/object/public/property-images/properties/house.jpg", url)
	})

	t.Run("should surface the upstream error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(403)
			w.Write([]byte("bucket not found")) // nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(server.URL, "service-key")

		_, err := client.Upload(context.Background(), BucketUnitImages, "units/a.jpg", []byte("img"), "image/jpeg")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bucket not found")
	})
}

func TestObjectName(t *testing.T) {
	name := ObjectName(FolderUnits, "My Room 1.JPG")

	assert.True(t, strings.HasPrefix(name, "units/my-room-1-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
}

func TestUploadBatch(t *testing.T) {
	t.Run("should stop at the first failure and keep earlier uploads", func(t *testing.T) {
		var count int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count++
			if count > 1 {
				w.WriteHeader(500)
				return
			}
			w.WriteHeader(200)
		}))
		defer server.Close()

		client := NewClient(server.URL, "key")
		files := []File{
			{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
			{Name: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
			{Name: "c.jpg", ContentType: "image/jpeg", Data: []byte("c")},
		}

		urls, err := UploadBatch(context.Background(), client, BucketUnitImages, FolderUnits, files)

		assert.Error(t, err)
		assert.Len(t, urls, 1)
		assert.Equal(t, 2, count, "no further uploads after a failure")
	})
}
