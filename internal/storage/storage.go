// Copyright (C) 2024 LetMe Accommodation Ltd.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

const (
	BucketPropertyImages = "property-images"
	BucketUnitImages     = "unit-images"

	FolderProperties = "properties"
	FolderUnits      = "units"
)

type Client interface {
	Upload(ctx context.Context, bucket, objectPath string, data []byte, contentType string) (string, error)
	PublicURL(bucket, objectPath string) string
}

// httpClient talks to a supabase-storage compatible object store.
type httpClient struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewClient(baseURL, serviceKey string) Client {
	return &httpClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *httpClient) Upload(ctx context.Context, bucket, objectPath string, data []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "could not build upload request")
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "could not upload object")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("upload of %s/%s failed: %s", bucket, objectPath, strings.TrimSpace(string(body)))
	}

	return c.PublicURL(bucket, objectPath), nil
}

func (c *httpClient) PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, objectPath)
}

// ObjectName builds a unique object name from an original file name.
func ObjectName(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	base := strings.TrimSuffix(fileName, path.Ext(fileName))

	name := slug.Make(base)
	if name == "" {
		name = "image"
	}

	return fmt.Sprintf("%s/%s-%s%s", folder, name, uuid.NewString(), ext)
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadBatch uploads one file at a time. There is no rollback: on failure
// the already uploaded URLs are returned alongside the error so callers can
// report partial completion.
func UploadBatch(ctx context.Context, client Client, bucket, folder string, files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := client.Upload(ctx, bucket, ObjectName(folder, file.Name), file.Data, file.ContentType)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
