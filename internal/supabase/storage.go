package supabase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// StorageClient wraps the Supabase storage bucket holding inspiration and
// vision images.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadOrderImage stores an operator-uploaded vision image under the
// order's prefix and returns its public URL.
func (s *StorageClient) UploadOrderImage(orderID uuid.UUID, filename, contentType string, data []byte) (string, error) {
	storagePath := fmt.Sprintf("orders/%s/%s", orderID.String(), filename)

	if contentType == "" {
		contentType = "image/jpeg"
	}
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.PublicURL(storagePath), nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

// RemoveByURLs deletes the storage objects behind public URLs. URLs outside
// this bucket are ignored; image rows can reference externally hosted
// pictures.
func (s *StorageClient) RemoveByURLs(urls []string) error {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)

	var paths []string
	for _, url := range urls {
		if strings.HasPrefix(url, prefix) {
			paths = append(paths, strings.TrimPrefix(url, prefix))
		}
	}
	if len(paths) == 0 {
		return nil
	}

	_, err := s.client.RemoveFile(s.bucket, paths)
	if err != nil {
		return fmt.Errorf("failed to remove storage objects: %w", err)
	}
	return nil
}
