package gcp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

// BucketService is the object-store collaborator for generated resolution
// reports: named binary blobs in, publicly resolvable URLs out.
type BucketService interface {
	Upload(ctx context.Context, key string, data []byte) error
	PublicURL(key string) string
}

type bucketService struct {
	log           *logger.Logger
	storageClient *storage.Client
	bucketName    string
	cdnDomain     string
}

func NewBucketService(log *logger.Logger) (BucketService, error) {
	serviceLog := log.With("service", "BucketService")

	bucketName := os.Getenv("REPORT_GCS_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("missing env var REPORT_GCS_BUCKET_NAME")
	}
	cdnDomain := os.Getenv("REPORT_CDN_DOMAIN")

	ctx := context.Background()
	opts := ClientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	stClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &bucketService{
		log:           serviceLog,
		storageClient: stClient,
		bucketName:    bucketName,
		cdnDomain:     cdnDomain,
	}, nil
}

// Upload writes the blob under key, overwriting any prior object with the
// same name. Report keys embed a fresh correlation id per run, so in
// practice uploads are append-only by name.
func (bs *bucketService) Upload(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := bs.storageClient.Bucket(bs.bucketName).Object(key).NewWriter(ctx)
	if strings.HasSuffix(strings.ToLower(key), ".pdf") {
		w.ContentType = "application/pdf"
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (bs *bucketService) PublicURL(key string) string {
	if bs.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", strings.TrimSuffix(bs.cdnDomain, "/"), key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bs.bucketName, key)
}
