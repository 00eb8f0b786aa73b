package app

import (
	"fmt"

	"github.com/civiclens/civiclens-backend/internal/clients/chrome"
	"github.com/civiclens/civiclens-backend/internal/clients/gcp"
	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
)

type Clients struct {
	GcpBucket gcp.BucketService
	Renderer  *chrome.Renderer
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	// Gcs
	bucket, err := gcp.NewBucketService(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init bucket client: %w", err)
	}

	// Headless browser
	renderer, err := chrome.NewRenderer(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init renderer: %w", err)
	}

	return Clients{
		GcpBucket: bucket,
		Renderer:  renderer,
	}, nil
}
