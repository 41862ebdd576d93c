package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"
)

// DefaultLocalImageURL is where the REST API serves locally stored images
const DefaultLocalImageURL = "http://localhost:8080/images"

// localImageConnector keeps images in a directory on disk
type localImageConnector struct {
	root    string
	baseURL string
	logger  logger.Logger
}

// NewLocalImageConnector stores images below settings.ContainerName, which is treated as a directory
func NewLocalImageConnector(settings *config.ImageConnectorSettings, logger logger.Logger) (products.ImageConnector, error) {
	if err := os.MkdirAll(settings.ContainerName, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	baseURL := settings.PublicBaseURL
	if baseURL == "" {
		baseURL = DefaultLocalImageURL
	}

	return &localImageConnector{
		root:    settings.ContainerName,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}, nil
}

func (c *localImageConnector) Upload(ctx context.Context, form *multipart.Form, productID string) ([]string, error) {
	images, err := readImages(form)
	if err != nil {
		return nil, err
	}

	var uploaded []string
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := objectName(productID, img)
		target := filepath.Join(c.root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create image directory: %w", err)
		}
		if err := os.WriteFile(target, img.data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write image %s: %w", img.name, err)
		}

		uploaded = append(uploaded, c.baseURL+"/"+name)
		c.logger.Info("Image '", img.name, "' stored as ", target)
	}
	return uploaded, nil
}

func (c *localImageConnector) Delete(_ context.Context, url string) error {
	name, err := objectNameFromURL(c.baseURL, url)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(c.root, filepath.FromSlash(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image %s: %w", name, err)
	}
	return nil
}
