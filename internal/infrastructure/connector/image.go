package connector

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/httputil"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted image file in bytes
const MaxImageSize = 5 << 20

var (
	ErrUnsupportedImage = products.ErrUnsupportedImage
	ErrImageTooLarge    = products.ErrImageTooLarge
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// NewImageConnector creates the ImageConnector selected by settings.CloudProvider
func NewImageConnector(ctx context.Context, settings *config.ImageConnectorSettings, logger logger.Logger) (products.ImageConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.CloudProvider {
	case config.AzureCloudProvider:
		return NewAzureImageConnector(ctx, settings, logger)
	case config.LocalCloudProvider:
		return NewLocalImageConnector(settings, logger)
	default:
		return nil, fmt.Errorf("unsupported cloud provider: %s", settings.CloudProvider)
	}
}

// image is an uploaded file read fully into memory and checked
type image struct {
	name        string
	contentType string
	data        []byte
}

// readImages loads every file of the form and rejects anything that is not a small image
func readImages(form *multipart.Form) ([]image, error) {
	if form == nil {
		return nil, fmt.Errorf("no files provided in upload request")
	}
	headers := form.File[httputil.FormFilesField]
	if len(headers) == 0 {
		return nil, fmt.Errorf("no files provided in upload request")
	}

	images := make([]image, 0, len(headers))
	for _, header := range headers {
		if header.Size > MaxImageSize {
			return nil, fmt.Errorf("%w: %s", ErrImageTooLarge, header.Filename)
		}

		data, err := readFile(header)
		if err != nil {
			return nil, err
		}
		if len(data) > MaxImageSize {
			return nil, fmt.Errorf("%w: %s", ErrImageTooLarge, header.Filename)
		}

		contentType := http.DetectContentType(data)
		if _, ok := imageExtensions[contentType]; !ok {
			return nil, fmt.Errorf("%w: %s is %s", ErrUnsupportedImage, header.Filename, contentType)
		}

		images = append(images, image{name: header.Filename, contentType: contentType, data: data})
	}
	return images, nil
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", header.Filename, err)
	}
	return data, nil
}

// objectName places an image under its product, e.g. "<product id>/<uuid>.png"
func objectName(productID string, img image) string {
	return path.Join(productID, uuid.NewString()+imageExtensions[img.contentType])
}

// objectNameFromURL recovers the object name from a URL produced under baseURL
func objectNameFromURL(baseURL, rawURL string) (string, error) {
	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", fmt.Errorf("image URL %s is not managed by this store", rawURL)
	}

	name := strings.TrimPrefix(rawURL, prefix)
	cleaned := path.Clean(name)
	if name == "" || cleaned != name || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid image URL %s", rawURL)
	}
	return cleaned, nil
}
