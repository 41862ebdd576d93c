package connector

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azureImageConnector is a struct for holding the Azure Blob storage client.
type azureImageConnector struct {
	client        *azblob.Client
	containerName string
	baseURL       string
	logger        logger.Logger
}

// NewAzureImageConnector creates a new azureImageConnector instance using a connection string.
// It returns the connector and any error encountered during the initialization.
func NewAzureImageConnector(ctx context.Context, settings *config.ImageConnectorSettings, logger logger.Logger) (products.ImageConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create Azure Blob container: %w", err)
	}

	baseURL := settings.PublicBaseURL
	if baseURL == "" {
		baseURL = strings.TrimSuffix(client.URL(), "/") + "/" + settings.ContainerName
	}

	return &azureImageConnector{
		client:        client,
		containerName: settings.ContainerName,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload stores every image of the form under the product and returns their public URLs
func (abc *azureImageConnector) Upload(ctx context.Context, form *multipart.Form, productID string) ([]string, error) {
	images, err := readImages(form)
	if err != nil {
		return nil, err
	}

	var uploaded []string
	for _, img := range images {
		name := objectName(productID, img)
		contentType := img.contentType

		_, err := abc.client.UploadBuffer(ctx, abc.containerName, name, img.data, &azblob.UploadBufferOptions{
			HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
		})
		if err != nil {
			abc.rollBackUploadedImages(ctx, uploaded)
			return nil, fmt.Errorf("failed to upload image %s: %w", img.name, err)
		}

		url := abc.baseURL + "/" + name
		uploaded = append(uploaded, url)
		abc.logger.Info("Image '", img.name, "' uploaded successfully as ", name)
	}

	return uploaded, nil
}

// rollBackUploadedImages deletes the images of a failed upload batch
func (abc *azureImageConnector) rollBackUploadedImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := abc.Delete(ctx, url); err != nil {
			abc.logger.Warn("Failed to roll back uploaded image ", url, ": ", err)
		}
	}
}

// Delete removes the image behind url. Missing images are ignored.
func (abc *azureImageConnector) Delete(ctx context.Context, url string) error {
	name, err := objectNameFromURL(abc.baseURL, url)
	if err != nil {
		return err
	}

	_, err = abc.client.DeleteBlob(ctx, abc.containerName, name, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete image %s: %w", name, err)
	}

	abc.logger.Info("Image ", name, " deleted successfully")
	return nil
}
