//go:build integration
// +build integration

package connector

import (
	"context"
	"strings"
	"testing"

	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAzureConnector(t *testing.T) *azureImageConnector {
	t.Helper()

	c, err := NewAzureImageConnector(context.Background(), &config.ImageConnectorSettings{
		CloudProvider:    TestCloudProvider,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return c.(*azureImageConnector)
}

func TestAzureImageConnector_UploadAndDelete(t *testing.T) {
	c := newAzureConnector(t)
	ctx := context.Background()

	pngBytes := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	form := testutil.CreateImageForm(t, map[string][]byte{"panel.png": pngBytes})

	urls, err := c.Upload(ctx, form, uuid.NewString())
	require.NoError(t, err)
	require.Len(t, urls, 1)

	assert.True(t, strings.HasPrefix(urls[0], c.baseURL+"/"), urls[0])

	require.NoError(t, c.Delete(ctx, urls[0]))
	assert.NoError(t, c.Delete(ctx, urls[0]))
}
