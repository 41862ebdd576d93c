package testutil

import (
	"mime/multipart"
	"testing"

	"github.com/fredriick/Electrify-sub009/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// CreateImageForm creates a multipart form carrying one fake image per entry of images.
func CreateImageForm(t *testing.T, images map[string][]byte) *multipart.Form {
	t.Helper()

	form, err := httputil.CreateMultipleFilesForm(images)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := form.RemoveAll(); err != nil {
			t.Logf("failed to remove multipart temp files: %v", err)
		}
	})
	return form
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}
