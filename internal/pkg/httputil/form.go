// Package httputil contains helpers for building and inspecting HTTP payloads.
package httputil

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// FormFilesField is the multipart field carrying uploaded product images
const FormFilesField = "files"

// CreateForm builds a parsed multipart form holding a single file under FormFilesField.
func CreateForm(content []byte, fileName string) (*multipart.Form, error) {
	return CreateMultipleFilesForm(map[string][]byte{fileName: content})
}

// CreateMultipleFilesForm builds a parsed multipart form holding one part per entry of files.
func CreateMultipleFilesForm(files map[string][]byte) (*multipart.Form, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for fileName, content := range files {
		part, err := writer.CreateFormFile(FormFilesField, fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %s: %w", fileName, err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write form file %s: %w", fileName, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to read multipart form: %w", err)
	}

	// ReadForm leaves Size unset for in-memory parts
	for _, header := range form.File[FormFilesField] {
		if content, ok := files[header.Filename]; ok {
			header.Size = int64(len(content))
		}
	}

	return form, nil
}
