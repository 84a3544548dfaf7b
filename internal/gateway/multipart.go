// VibraGuide - Linear Guide Vibration Analysis and Bearing Health Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibraguide

package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/tomtom215/vibraguide/internal/validation"
)

// uploadField is the form field the backend reads uploads from.
const uploadField = "file"

// defaultUploadName is sent when File.Name is empty.
const defaultUploadName = "upload.csv"

// File is an upload payload.
type File struct {
	// Name is the filename sent in the form part. Only the base name is used.
	Name string

	// Data is read to EOF when the request is built.
	Data io.Reader
}

// OpenFile opens path for upload. The caller closes the returned file.
func OpenFile(path string) (File, *os.File, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the operator
	if err != nil {
		return File{}, nil, fmt.Errorf("open upload %s: %w", path, err)
	}
	return File{Name: filepath.Base(path), Data: f}, f, nil
}

// multipartRequest reads file into a single-part multipart/form-data body.
func (c *Client) multipartRequest(ctx context.Context, req *request, file File) (*request, error) {
	if file.Data == nil {
		return nil, c.reject(ctx, req.op, req.method, validation.Required(uploadField))
	}

	name := filepath.Base(file.Name)
	if file.Name == "" || name == "." || name == string(filepath.Separator) {
		name = defaultUploadName
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(uploadField, name)
	if err != nil {
		return nil, c.reject(ctx, req.op, req.method, fmt.Errorf("create form part: %w", err))
	}
	if _, err := io.Copy(part, file.Data); err != nil {
		return nil, c.reject(ctx, req.op, req.method, fmt.Errorf("read upload %s: %w", name, err))
	}
	if err := writer.Close(); err != nil {
		return nil, c.reject(ctx, req.op, req.method, fmt.Errorf("finish form: %w", err))
	}

	req.body = buf.Bytes()
	req.contentType = writer.FormDataContentType()
	return req, nil
}
