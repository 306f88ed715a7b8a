// Package upload implements the image upload gateway: it turns multipart
// file sets into publicly addressable URLs. The catalog stores the returned
// URLs as opaque strings, so the backing host can change without touching
// property records.
package upload

import (
	"context"
	"errors"
	"mime/multipart"
)

// ErrNoFiles is returned when the request carried no files.
var ErrNoFiles = errors.New("no files uploaded")

// ErrUnsupportedType is returned when a file's extension is not an accepted
// image format.
var ErrUnsupportedType = errors.New("unsupported file type")

// Gateway stores a batch of uploaded files and returns one public URL per
// file, in input order. The batch is all-or-nothing: if any file fails, no
// URL from the batch may be used.
type Gateway interface {
	Store(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}
