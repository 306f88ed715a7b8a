package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

// allowedExtensions mirrors the image formats the original Cloudinary
// deployment accepted.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// LocalGateway writes uploaded files to a local directory served statically
// at /uploads/. Stored names are ULIDs, so they sort by upload time and
// never collide with each other or with the client's original names.
type LocalGateway struct {
	dir     string
	baseURL string
}

// NewLocalGateway creates a gateway writing into dir. Returned URLs are
// prefixed with baseURL, e.g. "http://localhost:8000".
func NewLocalGateway(dir, baseURL string) (*LocalGateway, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalGateway{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Store saves every file in the batch and returns their public URLs in
// input order. On any failure it removes the files already written and
// returns the error, so a partial URL list never reaches a record.
func (g *LocalGateway) Store(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	urls := make([]string, 0, len(files))
	written := make([]string, 0, len(files))

	cleanup := func() {
		for _, path := range written {
			os.Remove(path)
		}
	}

	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedExtensions[ext] {
			cleanup()
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, fh.Filename)
		}

		name := ulid.Make().String() + ext
		path := filepath.Join(g.dir, name)

		if err := saveFile(fh, path); err != nil {
			cleanup()
			return nil, fmt.Errorf("save uploaded file: %w", err)
		}

		written = append(written, path)
		urls = append(urls, g.baseURL+"/uploads/"+name)
	}

	return urls, nil
}

func saveFile(fh *multipart.FileHeader, path string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}
