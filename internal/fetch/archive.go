package fetch

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// ErrMemberNotFound indicates the ZIP archive has no member with the
// requested name.
var ErrMemberNotFound = fmt.Errorf("archive member not found")

// ZipMember extracts a single named member from an in-memory ZIP archive.
func ZipMember(data []byte, name string) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open ZIP archive: %w", err)
	}

	for _, f := range reader.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open archive member %s: %w", name, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read archive member %s: %w", name, err)
		}
		return content, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, name)
}
