package importer

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// ExtractFunc turns a compressed-archive byte payload into a map of member
// filename to decompressed content. The importer accepts any extraction
// function so tests and alternative container formats can plug in their own.
type ExtractFunc func(data []byte) (map[string][]byte, error)

// ExtractZip is the default ExtractFunc for standard ZIP containers.
// Directory entries are skipped.
func ExtractZip(data []byte) (map[string][]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive: %w", err)
	}

	files := make(map[string][]byte, len(reader.File))
	for _, member := range reader.File {
		if member.FileInfo().IsDir() {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open archive member %s: %w", member.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read archive member %s: %w", member.Name, err)
		}
		files[member.Name] = content
	}

	return files, nil
}
