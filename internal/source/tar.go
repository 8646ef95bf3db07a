// Package source loads raw video clips from the places the CLI accepts:
// a local file, a tar archive of clips, or an S3 object.
package source

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

// FromTar extracts every .mp4 entry of the archive as a clip keyed by its
// base name. macOS resource-fork entries ("._*") are skipped.
func FromTar(tarPath string) ([]types.Clip, error) {
	f, err := os.Open(tarPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tr := tar.NewReader(f)
	var clips []types.Clip

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		base := filepath.Base(hdr.Name)
		if !strings.HasSuffix(base, ".mp4") || strings.HasPrefix(base, "._") {
			continue
		}

		key := strings.TrimSuffix(base, ".mp4")
		buf := new(bytes.Buffer)
		if _, err := io.Copy(buf, tr); err != nil {
			return nil, err
		}

		clips = append(clips, types.Clip{Key: key, RawData: buf.Bytes()})
	}

	return clips, nil
}
