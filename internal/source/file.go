package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/calliope-ml/go-audiocond/internal/types"
)

// FromFile reads a single local video file as a clip keyed by its base name
// without extension.
func FromFile(path string) (types.Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Clip{}, err
	}
	base := filepath.Base(path)
	key := strings.TrimSuffix(base, filepath.Ext(base))
	return types.Clip{Key: key, RawData: data}, nil
}
