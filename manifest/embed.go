package manifest

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultName is the manifest loaded when no other name is configured.
const DefaultName = "groups.yaml"

//go:embed *.yaml
var ManifestFS embed.FS

// Load returns the named manifest, preferring a copy under manifest/ on disk
// so edits are picked up without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanManifestPath(name)
	if data, err := os.ReadFile(diskManifestPath(clean)); err == nil {
		return data, nil
	}
	return ManifestFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanManifestPath(name)
	info, err := os.Stat(diskManifestPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Dir is the on-disk directory holding manifest overrides.
func Dir() string {
	return "manifest"
}

func cleanManifestPath(path string) string {
	if path == "" {
		return DefaultName
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "manifest/"); ok {
		return after
	}
	return s
}

func diskManifestPath(clean string) string {
	return filepath.Join(Dir(), filepath.FromSlash(clean))
}
