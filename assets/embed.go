package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *
var assetsFS embed.FS

var (
	rootMu sync.RWMutex
	root   = "assets"
)

// SetRoot points disk lookups at dir. Sprite sheets are usually shipped
// next to the binary rather than embedded.
func SetRoot(dir string) {
	rootMu.Lock()
	root = dir
	rootMu.Unlock()
}

// LoadImage loads an image by assets-relative path, preferring the disk
// root over the embedded copy.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile reads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	rootMu.RLock()
	dir := root
	rootMu.RUnlock()
	if b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".png"
	}
	return s
}
