package render

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rouzeris/catroom/assets"
)

// LoadImage loads an image from the asset root and caches it by key. A
// failed load is remembered so a missing sheet is logged once, not every
// frame.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}

	imagesMu.RLock()
	miss := missing[key]
	imagesMu.RUnlock()
	if miss {
		return nil, fmt.Errorf("image %s unavailable", key)
	}

	img, err := assets.LoadImage(key)
	if err != nil {
		imagesMu.Lock()
		missing[key] = true
		imagesMu.Unlock()
		log.Printf("render: load %s: %v", key, err)
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}
