package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/keystone/assets"
)

var (
	mu     sync.Mutex
	images = map[assets.Handle]*ebiten.Image{}
)

// RegisterImage stores an image by handle.
func RegisterImage(h assets.Handle, img *ebiten.Image) {
	if !h.Valid() || img == nil {
		return
	}
	mu.Lock()
	images[h] = img
	mu.Unlock()
}

// GetImage returns a cached image by handle.
func GetImage(h assets.Handle) *ebiten.Image {
	if !h.Valid() {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	return images[h]
}

// Forget drops the cached image of h, e.g. after its asset was reloaded.
func Forget(h assets.Handle) {
	mu.Lock()
	if img, ok := images[h]; ok {
		img.Deallocate()
		delete(images, h)
	}
	mu.Unlock()
}
