package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/keystone/assets"
)

// Image returns the GPU image for a loaded image asset, uploading and caching
// it on first use. It returns nil while the asset is not loaded.
func Image(server *assets.Server, h assets.Handle) *ebiten.Image {
	if img := GetImage(h); img != nil {
		return img
	}
	src, ok := assets.Value[image.Image](server, h)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	RegisterImage(h, img)
	return img
}

// StoreImage resolves key through store before calling Image.
func StoreImage(server *assets.Server, store *assets.Store, key string) *ebiten.Image {
	h, ok := store.Image(key)
	if !ok {
		return nil
	}
	return Image(server, h)
}
