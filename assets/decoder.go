package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/opentype"
)

// Decoder turns the raw bytes of an asset into its in-memory value.
type Decoder func(data []byte) (any, error)

func decodeImage(data []byte) (any, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func decodeFont(data []byte) (any, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

func decodeRaw(data []byte) (any, error) {
	return data, nil
}

func defaultDecoders() map[string]Decoder {
	return map[string]Decoder{
		".png":  decodeImage,
		".jpg":  decodeImage,
		".jpeg": decodeImage,
		".gif":  decodeImage,
		".ttf":  decodeFont,
		".otf":  decodeFont,
	}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
