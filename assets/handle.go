package assets

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// Handle identifies an asset registered with a Server. The zero Handle is
// never returned by Load.
type Handle uint64

func (h Handle) Valid() bool {
	return h != 0
}

func (h Handle) String() string {
	return "asset#" + strconv.FormatUint(uint64(h), 10)
}

// LoadState is the lifecycle of a single asset.
type LoadState uint8

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "not_loaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Kind groups assets by how they are decoded and looked up.
type Kind uint8

const (
	KindRaw Kind = iota
	KindImage
	KindFont
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindFont:
		return "font"
	case KindAudio:
		return "audio"
	default:
		return "raw"
	}
}

// KindOf guesses the kind of path from its extension.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return KindImage
	case ".ttf", ".otf":
		return KindFont
	case ".wav", ".ogg", ".mp3":
		return KindAudio
	default:
		return KindRaw
	}
}

// CleanPath normalises an asset path to the slash separated, root relative
// form used as the server key. Absolute paths keep the part below their last
// assets/ directory; absolute paths outside such a root stay absolute and
// therefore fail to load.
func CleanPath(p string) string {
	if p == "" {
		return ""
	}
	s := path.Clean(filepath.ToSlash(p))
	if strings.HasPrefix(s, "/") || filepath.IsAbs(p) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return s
	}
	return strings.TrimPrefix(s, "assets/")
}
