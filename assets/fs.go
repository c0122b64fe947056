package assets

import (
	"errors"
	"io/fs"
)

// OverlayFS serves files from Primary and falls back to Fallback when a file
// is missing there. It lets files on disk shadow embedded defaults.
type OverlayFS struct {
	Primary  fs.FS
	Fallback fs.FS
}

func (o OverlayFS) Open(name string) (fs.File, error) {
	if o.Primary != nil {
		f, err := o.Primary.Open(name)
		if err == nil {
			return f, nil
		}
		if o.Fallback == nil || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if o.Fallback == nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return o.Fallback.Open(name)
}
