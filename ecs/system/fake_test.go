package system

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/milk9111/keystone/assets"
)

// fakeAssets stands in for *assets.Server with manually driven states.
type fakeAssets struct {
	next   assets.Handle
	byPath map[string]assets.Handle
	paths  map[assets.Handle]string
	states map[assets.Handle]assets.LoadState
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{
		byPath: make(map[string]assets.Handle),
		paths:  make(map[assets.Handle]string),
		states: make(map[assets.Handle]assets.LoadState),
	}
}

func (f *fakeAssets) Load(path string) assets.Handle {
	if path == "" {
		return 0
	}
	if h, ok := f.byPath[path]; ok {
		return h
	}
	f.next++
	f.byPath[path] = f.next
	f.paths[f.next] = path
	f.states[f.next] = assets.Loading
	return f.next
}

func (f *fakeAssets) set(state assets.LoadState, handles ...assets.Handle) {
	for _, h := range handles {
		f.states[h] = state
	}
}

func (f *fakeAssets) setAll(state assets.LoadState) {
	for h := range f.states {
		f.states[h] = state
	}
}

func (f *fakeAssets) IsLoaded(handles ...assets.Handle) bool {
	for _, h := range handles {
		if f.states[h] != assets.Loaded {
			return false
		}
	}
	return true
}

func (f *fakeAssets) LoadState(h assets.Handle) assets.LoadState {
	return f.states[h]
}

func (f *fakeAssets) Err(h assets.Handle) error {
	if f.states[h] == assets.Failed {
		return fmt.Errorf("load %s: %w", f.paths[h], errMissing)
	}
	return nil
}

func (f *fakeAssets) Path(h assets.Handle) string {
	return f.paths[h]
}

var errMissing = errors.New("missing")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
