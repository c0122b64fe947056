package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrClosed is recorded for loads requested after Close.
var ErrClosed = errors.New("assets: server closed")

type entry struct {
	path  string
	state LoadState
	value any
	err   error
	// gen changes on every reload so a superseded read cannot overwrite the
	// result of a newer one.
	gen uint64
}

// Server loads assets from a file system in the background and answers load
// state queries from the game loop. All methods are safe for concurrent use.
type Server struct {
	fsys     fs.FS
	logger   *slog.Logger
	decoders map[string]Decoder
	workers  int64
	sem      *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once

	mu      sync.RWMutex
	next    Handle
	byPath  map[string]Handle
	entries map[Handle]*entry
	closed  bool
}

type Option func(*Server)

// WithWorkers bounds the number of assets read and decoded at once.
func WithWorkers(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.workers = int64(n)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDecoder registers dec for files with extension ext, replacing any
// builtin decoder.
func WithDecoder(ext string, dec Decoder) Option {
	return func(s *Server) {
		if ext = normalizeExt(ext); ext != "" && dec != nil {
			s.decoders[ext] = dec
		}
	}
}

func NewServer(fsys fs.FS, opts ...Option) *Server {
	s := &Server{
		fsys:     fsys,
		logger:   slog.Default(),
		decoders: defaultDecoders(),
		workers:  int64(runtime.NumCPU()),
		byPath:   make(map[string]Handle),
		entries:  make(map[Handle]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sem = semaphore.NewWeighted(s.workers)
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

// Load registers path and starts loading it unless it is already known.
// It never blocks on I/O.
func (s *Server) Load(path string) Handle {
	clean := CleanPath(path)

	s.mu.Lock()
	if h, ok := s.byPath[clean]; ok {
		s.mu.Unlock()
		return h
	}
	s.next++
	h := s.next
	e := &entry{path: clean, state: Loading}
	s.entries[h] = e
	s.byPath[clean] = h

	switch {
	case strings.HasPrefix(clean, "/"):
		e.state = Failed
		e.err = fmt.Errorf("assets: load %q: outside the assets root: %w", path, fs.ErrInvalid)
	case clean == "" || !fs.ValidPath(clean):
		e.state = Failed
		e.err = fmt.Errorf("assets: load %q: %w", path, fs.ErrInvalid)
	case s.fsys == nil:
		e.state = Failed
		e.err = fmt.Errorf("assets: load %s: no file system", clean)
	case s.closed:
		e.state = Failed
		e.err = ErrClosed
	default:
		s.wg.Add(1)
		gen := e.gen
		s.mu.Unlock()
		go s.load(h, clean, gen)
		return h
	}
	err := e.err
	s.mu.Unlock()

	s.logger.Warn("asset load failed", "path", clean, "error", err)
	return h
}

// Reload reads h again, e.g. after the file changed on disk. Until the new
// read finishes the asset reports Loading.
func (s *Server) Reload(h Handle) bool {
	s.mu.Lock()
	e, ok := s.entries[h]
	if !ok || s.closed || s.fsys == nil || !fs.ValidPath(e.path) {
		s.mu.Unlock()
		return false
	}
	e.gen++
	e.state = Loading
	e.value = nil
	e.err = nil
	gen := e.gen
	path := e.path
	s.wg.Add(1)
	s.mu.Unlock()

	go s.load(h, path, gen)
	return true
}

func (s *Server) load(h Handle, path string, gen uint64) {
	defer s.wg.Done()

	if err := s.sem.Acquire(s.ctx, 1); err != nil {
		s.finish(h, gen, nil, fmt.Errorf("assets: load %s: %w", path, err))
		return
	}
	defer s.sem.Release(1)

	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		s.finish(h, gen, nil, fmt.Errorf("assets: read %s: %w", path, err))
		return
	}
	value, err := s.decode(path, data)
	if err != nil {
		s.finish(h, gen, nil, fmt.Errorf("assets: %s: %w", path, err))
		return
	}
	s.finish(h, gen, value, nil)
}

func (s *Server) decode(path string, data []byte) (any, error) {
	s.mu.RLock()
	dec, ok := s.decoders[extOf(path)]
	s.mu.RUnlock()
	if !ok {
		dec = decodeRaw
	}
	return dec(data)
}

func (s *Server) finish(h Handle, gen uint64, value any, err error) {
	s.mu.Lock()
	e, ok := s.entries[h]
	if !ok || e.gen != gen {
		s.mu.Unlock()
		return
	}
	if err != nil {
		e.state = Failed
		e.err = err
	} else {
		e.state = Loaded
		e.value = value
	}
	path := e.path
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("asset load failed", "path", path, "error", err)
		return
	}
	s.logger.Debug("asset loaded", "path", path, "handle", h)
}

// LoadState reports the state of h. Unknown handles are NotLoaded.
func (s *Server) LoadState(h Handle) LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[h]
	if !ok {
		return NotLoaded
	}
	return e.state
}

// Err returns the failure recorded for h, if any.
func (s *Server) Err(h Handle) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[h]; ok {
		return e.err
	}
	return nil
}

// Path returns the clean path h was loaded from.
func (s *Server) Path(h Handle) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[h]; ok {
		return e.path
	}
	return ""
}

// Handle returns the handle already registered for path.
func (s *Server) Handle(path string) (Handle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.byPath[CleanPath(path)]
	return h, ok
}

// Get returns the decoded value of a loaded asset.
func (s *Server) Get(h Handle) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[h]
	if !ok || e.state != Loaded {
		return nil, false
	}
	return e.value, true
}

// IsLoaded reports whether every handle is Loaded. Failed assets count as
// not loaded. No handles at all is trivially loaded.
func (s *Server) IsLoaded(handles ...Handle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range handles {
		e, ok := s.entries[h]
		if !ok || e.state != Loaded {
			return false
		}
	}
	return true
}

// Progress counts loaded and failed assets among handles.
func (s *Server) Progress(handles ...Handle) (loaded, failed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range handles {
		e, ok := s.entries[h]
		if !ok {
			continue
		}
		switch e.state {
		case Loaded:
			loaded++
		case Failed:
			failed++
		}
	}
	return loaded, failed
}

// Close cancels pending loads and waits for in-flight ones to finish.
func (s *Server) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.cancel()
		s.wg.Wait()
	})
	return nil
}

// Value returns the decoded value of h as a T.
func Value[T any](s *Server, h Handle) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	v, ok := s.Get(h)
	if !ok {
		return zero, false
	}
	cast, ok := v.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}
