package logging

import (
	"io"
	"log/slog"
	"sort"
	"sync"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// ValidLevels returns the accepted level names, the default first and the
// rest in ascending severity.
func ValidLevels() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == DefaultLevel {
			return true
		}
		if names[j] == DefaultLevel {
			return false
		}
		return levels[names[i]] < levels[names[j]]
	})
	return names
}

type Options struct {
	Level string
	// Keep bounds the number of recent messages retained for the overlay.
	Keep int
}

// Logger is a slog text logger that also keeps its most recent records in
// memory so the game can show them in the debug overlay.
type Logger struct {
	Logger *slog.Logger

	mu  sync.Mutex
	buf *writer
}

// NewLogger constructs a slog logger writing logfmt records to out.
func NewLogger(out io.Writer, opts Options) *Logger {
	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}
	keep := opts.Keep
	if keep <= 0 {
		keep = 64
	}
	l := &Logger{}
	l.buf = &writer{out: out, keep: keep, mu: &l.mu}
	handler := slog.NewTextHandler(l.buf, &slog.HandlerOptions{Level: level})
	l.Logger = slog.New(handler)
	return l
}

// Recent returns up to n of the newest messages, oldest first.
func (l *Logger) Recent(n int) []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	msgs := l.buf.messages
	if n > 0 && len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
