package logging

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
)

// Message is a decoded log record.
type Message struct {
	Time       time.Time
	Level      string
	Message    string
	Attributes []Attr

	// Serial increases with every record written through the logger.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// Value returns the value of attribute key.
func (m Message) Value(key string) (string, bool) {
	for _, a := range m.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// writer is the slog TextHandler sink: it forwards bytes to out and keeps a
// bounded ring of decoded records.
type writer struct {
	out      io.Writer
	keep     int
	mu       *sync.Mutex
	messages []Message
	serial   uint
}

func (w *writer) Write(p []byte) (int, error) {
	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
	}
	if d.Err() != nil {
		return 0, d.Err()
	}

	w.mu.Lock()
	for i := range msgs {
		msgs[i].Serial = w.serial
		w.serial++
	}
	w.messages = append(w.messages, msgs...)
	if over := len(w.messages) - w.keep; over > 0 {
		w.messages = append([]Message(nil), w.messages[over:]...)
	}
	w.mu.Unlock()

	if w.out != nil {
		if _, err := w.out.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
