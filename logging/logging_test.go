package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerKeepsRecentMessages(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, Options{Level: "debug", Keep: 3})

	l.Logger.Info("first")
	l.Logger.Debug("second", "group", "splash")
	l.Logger.Warn("third", "path", "images/logo.png", "error", "file does not exist")
	l.Logger.Error("fourth")

	msgs := l.Recent(0)
	require.Len(t, msgs, 3, "ring is bounded by Keep")
	assert.Equal(t, "second", msgs[0].Message)
	assert.Equal(t, "DEBUG", msgs[0].Level)
	assert.Equal(t, "fourth", msgs[2].Message)
	assert.Equal(t, uint(1), msgs[0].Serial)
	assert.Equal(t, uint(3), msgs[2].Serial)
	assert.False(t, msgs[0].Time.IsZero())

	group, ok := msgs[0].Value("group")
	assert.True(t, ok)
	assert.Equal(t, "splash", group)
	errText, ok := msgs[1].Value("error")
	assert.True(t, ok)
	assert.Equal(t, "file does not exist", errText)
	_, ok = msgs[1].Value("nope")
	assert.False(t, ok)

	last := l.Recent(1)
	require.Len(t, last, 1)
	assert.Equal(t, "fourth", last[0].Message)

	assert.Contains(t, out.String(), `msg=first`, "records are forwarded")
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"debug", []string{"d", "i", "w", "e"}},
		{"info", []string{"i", "w", "e"}},
		{"warn", []string{"w", "e"}},
		{"error", []string{"e"}},
		{"bogus", []string{"i", "w", "e"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewLogger(nil, Options{Level: tt.level})
			l.Logger.Debug("d")
			l.Logger.Info("i")
			l.Logger.Warn("w")
			l.Logger.Error("e")

			var got []string
			for _, msg := range l.Recent(0) {
				got = append(got, msg.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "warn", "error"}, ValidLevels())
}
