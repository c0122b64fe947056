package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/keystone/assets"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// decodeWAV is registered with the asset server for .wav files.
func decodeWAV(data []byte) (any, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	return stream, nil
}

// musicPlayer loops a single track from the asset store.
type musicPlayer struct {
	server  *assets.Server
	store   *assets.Store
	logger  *slog.Logger
	current string
	player  *audio.Player
}

func (m *musicPlayer) play(key string) {
	if m == nil || key == "" || key == m.current {
		return
	}
	h, ok := m.store.Audio(key)
	if !ok {
		m.logger.Debug("no music track registered", "key", key)
		return
	}
	stream, ok := assets.Value[*wav.Stream](m.server, h)
	if !ok {
		m.logger.Warn("music track not loaded", "key", key, "state", m.server.LoadState(h))
		return
	}
	player, err := audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		m.logger.Error("music: create player", "key", key, "error", err)
		return
	}
	m.stop()
	m.current = key
	m.player = player
	m.player.Play()
}

func (m *musicPlayer) stop() {
	if m == nil || m.player == nil {
		return
	}
	m.player.Pause()
	m.player = nil
	m.current = ""
}
